package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/internal/validators"
	"github.com/MKhiriev/go-game-keeper/models"
)

// LocalOwnerID owns every record while the client runs in local mode.
const LocalOwnerID = "local"

type clientAuthService struct {
	auth      adapter.AuthClient
	sessions  store.SessionStorage
	validator validators.Validator

	logger *logger.Logger
}

// NewClientAuthService returns the online ClientAuthService.
func NewClientAuthService(auth adapter.AuthClient, sessions store.SessionStorage, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		auth:      auth,
		sessions:  sessions,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := s.validator.Validate(ctx, user); err != nil {
		return models.Session{}, errors.Join(ErrInvalidArgument, err)
	}

	session, err := s.auth.Register(ctx, user)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	return session, s.save(session)
}

func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := s.validator.Validate(ctx, user); err != nil {
		return models.Session{}, errors.Join(ErrInvalidArgument, err)
	}

	session, err := s.auth.Login(ctx, user)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.Session{}, ErrWrongPassword
	}
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	return session, s.save(session)
}

func (s *clientAuthService) Logout(_ context.Context) error {
	s.auth.SetToken("")
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *clientAuthService) RestoreSession(_ context.Context) (models.Session, error) {
	session, err := s.sessions.Load()
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if session.IsZero() {
		return models.Session{}, ErrNotLoggedIn
	}

	s.auth.SetToken(session.Token)
	return session, nil
}

func (s *clientAuthService) FriendCode(ctx context.Context) (models.FriendCodeResponse, error) {
	code, err := s.auth.FriendCode(ctx)
	if err != nil {
		return models.FriendCodeResponse{}, mapAdapterError(err)
	}
	return code, nil
}

func (s *clientAuthService) save(session models.Session) error {
	s.auth.SetToken(session.Token)
	if err := s.sessions.Save(session); err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.save").Msg("session was not persisted")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// localAuthService is the ClientAuthService of local mode. There is no
// server, so the single local owner is always logged in.
type localAuthService struct{}

// NewLocalAuthService returns the ClientAuthService of local mode.
func NewLocalAuthService() ClientAuthService {
	return localAuthService{}
}

func (localAuthService) Register(context.Context, models.User) (models.Session, error) {
	return models.Session{}, &UnsupportedOperationError{Op: "register"}
}

func (localAuthService) Login(context.Context, models.User) (models.Session, error) {
	return models.Session{}, &UnsupportedOperationError{Op: "login"}
}

func (localAuthService) Logout(context.Context) error {
	return nil
}

func (localAuthService) RestoreSession(context.Context) (models.Session, error) {
	return models.Session{UserID: LocalOwnerID, Login: LocalOwnerID}, nil
}

func (localAuthService) FriendCode(context.Context) (models.FriendCodeResponse, error) {
	return models.FriendCodeResponse{}, &UnsupportedOperationError{Op: "friend code"}
}
