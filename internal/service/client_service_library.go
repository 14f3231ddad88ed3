package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/internal/validators"
	"github.com/MKhiriev/go-game-keeper/models"
)

// libraryService writes games and sessions straight into the local store.
// Nothing here talks to the network; the sync job pushes the writes later.
type libraryService struct {
	records   store.RecordStorage
	watcher   PendingWatcher
	validator validators.Validator
	ids       *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewLibraryService returns a LibraryService over records. watcher is
// refreshed after every write and may be nil.
func NewLibraryService(records store.RecordStorage, watcher PendingWatcher, logger *logger.Logger) LibraryService {
	return &libraryService{
		records:   records,
		watcher:   watcher,
		validator: validators.NewRecordValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *libraryService) AddGame(ctx context.Context, ownerID string, game models.Game) (models.GameEntry, error) {
	rec, err := s.write(ctx, ownerID, models.DomainGames, nil, game)
	if err != nil {
		return models.GameEntry{}, err
	}
	return models.GameEntry{ID: rec.ID, Game: game, SyncStatus: rec.SyncStatus, UpdatedAt: rec.UpdatedAtLocal}, nil
}

func (s *libraryService) EditGame(ctx context.Context, ownerID, id string, game models.Game) (models.GameEntry, error) {
	existing, err := s.live(ctx, models.DomainGames, ownerID, id)
	if err != nil {
		return models.GameEntry{}, err
	}

	rec, err := s.write(ctx, ownerID, models.DomainGames, existing, game)
	if err != nil {
		return models.GameEntry{}, err
	}
	return models.GameEntry{ID: rec.ID, Game: game, SyncStatus: rec.SyncStatus, UpdatedAt: rec.UpdatedAtLocal}, nil
}

func (s *libraryService) DeleteGame(ctx context.Context, ownerID, id string) error {
	return s.delete(ctx, models.DomainGames, ownerID, id)
}

func (s *libraryService) ListGames(ctx context.Context, ownerID string) ([]models.GameEntry, error) {
	recs, err := s.records.List(ctx, models.DomainGames, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	entries := make([]models.GameEntry, 0, len(recs))
	for _, rec := range recs {
		var game models.Game
		if err := json.Unmarshal(rec.Payload, &game); err != nil {
			s.logger.Warn().Str("id", rec.ID).Err(err).Msg("skipping undecodable game")
			continue
		}
		entries = append(entries, models.GameEntry{ID: rec.ID, Game: game, SyncStatus: rec.SyncStatus, UpdatedAt: rec.UpdatedAtLocal})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Game.Title < entries[j].Game.Title })
	return entries, nil
}

func (s *libraryService) LogSession(ctx context.Context, ownerID string, session models.PlaySession) (models.SessionEntry, error) {
	if _, err := s.live(ctx, models.DomainGames, ownerID, session.GameID); err != nil {
		return models.SessionEntry{}, err
	}

	rec, err := s.write(ctx, ownerID, models.DomainSessions, nil, session)
	if err != nil {
		return models.SessionEntry{}, err
	}
	return models.SessionEntry{ID: rec.ID, Session: session, SyncStatus: rec.SyncStatus, UpdatedAt: rec.UpdatedAtLocal}, nil
}

func (s *libraryService) DeleteSession(ctx context.Context, ownerID, id string) error {
	return s.delete(ctx, models.DomainSessions, ownerID, id)
}

func (s *libraryService) ListSessions(ctx context.Context, ownerID, gameID string) ([]models.SessionEntry, error) {
	recs, err := s.records.List(ctx, models.DomainSessions, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	entries := make([]models.SessionEntry, 0, len(recs))
	for _, rec := range recs {
		var session models.PlaySession
		if err := json.Unmarshal(rec.Payload, &session); err != nil {
			s.logger.Warn().Str("id", rec.ID).Err(err).Msg("skipping undecodable session")
			continue
		}
		if gameID != "" && session.GameID != gameID {
			continue
		}
		entries = append(entries, models.SessionEntry{ID: rec.ID, Session: session, SyncStatus: rec.SyncStatus, UpdatedAt: rec.UpdatedAtLocal})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Session.StartedAt.After(entries[j].Session.StartedAt) })
	return entries, nil
}

func (s *libraryService) ListFriends(ctx context.Context, ownerID string) ([]models.FriendPayload, error) {
	return listProjection[models.FriendPayload](ctx, s.records, models.DomainFriends, ownerID)
}

func (s *libraryService) ListGroups(ctx context.Context, ownerID string) ([]models.GroupPayload, error) {
	return listProjection[models.GroupPayload](ctx, s.records, models.DomainGroups, ownerID)
}

func (s *libraryService) ListInvites(ctx context.Context, ownerID string) ([]models.InvitePayload, error) {
	return listProjection[models.InvitePayload](ctx, s.records, models.DomainInvites, ownerID)
}

// write stores payload as a PENDING record. existing is nil for a new id.
func (s *libraryService) write(ctx context.Context, ownerID string, domain models.Domain, existing *models.Record, payload any) (models.Record, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.Record{}, fmt.Errorf("encode payload: %w", err)
	}

	rec := models.Record{
		ID:             s.ids.Generate(),
		OwnerID:        ownerID,
		Domain:         domain,
		Payload:        raw,
		SyncStatus:     models.StatusPending,
		UpdatedAtLocal: s.now().UTC(),
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.UpdatedAtRemote = existing.UpdatedAtRemote
		rec.Version = existing.Version
		// UpdatedAtLocal must grow even when the clock does not
		if !rec.UpdatedAtLocal.After(existing.UpdatedAtLocal) {
			rec.UpdatedAtLocal = existing.UpdatedAtLocal.Add(time.Microsecond)
		}
	}

	if err := s.validator.Validate(ctx, rec); err != nil {
		return models.Record{}, errors.Join(ErrInvalidArgument, err)
	}

	if err := s.records.Upsert(ctx, domain, rec); err != nil {
		return models.Record{}, fmt.Errorf("store %s: %w", domain, err)
	}

	s.refresh(ctx, ownerID)
	return rec, nil
}

func (s *libraryService) delete(ctx context.Context, domain models.Domain, ownerID, id string) error {
	if _, err := s.live(ctx, domain, ownerID, id); err != nil {
		return err
	}
	if err := s.records.SoftDelete(ctx, domain, ownerID, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	s.refresh(ctx, ownerID)
	return nil
}

// live returns the record unless it is absent or already a tombstone.
func (s *libraryService) live(ctx context.Context, domain models.Domain, ownerID, id string) (*models.Record, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidArgument)
	}
	rec, err := s.records.Get(ctx, domain, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", id, err)
	}
	if rec == nil || rec.IsDeleted() {
		return nil, fmt.Errorf("%w: %s %s", ErrRecordNotFound, domain, id)
	}
	return rec, nil
}

func (s *libraryService) refresh(ctx context.Context, ownerID string) {
	if s.watcher == nil {
		return
	}
	if _, err := s.watcher.Refresh(ctx, ownerID); err != nil {
		s.logger.Err(err).Str("func", "*libraryService.refresh").Msg("pending refresh failed")
	}
}

func listProjection[T any](ctx context.Context, records store.RecordStorage, domain models.Domain, ownerID string) ([]T, error) {
	recs, err := records.List(ctx, domain, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", domain, err)
	}

	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var v T
		if err := json.Unmarshal(rec.Payload, &v); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", domain, rec.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}
