package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/mock"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuth(t *testing.T) (ClientAuthService, *mock.MockAuthClient, *mock.MockSessionStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthClient(ctrl)
	sessions := mock.NewMockSessionStorage(ctrl)
	return NewClientAuthService(auth, sessions, logger.Nop()), auth, sessions
}

var testUser = models.User{Login: "alice", Password: "s3cret", Name: "Alice"}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestClientAuthService_Register_SavesSession(t *testing.T) {
	svc, auth, sessions := newTestClientAuth(t)
	ctx := context.Background()
	session := models.Session{UserID: "u1", Login: "alice", Token: "tok"}

	auth.EXPECT().Register(ctx, testUser).Return(session, nil)
	auth.EXPECT().SetToken("tok")
	sessions.EXPECT().Save(session).Return(nil)

	got, err := svc.Register(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestClientAuthService_Register_LoginTaken(t *testing.T) {
	svc, auth, _ := newTestClientAuth(t)
	ctx := context.Background()

	auth.EXPECT().Register(ctx, testUser).Return(models.Session{}, rejected(adapter.ErrConflict, "login already exists"))

	_, err := svc.Register(ctx, testUser)
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestClientAuthService_Register_Invalid(t *testing.T) {
	svc, _, _ := newTestClientAuth(t)

	_, err := svc.Register(context.Background(), models.User{Login: "alice"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, auth, _ := newTestClientAuth(t)
	ctx := context.Background()

	auth.EXPECT().Login(ctx, testUser).Return(models.Session{}, fmt.Errorf("%w: invalid login/password", adapter.ErrUnauthorized))

	_, err := svc.Login(ctx, testUser)
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_SaveFails(t *testing.T) {
	svc, auth, sessions := newTestClientAuth(t)
	ctx := context.Background()
	session := models.Session{UserID: "u1", Login: "alice", Token: "tok"}

	auth.EXPECT().Login(ctx, testUser).Return(session, nil)
	auth.EXPECT().SetToken("tok")
	sessions.EXPECT().Save(session).Return(errors.New("read-only fs"))

	_, err := svc.Login(ctx, testUser)
	require.Error(t, err)
}

// ── Logout / RestoreSession ──────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	svc, auth, sessions := newTestClientAuth(t)

	auth.EXPECT().SetToken("")
	sessions.EXPECT().Clear().Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	svc, auth, sessions := newTestClientAuth(t)
	session := models.Session{UserID: "u1", Login: "alice", Token: "tok"}

	sessions.EXPECT().Load().Return(session, nil)
	auth.EXPECT().SetToken("tok")

	got, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestClientAuthService_RestoreSession_NotLoggedIn(t *testing.T) {
	svc, _, sessions := newTestClientAuth(t)

	sessions.EXPECT().Load().Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClientAuthService_FriendCode(t *testing.T) {
	svc, auth, _ := newTestClientAuth(t)
	ctx := context.Background()

	auth.EXPECT().FriendCode(ctx).Return(models.FriendCodeResponse{FriendCode: "ABC123"}, nil)

	code, err := svc.FriendCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", code.FriendCode)
}

// ── local mode ───────────────────────────────────────────────────────────────

func TestLocalAuthService(t *testing.T) {
	svc := NewLocalAuthService()
	ctx := context.Background()

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, LocalOwnerID, session.UserID)

	_, err = svc.Login(ctx, testUser)
	require.ErrorIs(t, err, ErrUnsupportedInOfflineMode)

	var unsupported *UnsupportedOperationError
	_, err = svc.FriendCode(ctx)
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "friend code", unsupported.Op)

	assert.NoError(t, svc.Logout(ctx))
}
