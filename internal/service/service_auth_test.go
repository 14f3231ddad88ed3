package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/mock"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "game-keeper-test",
	TokenDuration: time.Hour,
}

func newTestAuth(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPasswordAndAssignsIDs(t *testing.T) {
	svc, repo := newTestAuth(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.UserID)
			assert.Len(t, u.FriendCode, 6)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))
			assert.Equal(t, "alice", u.Name, "пустое имя заменяется логином")
			return u, nil
		})

	user, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, user.FriendCode)
}

func TestAuthService_RegisterUser_RetriesFriendCodeCollision(t *testing.T) {
	svc, repo := newTestAuth(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrFriendCodeTaken),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) { return u, nil }),
	)

	_, err := svc.RegisterUser(ctx, testUser)
	require.NoError(t, err)
}

func TestAuthService_RegisterUser_GivesUpAfterAttempts(t *testing.T) {
	svc, repo := newTestAuth(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrFriendCodeTaken).Times(friendCodeAttempts)

	_, err := svc.RegisterUser(ctx, testUser)
	require.ErrorIs(t, err, store.ErrFriendCodeTaken)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuth(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, testUser)
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: "u1", Login: "alice", Password: string(hash), FriendCode: "ABC123"}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "ok", password: "s3cret"},
		{name: "wrong password", password: "nope", wantErr: ErrWrongPassword},
		{name: "unknown login", password: "s3cret", findErr: store.ErrNoUserWasFound, wantErr: ErrWrongPassword},
		{name: "db failure", password: "s3cret", findErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuth(t)
			ctx := context.Background()

			repo.EXPECT().FindUserByLogin(ctx, "alice").Return(stored, tt.findErr)

			user, err := svc.Login(ctx, models.User{Login: "alice", Password: tt.password})
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrWrongPassword) {
					assert.ErrorIs(t, err, ErrWrongPassword)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.UserID)
			assert.Empty(t, user.Password)
		})
	}
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.Subject)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// FriendCode
// ─────────────────────────────────────────────

func TestAuthService_FriendCode(t *testing.T) {
	svc, repo := newTestAuth(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "u1").Return(models.User{UserID: "u1", Name: "Alice", FriendCode: "ABC123"}, nil)
	repo.EXPECT().FindUserByID(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	code, err := svc.FriendCode(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.FriendCodeResponse{FriendCode: "ABC123", DisplayName: "Alice"}, code)

	_, err = svc.FriendCode(ctx, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
