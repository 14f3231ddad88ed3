package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-game-keeper/models"
)

// cachedUserRepository keeps friend code lookups in memory. Codes are never
// reassigned, so entries only expire to bound memory.
type cachedUserRepository struct {
	UserRepository
	codes *cache.Cache
}

// NewCachedUserRepository decorates repo with a friend code cache.
func NewCachedUserRepository(repo UserRepository, ttl time.Duration) UserRepository {
	return &cachedUserRepository{
		UserRepository: repo,
		codes:          cache.New(ttl, 2*ttl),
	}
}

func (r *cachedUserRepository) FindUserByFriendCode(ctx context.Context, code string) (models.User, error) {
	if cached, ok := r.codes.Get(code); ok {
		return cached.(models.User), nil
	}

	user, err := r.UserRepository.FindUserByFriendCode(ctx, code)
	if err != nil {
		return models.User{}, err
	}

	r.codes.SetDefault(code, user.Public())
	return user.Public(), nil
}
