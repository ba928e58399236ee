package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/shift-profile-service/internal/domain"
)

// cachedUser mirrors domain.User for Redis storage. The cache is a trusted
// server-side store, same as Postgres, so the hash travels with the record.
type cachedUser struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Salary            int64     `json:"salary"`
	NextPromotionDate time.Time `json:"next_promotion_date"`
	Disabled          bool      `json:"disabled"`
	PasswordHash      string    `json:"password_hash"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// cachedUserRepository decorates a UserRepository with a Redis read-through
// cache on id lookups. Username lookups stay uncached: they feed the
// authorization path, which must always see the current disabled flag.
type cachedUserRepository struct {
	inner  UserRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedUserRepository wraps inner with an id-lookup cache. A nil client
// returns inner unchanged.
func NewCachedUserRepository(inner UserRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) UserRepository {
	if client == nil || ttl <= 0 {
		return inner
	}
	return &cachedUserRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *cachedUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.inner.Create(ctx, user)
}

func (r *cachedUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.inner.GetByUsername(ctx, username)
}

func (r *cachedUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	key := cacheKey(id)

	if payload, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var cached cachedUser
		if jsonErr := json.Unmarshal(payload, &cached); jsonErr == nil {
			return fromCached(cached), nil
		}
		r.logger.Warn("dropping corrupt cache entry", zap.String("key", key))
		_ = r.client.Del(ctx, key).Err()
	} else if err != redis.Nil {
		r.logger.Warn("user cache read failed", zap.Error(err))
	}

	user, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(toCached(user)); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("user cache write failed", zap.Error(err))
		}
	}
	return user, nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:id:%d", id)
}

func toCached(u *domain.User) cachedUser {
	return cachedUser{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Salary:            u.Salary,
		NextPromotionDate: u.NextPromotionDate,
		Disabled:          u.Disabled,
		PasswordHash:      u.PasswordHash,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func fromCached(c cachedUser) *domain.User {
	return &domain.User{
		ID:                c.ID,
		Username:          c.Username,
		Email:             c.Email,
		Salary:            c.Salary,
		NextPromotionDate: c.NextPromotionDate,
		Disabled:          c.Disabled,
		PasswordHash:      c.PasswordHash,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
