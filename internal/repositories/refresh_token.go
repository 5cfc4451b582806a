package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/koguilabs/calc-portal/internal/logger"
)

// ErrRefreshTokenNotFound is returned when no refresh token is stored for a user.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores the active refresh token per user in Redis.
// Logout deletes the entry, which invalidates the token (blacklist semantics).
type RefreshTokenRepository struct {
	client *redis.Client
	exp    time.Duration // expiration matches the refresh token lifetime
}

// NewRefreshTokenRepository creates a new repository instance with the given TTL.
func NewRefreshTokenRepository(client *redis.Client, expiration time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		client: client,
		exp:    expiration,
	}
}

func refreshTokenKey(userID uuid.UUID) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

// Set stores the refresh token for a user, replacing any previous one.
func (r *RefreshTokenRepository) Set(ctx context.Context, userID uuid.UUID, token string) error {
	key := refreshTokenKey(userID)
	err := r.client.Set(ctx, key, token, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get returns the stored refresh token for a user.
func (r *RefreshTokenRepository) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	key := refreshTokenKey(userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err == redis.Nil {
		return "", ErrRefreshTokenNotFound
	}
	if err != nil {
		return "", err
	}

	return val, nil
}

// Delete removes the stored refresh token for a user.
func (r *RefreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := refreshTokenKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
