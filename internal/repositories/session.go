package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRepository stores live session tokens in Redis.
// A token maps to the identity key it was issued for and expires with the JWT.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

// Save records a session token for the given identity with a TTL.
func (r *SessionRepository) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	err := r.rdb.Set(ctx, sessionKeyPrefix+token, userID.String(), ttl).Err()

	logger.Log.Infow("session saved",
		"user_id", userID,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get resolves a session token to its identity key.
// Returns (uuid.Nil, nil) for unknown or expired tokens.
func (r *SessionRepository) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// Delete removes a session token. Deleting an absent token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	err := r.rdb.Del(ctx, sessionKeyPrefix+token).Err()

	logger.Log.Infow("session deleted", "error", err)

	return err
}
