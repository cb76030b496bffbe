package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore keeps carts as JSON strings in Redis with a sliding TTL.
type redisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration, logger zerolog.Logger) Store {
	if prefix == "" {
		prefix = "cart"
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisStore{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With().Str("component", "redis-cart-store").Logger(),
	}
}

func (s *redisStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

func (s *redisStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.rdb.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(), nil
		}
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decode(raw)
}

func (s *redisStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Int("line_count", len(c.Items)).
		Msg("cart saved")
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.key(sessionID)).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to delete cart")
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
