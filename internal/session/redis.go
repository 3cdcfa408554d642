package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sadpe/extractor/internal/console"
)

type redisCommander interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore guarda o estado serializado em JSON no Redis.
type RedisStore struct {
	redis  redisCommander
	prefix string
}

// NewRedisStore cria store sobre o cliente informado.
func NewRedisStore(client redisCommander) *RedisStore {
	return &RedisStore{redis: client, prefix: "console:"}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// Load busca e decodifica o estado.
func (s *RedisStore) Load(ctx context.Context, id string) (*console.Console, error) {
	raw, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var state console.Console
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode console: %w", err)
	}
	return &state, nil
}

// Save serializa o estado com expiração.
func (s *RedisStore) Save(ctx context.Context, id string, state *console.Console, ttl time.Duration) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode console: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(id), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete remove o estado.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ping verifica a conexão com o Redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
