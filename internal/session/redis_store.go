package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore guarda el token en Redis bajo prefix+key.
type RedisStore struct {
	client redisKV
	key    string
	ttl    time.Duration
}

// NewRedisStore crea un store en Redis. key distingue sesiones que comparten
// el mismo servidor; ttl 0 no expira.
func NewRedisStore(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	if client == nil {
		return nil
	}
	return newRedisStore(client, key, ttl)
}

func newRedisStore(client redisKV, key string, ttl time.Duration) *RedisStore {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{
		client: client,
		key:    "localitybay:session:" + key,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.key, strings.TrimSpace(token), s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.key).Err()
}
