package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "fete:"

// RedisBackend stores each snapshot as a plain string key
type RedisBackend struct {
	client *redislib.Client
	prefix string
}

// OpenRedis parses the URL and performs a health check
func OpenRedis(ctx context.Context, url, prefix string) (*RedisBackend, error) {
	if url == "" {
		url = "redis://localhost:6379/0"
	}
	opts, err := redislib.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redislib.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisBackend(client, prefix), nil
}

// NewRedisBackend wraps an existing client
func NewRedisBackend(client *redislib.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) Name() string { return BackendRedis }

func (b *RedisBackend) key(key string) string {
	return b.prefix + key
}

func (b *RedisBackend) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

func (b *RedisBackend) Save(ctx context.Context, key string, data []byte) error {
	return b.client.Set(ctx, b.key(key), data, 0).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
