package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherview.app/internal/config"
	"weatherview.app/pkg/errors"
)

// RedisStateStore keeps view state in Redis so several instances can serve one page
type RedisStateStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStateStore connects to Redis and verifies the connection
func NewRedisStateStore(cfg *config.RedisConfig) (*RedisStateStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStoreError("failed to connect to Redis", err)
	}

	return &RedisStateStore{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

func (r *RedisStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("state key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("view state not found")
		}
		return nil, errors.NewStoreError("redis get operation failed", err)
	}

	return val, nil
}

func (r *RedisStateStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("state value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("state TTL must be positive")
	}

	if err := r.client.Set(ctx, r.keyPrefix+key, value, ttl).Err(); err != nil {
		return errors.NewStoreError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisStateStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}

	if err := r.client.Del(ctx, r.keyPrefix+key).Err(); err != nil {
		return errors.NewStoreError("redis delete operation failed", err)
	}

	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisStateStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStoreError("Redis ping failed", err)
	}
	return nil
}

func (r *RedisStateStore) Name() string {
	return "redis"
}

// Close closes the Redis client connection
func (r *RedisStateStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStoreError("failed to close Redis connection", err)
	}
	return nil
}
