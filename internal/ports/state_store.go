package ports

import (
	"context"
	"time"
)

// StateStore defines the contract for keeping serialized per-view UI state
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Name() string
}
