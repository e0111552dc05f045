package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// StateStore is a testify mock for ports.StateStore
type StateStore struct {
	mock.Mock
}

// NewStateStore creates a mock that asserts its expectations on test cleanup
func NewStateStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *StateStore {
	m := &StateStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StateStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	var value []byte
	if v := args.Get(0); v != nil {
		value = v.([]byte)
	}
	return value, args.Error(1)
}

func (m *StateStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *StateStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *StateStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *StateStore) Name() string {
	args := m.Called()
	return args.String(0)
}
