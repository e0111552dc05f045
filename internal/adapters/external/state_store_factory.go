package external

import (
	"fmt"

	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

type StateStoreFactory struct{}

func NewStateStoreFactory() *StateStoreFactory {
	return &StateStoreFactory{}
}

func (f *StateStoreFactory) CreateStateStore(cfg *config.ViewStoreConfig) (ports.StateStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("view store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryStateStore(), nil
	case config.StoreTypeRedis:
		store, err := NewRedisStateStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported view store type: %s", cfg.Type.String()), nil)
	}
}
