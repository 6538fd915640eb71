package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/kv"
	"github.com/rs/zerolog/log"
)

// ConfigRepository persists the registry document.
type ConfigRepository struct {
	store kv.Store
}

// NewConfigRepository creates a ConfigRepository over the given store.
func NewConfigRepository(store kv.Store) *ConfigRepository {
	return &ConfigRepository{store: store}
}

// Get returns the stored registry, or nil when none exists. A document
// that fails to parse reads as absent so the registry can re-seed.
func (r *ConfigRepository) Get() (*domain.AppConfig, error) {
	raw, ok := r.store.Read(configKey)
	if !ok {
		return nil, nil
	}

	var config domain.AppConfig
	if err := json.Unmarshal([]byte(raw), &config); err != nil {
		log.Warn().Err(err).Msg("registry document is corrupt, treating as absent")
		return nil, nil
	}
	return &config, nil
}

// Save overwrites the registry document.
func (r *ConfigRepository) Save(config *domain.AppConfig) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return r.store.Write(configKey, string(raw))
}
