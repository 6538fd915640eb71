package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/kv"
	"github.com/rs/zerolog/log"
)

// SettingsRepository persists one settings document per database id.
type SettingsRepository struct {
	store kv.Store
}

// NewSettingsRepository creates a SettingsRepository over the given
// store.
func NewSettingsRepository(store kv.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the database's settings, falling back to the default
// category set when the document is absent or corrupt.
func (r *SettingsRepository) Get(databaseID string) (domain.Settings, error) {
	if databaseID == "" {
		return domain.DefaultSettings(), nil
	}

	raw, ok := r.store.Read(settingsKey(databaseID))
	if !ok {
		return domain.DefaultSettings(), nil
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Warn().Err(err).Str("database_id", databaseID).Msg("settings document is corrupt, using defaults")
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// Save overwrites the database's settings document. No schema
// validation happens here; that is the presentation boundary's job.
func (r *SettingsRepository) Save(databaseID string, settings domain.Settings) error {
	if databaseID == "" {
		return domain.ErrNoDatabaseSelected
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return r.store.Write(settingsKey(databaseID), string(raw))
}

// Remove deletes the database's settings document.
func (r *SettingsRepository) Remove(databaseID string) error {
	if databaseID == "" {
		return nil
	}
	return r.store.Remove(settingsKey(databaseID))
}

// MigrateLegacy moves a pre-registry settings document under the given
// database id. An existing document under that id is not overwritten.
func (r *SettingsRepository) MigrateLegacy(databaseID string) (bool, error) {
	raw, ok := r.store.Read(legacySettingsKey)
	if !ok || databaseID == "" {
		return false, nil
	}

	if _, exists := r.store.Read(settingsKey(databaseID)); !exists {
		if err := r.store.Write(settingsKey(databaseID), raw); err != nil {
			return false, err
		}
	}
	if err := r.store.Remove(legacySettingsKey); err != nil {
		return false, err
	}
	return true, nil
}
