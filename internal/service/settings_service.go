package service

import "github.com/jangbu/jangbu-server/internal/domain"

// SettingsService exposes the per-database budget configuration. Schema
// validation (unique non-empty category names) is a presentation-layer
// concern and is deliberately not enforced here.
type SettingsService struct {
	settingsRepo domain.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the database's settings, defaulted when absent.
func (s *SettingsService) GetSettings(databaseID string) (domain.Settings, error) {
	return s.settingsRepo.Get(databaseID)
}

// SaveSettings overwrites the database's settings document.
func (s *SettingsService) SaveSettings(databaseID string, settings domain.Settings) error {
	return s.settingsRepo.Save(databaseID, settings)
}
