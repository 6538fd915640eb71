package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/rs/zerolog/log"
)

// RegistryService manages the set of databases and the current-database
// pointer. Every store operation elsewhere takes an explicit database id;
// this service is the single source of truth for which id is current.
type RegistryService struct {
	configRepo      domain.ConfigRepository
	transactionRepo domain.TransactionRepository
	settingsRepo    domain.SettingsRepository
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(configRepo domain.ConfigRepository, transactionRepo domain.TransactionRepository, settingsRepo domain.SettingsRepository) *RegistryService {
	return &RegistryService{
		configRepo:      configRepo,
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// GetConfig returns the registry, lazily seeding it on first access with
// databases for the current calendar year and the two surrounding years.
// GetConfig itself never mutates an existing registry; see
// EnsureCurrentYearDatabase for the explicit session-start heal.
func (s *RegistryService) GetConfig() (*domain.AppConfig, error) {
	config, err := s.configRepo.Get()
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config = defaultConfig(time.Now().Year())
	if err := s.configRepo.Save(config); err != nil {
		return nil, err
	}
	log.Info().Str("current", config.CurrentDatabaseID).Msg("Seeded registry with default year databases")
	return config, nil
}

func defaultConfig(year int) *domain.AppConfig {
	var databases []domain.DatabaseInfo
	for y := year - 1; y <= year+1; y++ {
		databases = append(databases, domain.DatabaseInfo{
			ID:     domain.YearDatabaseID(y),
			Name:   strconv.Itoa(y),
			IsYear: true,
			Year:   y,
		})
	}
	domain.SortDatabases(databases)
	return &domain.AppConfig{
		Databases:         databases,
		CurrentDatabaseID: domain.YearDatabaseID(year),
	}
}

// SaveConfig overwrites the registry document.
func (s *RegistryService) SaveConfig(config *domain.AppConfig) error {
	return s.configRepo.Save(config)
}

// EnsureCurrentYearDatabase is the explicit session-start heal: it
// appends a database for the current calendar year if missing and
// re-points a dangling current pointer at the first database in sort
// order. Idempotent; persists only when something changed.
func (s *RegistryService) EnsureCurrentYearDatabase() (*domain.AppConfig, error) {
	config, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	changed := false
	year := time.Now().Year()
	if config.FindDatabase(domain.YearDatabaseID(year)) == nil {
		config.Databases = append(config.Databases, domain.DatabaseInfo{
			ID:     domain.YearDatabaseID(year),
			Name:   strconv.Itoa(year),
			IsYear: true,
			Year:   year,
		})
		changed = true
		log.Info().Int("year", year).Msg("Added missing current-year database")
	}

	domain.SortDatabases(config.Databases)

	if len(config.Databases) > 0 && config.FindDatabase(config.CurrentDatabaseID) == nil {
		config.CurrentDatabaseID = config.Databases[0].ID
		changed = true
		log.Warn().Str("current", config.CurrentDatabaseID).Msg("Repaired dangling current-database pointer")
	}

	if changed {
		if err := s.configRepo.Save(config); err != nil {
			return nil, err
		}
	}
	return config, nil
}

// MigrateLegacyLayout moves pre-registry single-database documents under
// the current database id. Runs once at session start; a no-op when no
// legacy documents exist.
func (s *RegistryService) MigrateLegacyLayout() error {
	config, err := s.GetConfig()
	if err != nil {
		return err
	}
	if config.CurrentDatabaseID == "" {
		return nil
	}

	movedTransactions, err := s.transactionRepo.MigrateLegacy(config.CurrentDatabaseID)
	if err != nil {
		return err
	}
	movedSettings, err := s.settingsRepo.MigrateLegacy(config.CurrentDatabaseID)
	if err != nil {
		return err
	}
	if movedTransactions || movedSettings {
		log.Info().Str("database_id", config.CurrentDatabaseID).Msg("Migrated legacy single-database layout")
	}
	return nil
}

// AddDatabase registers a new database. The id is deterministic for
// year-typed databases, so adding the same year twice returns the
// existing entry unchanged; duplicate names are permitted.
func (s *RegistryService) AddDatabase(name string, isYear bool, year int) (domain.DatabaseInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.DatabaseInfo{}, domain.ErrNameRequired
	}
	if len(name) > domain.MaxDatabaseNameLength {
		return domain.DatabaseInfo{}, domain.ErrNameTooLong
	}
	if isYear && year <= 0 {
		return domain.DatabaseInfo{}, domain.ErrInvalidYear
	}

	config, err := s.GetConfig()
	if err != nil {
		return domain.DatabaseInfo{}, err
	}

	var id string
	if isYear {
		id = domain.YearDatabaseID(year)
	} else {
		id = "custom_" + uuid.NewString()
	}

	if existing := config.FindDatabase(id); existing != nil {
		return *existing, nil
	}

	database := domain.DatabaseInfo{ID: id, Name: name, IsYear: isYear}
	if isYear {
		database.Year = year
	}
	config.Databases = append(config.Databases, database)
	domain.SortDatabases(config.Databases)
	if config.CurrentDatabaseID == "" {
		config.CurrentDatabaseID = database.ID
	}

	if err := s.configRepo.Save(config); err != nil {
		return domain.DatabaseInfo{}, err
	}
	return database, nil
}

// DeleteDatabase removes a database and its transaction and settings
// documents. When the deleted database was current, the first remaining
// database (in sort order) becomes current; an emptied registry keeps an
// explicit empty pointer.
func (s *RegistryService) DeleteDatabase(id string) error {
	config, err := s.GetConfig()
	if err != nil {
		return err
	}
	if config.FindDatabase(id) == nil {
		return domain.ErrDatabaseNotFound
	}

	remaining := config.Databases[:0]
	for _, database := range config.Databases {
		if database.ID != id {
			remaining = append(remaining, database)
		}
	}
	config.Databases = remaining

	if config.CurrentDatabaseID == id {
		if len(config.Databases) > 0 {
			config.CurrentDatabaseID = config.Databases[0].ID
		} else {
			config.CurrentDatabaseID = ""
		}
	}

	if err := s.configRepo.Save(config); err != nil {
		return err
	}

	if err := s.transactionRepo.Remove(id); err != nil {
		log.Warn().Err(err).Str("database_id", id).Msg("Failed to remove transaction document")
	}
	if err := s.settingsRepo.Remove(id); err != nil {
		log.Warn().Err(err).Str("database_id", id).Msg("Failed to remove settings document")
	}
	return nil
}

// SetCurrentDatabase updates the current-database pointer. The id is not
// validated here; EnsureCurrentYearDatabase repairs dangling pointers at
// the next session start.
func (s *RegistryService) SetCurrentDatabase(id string) error {
	config, err := s.GetConfig()
	if err != nil {
		return err
	}
	config.CurrentDatabaseID = id
	return s.configRepo.Save(config)
}

// GetCurrentDatabaseID returns the current-database pointer.
func (s *RegistryService) GetCurrentDatabaseID() (string, error) {
	config, err := s.GetConfig()
	if err != nil {
		return "", err
	}
	return config.CurrentDatabaseID, nil
}
