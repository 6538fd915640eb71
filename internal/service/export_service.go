package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// csvHeader is the localized transaction CSV header: date, title,
// amount, category, type, notes.
const csvHeader = "날짜,제목,금액,분류,유형,메모"

// ExportService serializes the registry and all per-database documents
// to a single JSON blob, and back.
type ExportService struct {
	registry        *RegistryService
	configRepo      domain.ConfigRepository
	transactionRepo domain.TransactionRepository
	settingsRepo    domain.SettingsRepository
}

// NewExportService creates a new ExportService.
func NewExportService(registry *RegistryService, configRepo domain.ConfigRepository, transactionRepo domain.TransactionRepository, settingsRepo domain.SettingsRepository) *ExportService {
	return &ExportService{
		registry:        registry,
		configRepo:      configRepo,
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// ExportJSON produces the full-backup document.
func (s *ExportService) ExportJSON() (string, error) {
	config, err := s.registry.GetConfig()
	if err != nil {
		return "", err
	}

	document := domain.ExportDocument{
		Config:     config,
		Databases:  make(map[string]domain.DatabaseExport, len(config.Databases)),
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}
	for _, database := range config.Databases {
		transactions, err := s.transactionRepo.GetAll(database.ID)
		if err != nil {
			return "", err
		}
		settings, err := s.settingsRepo.Get(database.ID)
		if err != nil {
			return "", err
		}
		document.Databases[database.ID] = domain.DatabaseExport{
			Transactions: transactions,
			Settings:     settings,
		}
	}

	raw, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return string(raw), nil
}

// importDocument covers both accepted import shapes: the full export
// document and the legacy {transactions, settings} single-database form.
type importDocument struct {
	Config       *domain.AppConfig                `json:"config"`
	Databases    map[string]domain.DatabaseExport `json:"databases"`
	Transactions []domain.Transaction             `json:"transactions"`
	Settings     *domain.Settings                 `json:"settings"`
}

// ImportJSON applies an exported document. The whole input is parsed
// before the first write, so a malformed document changes nothing. A
// structurally valid document referencing unknown database ids is
// applied as-is; that is an accepted property of the layout, and the
// session-start heal repairs a dangling current pointer.
func (s *ExportService) ImportJSON(data string) error {
	var document importDocument
	if err := json.Unmarshal([]byte(data), &document); err != nil {
		return domain.ErrInvalidImport
	}

	if document.Config != nil || document.Databases != nil {
		if document.Config != nil {
			if err := s.configRepo.Save(document.Config); err != nil {
				return err
			}
		}
		for id, database := range document.Databases {
			if err := s.transactionRepo.SaveAll(id, database.Transactions); err != nil {
				return err
			}
			if err := s.settingsRepo.Save(id, database.Settings); err != nil {
				return err
			}
		}
		if _, err := s.registry.EnsureCurrentYearDatabase(); err != nil {
			return err
		}
		log.Info().Int("databases", len(document.Databases)).Msg("Imported full backup")
		return nil
	}

	if document.Transactions != nil || document.Settings != nil {
		databaseID, err := s.registry.GetCurrentDatabaseID()
		if err != nil {
			return err
		}
		if databaseID == "" {
			return domain.ErrNoDatabaseSelected
		}
		if document.Transactions != nil {
			if err := s.transactionRepo.SaveAll(databaseID, document.Transactions); err != nil {
				return err
			}
		}
		if document.Settings != nil {
			if err := s.settingsRepo.Save(databaseID, *document.Settings); err != nil {
				return err
			}
		}
		log.Info().Str("database_id", databaseID).Msg("Imported legacy single-database document")
		return nil
	}

	return domain.ErrInvalidImport
}

// ExportCSV renders one database's transactions as localized CSV: one
// header line, one line per record, joined by \n. Title and notes are
// double-quoted with internal quotes doubled; the other fields are
// written bare.
func (s *ExportService) ExportCSV(databaseID string) (string, error) {
	transactions, err := s.transactionRepo.GetAll(databaseID)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(transactions)+1)
	lines = append(lines, csvHeader)
	for _, t := range transactions {
		typeLabel := "지출"
		if t.Type == domain.TransactionTypeIncome {
			typeLabel = "수입"
		}
		lines = append(lines, strings.Join([]string{
			t.Date,
			csvQuote(t.Title),
			decimal.NewFromFloat(t.Amount).String(),
			t.Category,
			typeLabel,
			csvQuote(t.Notes),
		}, ","))
	}
	return strings.Join(lines, "\n"), nil
}

func csvQuote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
