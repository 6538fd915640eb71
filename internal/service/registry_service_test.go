package service

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/testutil"
)

func newRegistryService(stores *testutil.Stores) *RegistryService {
	return NewRegistryService(stores.Config, stores.Transactions, stores.Settings)
}

func TestGetConfig_SeedsDefaults(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	config, err := svc.GetConfig()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	year := time.Now().Year()
	if len(config.Databases) != 3 {
		t.Fatalf("Expected 3 seeded databases, got %d", len(config.Databases))
	}
	for i, y := range []int{year - 1, year, year + 1} {
		database := config.Databases[i]
		if database.ID != domain.YearDatabaseID(y) {
			t.Errorf("Expected %s at position %d, got %s", domain.YearDatabaseID(y), i, database.ID)
		}
		if !database.IsYear || database.Year != y || database.Name != strconv.Itoa(y) {
			t.Errorf("Expected year database for %d, got %+v", y, database)
		}
	}
	if config.CurrentDatabaseID != domain.YearDatabaseID(year) {
		t.Errorf("Expected current database %s, got %s", domain.YearDatabaseID(year), config.CurrentDatabaseID)
	}

	// Seed is persisted, not rebuilt on every read
	again, err := svc.GetConfig()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(again.Databases) != 3 {
		t.Errorf("Expected persisted registry, got %d databases", len(again.Databases))
	}
}

func TestEnsureCurrentYearDatabase_AddsMissingYear(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	// Registry without the current year
	stores.Config.Save(&domain.AppConfig{
		Databases: []domain.DatabaseInfo{
			{ID: "year_2001", Name: "2001", IsYear: true, Year: 2001},
		},
		CurrentDatabaseID: "year_2001",
	})

	config, err := svc.EnsureCurrentYearDatabase()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	year := time.Now().Year()
	if config.FindDatabase(domain.YearDatabaseID(year)) == nil {
		t.Errorf("Expected current year database to be added, got %+v", config.Databases)
	}
	if config.CurrentDatabaseID != "year_2001" {
		t.Errorf("Expected current pointer untouched, got %s", config.CurrentDatabaseID)
	}
}

func TestEnsureCurrentYearDatabase_RepairsDanglingPointer(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	stores.Config.Save(&domain.AppConfig{
		Databases: []domain.DatabaseInfo{
			{ID: "year_2001", Name: "2001", IsYear: true, Year: 2001},
		},
		CurrentDatabaseID: "year_1999",
	})

	config, err := svc.EnsureCurrentYearDatabase()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if config.FindDatabase(config.CurrentDatabaseID) == nil {
		t.Errorf("Expected repaired pointer, got %s", config.CurrentDatabaseID)
	}
}

func TestEnsureCurrentYearDatabase_Idempotent(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	first, err := svc.EnsureCurrentYearDatabase()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := svc.EnsureCurrentYearDatabase()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(first.Databases) != len(second.Databases) {
		t.Errorf("Expected identical registries, got %d and %d databases", len(first.Databases), len(second.Databases))
	}
	if first.CurrentDatabaseID != second.CurrentDatabaseID {
		t.Errorf("Expected stable current pointer, got %s then %s", first.CurrentDatabaseID, second.CurrentDatabaseID)
	}
}

func TestAddDatabase_YearIdempotent(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	first, err := svc.AddDatabase("2027", true, 2027)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.ID != "year_2027" {
		t.Errorf("Expected deterministic id year_2027, got %s", first.ID)
	}

	second, err := svc.AddDatabase("2027 again", true, 2027)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.ID != first.ID || second.Name != first.Name {
		t.Errorf("Expected existing entry back unchanged, got %+v", second)
	}

	config, _ := svc.GetConfig()
	count := 0
	for _, database := range config.Databases {
		if database.ID == "year_2027" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one year_2027 entry, got %d", count)
	}
}

func TestAddDatabase_Custom(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	database, err := svc.AddDatabase("  Retreat Fund  ", false, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if database.Name != "Retreat Fund" {
		t.Errorf("Expected trimmed name, got %q", database.Name)
	}
	if database.IsYear || database.Year != 0 {
		t.Errorf("Expected custom database, got %+v", database)
	}
	if len(database.ID) <= len("custom_") || database.ID[:7] != "custom_" {
		t.Errorf("Expected custom_ id, got %s", database.ID)
	}
}

func TestAddDatabase_Validation(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	if _, err := svc.AddDatabase("   ", false, 0); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}

	long := make([]byte, domain.MaxDatabaseNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := svc.AddDatabase(string(long), false, 0); !errors.Is(err, domain.ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}

	if _, err := svc.AddDatabase("bad year", true, 0); !errors.Is(err, domain.ErrInvalidYear) {
		t.Errorf("Expected ErrInvalidYear, got %v", err)
	}
}

func TestDeleteDatabase_CascadesAndReselects(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	year := time.Now().Year()
	current := domain.YearDatabaseID(year)
	svc.GetConfig()

	stores.Transactions.SaveAll(current, []domain.Transaction{
		{ID: "t1", Date: "2025-01-01", Title: "x", Amount: 1, Category: "기타", Type: domain.TransactionTypeExpense},
	})
	stores.Settings.Save(current, domain.DefaultSettings())

	if err := svc.DeleteDatabase(current); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	config, _ := svc.GetConfig()
	if config.FindDatabase(current) != nil {
		t.Error("Expected database removed from registry")
	}
	if config.CurrentDatabaseID != domain.YearDatabaseID(year-1) {
		t.Errorf("Expected first remaining database to become current, got %s", config.CurrentDatabaseID)
	}

	transactions, _ := stores.Transactions.GetAll(current)
	if len(transactions) != 0 {
		t.Errorf("Expected transaction document removed, got %d records", len(transactions))
	}
}

func TestDeleteDatabase_NotFound(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	if err := svc.DeleteDatabase("year_1850"); !errors.Is(err, domain.ErrDatabaseNotFound) {
		t.Errorf("Expected ErrDatabaseNotFound, got %v", err)
	}
}

func TestDeleteDatabase_LastOneEmptiesPointer(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	stores.Config.Save(&domain.AppConfig{
		Databases: []domain.DatabaseInfo{
			{ID: "custom_only", Name: "Only", IsYear: false},
		},
		CurrentDatabaseID: "custom_only",
	})

	if err := svc.DeleteDatabase("custom_only"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	config, _ := stores.Config.Get()
	if len(config.Databases) != 0 {
		t.Errorf("Expected empty registry, got %d databases", len(config.Databases))
	}
	if config.CurrentDatabaseID != "" {
		t.Errorf("Expected empty current pointer, got %s", config.CurrentDatabaseID)
	}
}

func TestMigrateLegacyLayout(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	stores.KV.Write("accounting_transactions", `[{"id":"old1","date":"2024-02-01","title":"Old","amount":100,"category":"기타","type":"expense"}]`)
	stores.KV.Write("accounting_settings", `{"budgetCategories":[{"id":"1","name":"이월","yearlyBudget":12}]}`)

	if err := svc.MigrateLegacyLayout(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	current, _ := svc.GetCurrentDatabaseID()
	transactions, _ := stores.Transactions.GetAll(current)
	if len(transactions) != 1 || transactions[0].ID != "old1" {
		t.Errorf("Expected legacy transactions under current database, got %+v", transactions)
	}
	settings, _ := stores.Settings.Get(current)
	if len(settings.BudgetCategories) != 1 || settings.BudgetCategories[0].Name != "이월" {
		t.Errorf("Expected legacy settings under current database, got %+v", settings)
	}
	if _, ok := stores.KV.Read("accounting_transactions"); ok {
		t.Error("Expected legacy transaction key removed")
	}
}

func TestSetCurrentDatabase(t *testing.T) {
	stores := testutil.NewStores()
	svc := newRegistryService(stores)

	svc.GetConfig()
	if err := svc.SetCurrentDatabase("year_2031"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	current, err := svc.GetCurrentDatabaseID()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if current != "year_2031" {
		t.Errorf("Expected year_2031, got %s", current)
	}
}
