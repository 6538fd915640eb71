package domain

import "github.com/shopspring/decimal"

// BudgetCategory is a named expense bucket with an annual allocation.
// The monthly budget is always derived from YearlyBudget, never stored.
type BudgetCategory struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	YearlyBudget float64 `json:"yearlyBudget"`
	StartDate    string  `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate      string  `json:"endDate,omitempty"`   // YYYY-MM-DD
}

// MonthlyBudget returns the derived per-month allocation.
func (c BudgetCategory) MonthlyBudget() decimal.Decimal {
	return decimal.NewFromFloat(c.YearlyBudget).Div(decimal.NewFromInt(12))
}

// Settings is the per-database budget configuration document.
type Settings struct {
	BudgetCategories []BudgetCategory `json:"budgetCategories"`
}

// IncomeCategories is the fixed set of income buckets. Income categories
// carry no budget; they exist for reporting only.
var IncomeCategories = []string{"전년이월", "교회보조", "헌신예배", "회비", "찬조"}

// DefaultSettings returns the category set used when a database has no
// stored settings document (or the stored one is corrupt).
func DefaultSettings() Settings {
	return Settings{
		BudgetCategories: []BudgetCategory{
			{ID: "1", Name: "수련회", YearlyBudget: 0},
			{ID: "2", Name: "행사비", YearlyBudget: 0},
			{ID: "3", Name: "간식비", YearlyBudget: 0},
			{ID: "4", Name: "교재비", YearlyBudget: 0},
			{ID: "5", Name: "기타", YearlyBudget: 0},
		},
	}
}

// SettingsRepository reads and writes the per-database settings document.
// Get falls back to DefaultSettings when the document is absent or does
// not parse; storage problems never surface as settings errors.
type SettingsRepository interface {
	Get(databaseID string) (Settings, error)
	Save(databaseID string, settings Settings) error
	Remove(databaseID string) error
	MigrateLegacy(databaseID string) (bool, error)
}
