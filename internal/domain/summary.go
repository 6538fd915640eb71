package domain

// MonthlySummary aggregates one calendar month of a database. Month is
// the 0-based month index (0 = January), matching the dashboard contract.
type MonthlySummary struct {
	Month       int     `json:"month"`
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	Balance     float64 `json:"balance"`
	BudgetUsed  float64 `json:"budgetUsed"`
	BudgetTotal float64 `json:"budgetTotal"`
}

// YearlySummary is the twelve monthly summaries plus running totals.
type YearlySummary struct {
	TotalIncome    float64          `json:"totalIncome"`
	TotalExpense   float64          `json:"totalExpense"`
	CurrentBalance float64          `json:"currentBalance"`
	MonthlyData    []MonthlySummary `json:"monthlyData"`
}

// CategorySpending is one row of the category report. Percentage is the
// raw spent/budget ratio; values over 100 signal over-budget and any
// display capping is left to the presentation layer.
type CategorySpending struct {
	Category   string  `json:"category"`
	Spent      float64 `json:"spent"`
	Budget     float64 `json:"budget"`
	Percentage float64 `json:"percentage"`
}
