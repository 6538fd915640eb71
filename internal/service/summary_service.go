package service

import (
	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/util"
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// SummaryService derives dashboard and report aggregates. All derivation
// is pure recomputation over the current documents; nothing is cached.
type SummaryService struct {
	transactionRepo domain.TransactionRepository
	settingsRepo    domain.SettingsRepository
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(transactionRepo domain.TransactionRepository, settingsRepo domain.SettingsRepository) *SummaryService {
	return &SummaryService{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// GetMonthlySummary returns the summary for a 0-based month index.
func (s *SummaryService) GetMonthlySummary(databaseID string, month int) (domain.MonthlySummary, error) {
	if month < 0 || month > 11 {
		return domain.MonthlySummary{}, domain.ErrInvalidMonth
	}
	transactions, settings, err := s.load(databaseID)
	if err != nil {
		return domain.MonthlySummary{}, err
	}
	return MonthlySummaryFor(transactions, settings, month), nil
}

// GetYearlySummary returns the twelve monthly summaries plus totals.
func (s *SummaryService) GetYearlySummary(databaseID string) (domain.YearlySummary, error) {
	transactions, settings, err := s.load(databaseID)
	if err != nil {
		return domain.YearlySummary{}, err
	}
	return YearlySummaryFor(transactions, settings), nil
}

// GetCategorySpending returns the category report for a 0-based month.
func (s *SummaryService) GetCategorySpending(databaseID string, month int) ([]domain.CategorySpending, error) {
	if month < 0 || month > 11 {
		return nil, domain.ErrInvalidMonth
	}
	transactions, settings, err := s.load(databaseID)
	if err != nil {
		return nil, err
	}
	return CategorySpendingFor(transactions, settings, month), nil
}

func (s *SummaryService) load(databaseID string) ([]domain.Transaction, domain.Settings, error) {
	transactions, err := s.transactionRepo.GetAll(databaseID)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	settings, err := s.settingsRepo.Get(databaseID)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	return transactions, settings, nil
}

// MonthlySummaryFor aggregates one month of the given transactions.
// The database is already year-scoped, so dates are bucketed by month
// component only. Monetary sums run on decimals to avoid accumulating
// float error over many records.
func MonthlySummaryFor(transactions []domain.Transaction, settings domain.Settings, month int) domain.MonthlySummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		if util.MonthIndex(t.Date) != month {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(amount)
		case domain.TransactionTypeExpense:
			expense = expense.Add(amount)
		}
	}

	return domain.MonthlySummary{
		Month:       month,
		Income:      income.InexactFloat64(),
		Expense:     expense.InexactFloat64(),
		Balance:     income.Sub(expense).InexactFloat64(),
		BudgetUsed:  expense.InexactFloat64(),
		BudgetTotal: monthlyBudgetTotal(settings, month).InexactFloat64(),
	}
}

// YearlySummaryFor aggregates all twelve months plus running totals.
func YearlySummaryFor(transactions []domain.Transaction, settings domain.Settings) domain.YearlySummary {
	monthlyData := make([]domain.MonthlySummary, 0, monthsPerYear)
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for month := 0; month < monthsPerYear; month++ {
		summary := MonthlySummaryFor(transactions, settings, month)
		monthlyData = append(monthlyData, summary)
		totalIncome = totalIncome.Add(decimal.NewFromFloat(summary.Income))
		totalExpense = totalExpense.Add(decimal.NewFromFloat(summary.Expense))
	}

	return domain.YearlySummary{
		TotalIncome:    totalIncome.InexactFloat64(),
		TotalExpense:   totalExpense.InexactFloat64(),
		CurrentBalance: totalIncome.Sub(totalExpense).InexactFloat64(),
		MonthlyData:    monthlyData,
	}
}

// CategorySpendingFor builds the category report for one month: budgeted
// expense categories first, then the fixed income categories (which
// carry no budget). Categories join on name; spent matches by exact
// category name within the month.
func CategorySpendingFor(transactions []domain.Transaction, settings domain.Settings, month int) []domain.CategorySpending {
	report := make([]domain.CategorySpending, 0, len(settings.BudgetCategories)+len(domain.IncomeCategories))

	for _, category := range settings.BudgetCategories {
		spent := spentInMonth(transactions, category.Name, domain.TransactionTypeExpense, month)
		budget := decimal.Zero
		if categoryCoversMonth(category, month) {
			budget = category.MonthlyBudget()
		}
		percentage := decimal.Zero
		if budget.IsPositive() {
			percentage = spent.Div(budget).Mul(decimal.NewFromInt(100))
		}
		report = append(report, domain.CategorySpending{
			Category:   category.Name,
			Spent:      spent.InexactFloat64(),
			Budget:     budget.InexactFloat64(),
			Percentage: percentage.InexactFloat64(),
		})
	}

	for _, name := range domain.IncomeCategories {
		spent := spentInMonth(transactions, name, domain.TransactionTypeIncome, month)
		report = append(report, domain.CategorySpending{
			Category: name,
			Spent:    spent.InexactFloat64(),
		})
	}
	return report
}

func spentInMonth(transactions []domain.Transaction, category string, transactionType domain.TransactionType, month int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type != transactionType || t.Category != category || util.MonthIndex(t.Date) != month {
			continue
		}
		total = total.Add(decimal.NewFromFloat(t.Amount))
	}
	return total
}

// monthlyBudgetTotal sums the monthly allocation of every category that
// covers the month.
func monthlyBudgetTotal(settings domain.Settings, month int) decimal.Decimal {
	total := decimal.Zero
	for _, category := range settings.BudgetCategories {
		if !categoryCoversMonth(category, month) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(category.YearlyBudget))
	}
	return total.Div(decimal.NewFromInt(monthsPerYear))
}

// categoryCoversMonth restricts a ranged category's budget contribution
// to month indexes inside its start/end range (month components compared
// inclusively). Categories without a range cover every month.
func categoryCoversMonth(category domain.BudgetCategory, month int) bool {
	if category.StartDate != "" {
		if start := util.MonthIndex(category.StartDate); start >= 0 && month < start {
			return false
		}
	}
	if category.EndDate != "" {
		if end := util.MonthIndex(category.EndDate); end >= 0 && month > end {
			return false
		}
	}
	return true
}
