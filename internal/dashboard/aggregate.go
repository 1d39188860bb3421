// Package dashboard derives the report views shown on the dashboard from the
// two flat record collections. Every function is pure and recomputes from
// scratch; none of them round.
package dashboard

import (
	"sort"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

const (
	DefaultWindow      = 6
	DefaultRecentLimit = 5

	// NoCategory is the top category reported when a month has no expenses.
	NoCategory = "None"
)

type MonthlyTotal struct {
	Month period.Month `json:"month"`
	Label string       `json:"label"`
	Total float64      `json:"total"`
}

type CategoryTotal struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
}

type BudgetActual struct {
	Category     string  `json:"category"`
	BudgetAmount float64 `json:"budget_amount"`
	ActualAmount float64 `json:"actual_amount"`
}

type Summary struct {
	TotalSpent    float64 `json:"total_spent"`
	TotalBudgeted float64 `json:"total_budgeted"`
	Remaining     float64 `json:"remaining"`
	TopCategory   string  `json:"top_category"`
}

// MonthlyExpenses returns one entry per month of the trailing window ending
// at ref, oldest first. Months without expenses are reported as zero.
func MonthlyExpenses(transactions []transaction.Transaction, ref period.Month, window int) []MonthlyTotal {
	if window <= 0 {
		window = DefaultWindow
	}

	series := make([]MonthlyTotal, window)
	first := ref.AddMonths(-(window - 1))
	for i := range series {
		m := first.AddMonths(i)
		series[i] = MonthlyTotal{Month: m, Label: m.Label()}
	}

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		m := t.Date.Month()
		if m.Before(first) || ref.Before(m) {
			continue
		}
		series[monthsBetween(first, m)].Total += t.Amount
	}
	return series
}

func monthsBetween(from, to period.Month) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}

// expenseTotals sums expenses in month by category. names keeps the order in
// which categories first appear.
func expenseTotals(transactions []transaction.Transaction, month period.Month) (names []string, totals map[string]float64) {
	totals = make(map[string]float64)
	for _, t := range transactions {
		if !t.IsExpense() || !month.Contains(t.Date) {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			names = append(names, t.Category)
		}
		totals[t.Category] += t.Amount
	}
	return names, totals
}

// CategoryDistribution groups the expenses of month by category, in order of
// first appearance. Percentages are all zero when nothing was spent.
func CategoryDistribution(transactions []transaction.Transaction, month period.Month, catalog *category.Catalog) []CategoryTotal {
	if catalog == nil {
		catalog = category.DefaultCatalog()
	}

	names, totals := expenseTotals(transactions, month)

	var sum float64
	for _, name := range names {
		sum += totals[name]
	}

	result := make([]CategoryTotal, 0, len(names))
	for _, name := range names {
		var pct float64
		if sum > 0 {
			pct = totals[name] / sum * 100
		}
		cat := catalog.Decorate(name)
		result = append(result, CategoryTotal{
			Category:   name,
			Total:      totals[name],
			Percentage: pct,
			Color:      cat.Color,
			Icon:       cat.Icon,
		})
	}
	return result
}

// BudgetComparison pairs each budget of month with what was actually spent in
// its category. Categories without a budget are not listed.
func BudgetComparison(transactions []transaction.Transaction, budgets []budget.Budget, month period.Month) []BudgetActual {
	inMonth := budget.InMonth(budgets, month)
	result := make([]BudgetActual, 0, len(inMonth))
	for _, b := range inMonth {
		result = append(result, BudgetActual{
			Category:     b.Category,
			BudgetAmount: b.Amount,
			ActualAmount: budget.ActualSpent(b, transactions),
		})
	}
	return result
}

// Summarize totals the month. Remaining may be negative.
func Summarize(transactions []transaction.Transaction, budgets []budget.Budget, month period.Month) Summary {
	names, totals := expenseTotals(transactions, month)

	s := Summary{TopCategory: NoCategory}
	var top float64
	for _, name := range names {
		s.TotalSpent += totals[name]
		if totals[name] > top {
			top = totals[name]
			s.TopCategory = name
		}
	}

	for _, b := range budget.InMonth(budgets, month) {
		s.TotalBudgeted += b.Amount
	}
	s.Remaining = s.TotalBudgeted - s.TotalSpent
	return s
}

// RecentTransactions returns the n latest transactions by date. Equal dates
// keep their input order.
func RecentTransactions(transactions []transaction.Transaction, n int) []transaction.Transaction {
	if n <= 0 {
		n = DefaultRecentLimit
	}

	sorted := make([]transaction.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
