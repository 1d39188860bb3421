package dashboard

import (
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

type Options struct {
	Window      int
	RecentLimit int
	Catalog     *category.Catalog
}

// Dashboard bundles every view for one reference month.
type Dashboard struct {
	Month            period.Month              `json:"month"`
	Summary          Summary                   `json:"summary"`
	MonthlyExpenses  []MonthlyTotal            `json:"monthly_expenses"`
	Categories       []CategoryTotal           `json:"categories"`
	BudgetComparison []BudgetActual            `json:"budget_comparison"`
	Insights         []budget.Insight          `json:"insights"`
	Recent           []transaction.Transaction `json:"recent"`
}

func Build(transactions []transaction.Transaction, budgets []budget.Budget, month period.Month, opts Options) Dashboard {
	return Dashboard{
		Month:            month,
		Summary:          Summarize(transactions, budgets, month),
		MonthlyExpenses:  MonthlyExpenses(transactions, month, opts.Window),
		Categories:       CategoryDistribution(transactions, month, opts.Catalog),
		BudgetComparison: BudgetComparison(transactions, budgets, month),
		Insights:         budget.CalculateAll(budget.InMonth(budgets, month), transactions),
		Recent:           RecentTransactions(transactions, opts.RecentLimit),
	}
}
