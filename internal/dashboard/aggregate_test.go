package dashboard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

func expense(id, category, date string, amount float64) transaction.Transaction {
	return transaction.Transaction{
		ID:          id,
		Amount:      amount,
		Description: "expense " + id,
		Category:    category,
		Date:        period.MustParseDate(date),
		Type:        transaction.TypeExpense,
	}
}

func income(id, date string, amount float64) transaction.Transaction {
	t := expense(id, "Other", date, amount)
	t.Type = transaction.TypeIncome
	return t
}

func monthBudget(category, month string, amount float64) budget.Budget {
	return budget.Budget{ID: category + month, Category: category, Amount: amount, Month: period.MustParseMonth(month)}
}

var _ = Describe("Aggregations", func() {
	june := period.MustParseMonth("2024-06")

	transactions := []transaction.Transaction{
		expense("1", "Food & Dining", "2024-06-10", 60),
		expense("2", "Transportation", "2024-06-01", 20),
		expense("3", "Food & Dining", "2024-06-20", 40),
		income("4", "2024-06-15", 3000),
		expense("5", "Shopping", "2024-05-05", 75),
		expense("6", "Travel", "2024-01-10", 500),
		expense("7", "Travel", "2023-12-31", 999),
		expense("8", "Travel", "2024-07-01", 999),
	}

	Describe("MonthlyExpenses", func() {
		It("returns a fixed window oldest first, zero-filled", func() {
			series := dashboard.MonthlyExpenses(transactions, june, 6)

			Expect(series).To(HaveLen(6))
			Expect(series[0].Month).To(Equal(period.MustParseMonth("2024-01")))
			Expect(series[0].Label).To(Equal("Jan 2024"))
			Expect(series[5].Month).To(Equal(june))

			totals := make([]float64, 0, len(series))
			for _, m := range series {
				totals = append(totals, m.Total)
			}
			Expect(totals).To(Equal([]float64{500, 0, 0, 0, 75, 120}))
		})

		It("sums to the expenses inside the window", func() {
			series := dashboard.MonthlyExpenses(transactions, june, 6)

			var sum float64
			for _, m := range series {
				sum += m.Total
			}
			Expect(sum).To(Equal(695.0))
		})

		It("falls back to the default window", func() {
			Expect(dashboard.MonthlyExpenses(nil, june, 0)).To(HaveLen(dashboard.DefaultWindow))
		})

		It("crosses a year boundary", func() {
			series := dashboard.MonthlyExpenses(transactions, period.MustParseMonth("2024-01"), 2)
			Expect(series[0].Month).To(Equal(period.MustParseMonth("2023-12")))
			Expect(series[0].Total).To(Equal(999.0))
			Expect(series[1].Total).To(Equal(500.0))
		})
	})

	Describe("CategoryDistribution", func() {
		It("groups the month's expenses in order of first appearance", func() {
			dist := dashboard.CategoryDistribution(transactions, june, category.DefaultCatalog())

			Expect(dist).To(HaveLen(2))
			Expect(dist[0].Category).To(Equal("Food & Dining"))
			Expect(dist[0].Total).To(Equal(100.0))
			Expect(dist[0].Percentage).To(BeNumerically("~", 83.333, 0.001))
			Expect(dist[0].Color).To(Equal("#ff6b6b"))
			Expect(dist[1].Category).To(Equal("Transportation"))

			var pct float64
			for _, d := range dist {
				pct += d.Percentage
			}
			Expect(pct).To(BeNumerically("~", 100, 1e-9))
		})

		It("decorates unknown categories with the fallback", func() {
			dist := dashboard.CategoryDistribution([]transaction.Transaction{expense("1", "Mystery", "2024-06-01", 5)}, june, nil)
			Expect(dist[0].Icon).To(Equal(category.DefaultIcon))
			Expect(dist[0].Color).To(Equal(category.DefaultColor))
		})

		It("is empty for a month without expenses", func() {
			Expect(dashboard.CategoryDistribution(transactions, period.MustParseMonth("2024-03"), nil)).To(BeEmpty())
		})
	})

	Describe("BudgetComparison", func() {
		It("lists only budgeted categories of the month", func() {
			budgets := []budget.Budget{
				monthBudget("Food & Dining", "2024-06", 150),
				monthBudget("Shopping", "2024-06", 50),
				monthBudget("Transportation", "2024-05", 80),
			}
			rows := dashboard.BudgetComparison(transactions, budgets, june)

			Expect(rows).To(Equal([]dashboard.BudgetActual{
				{Category: "Food & Dining", BudgetAmount: 150, ActualAmount: 100},
				{Category: "Shopping", BudgetAmount: 50, ActualAmount: 0},
			}))
		})
	})

	Describe("Summarize", func() {
		It("totals the month and picks the top category", func() {
			s := dashboard.Summarize(transactions, []budget.Budget{monthBudget("Food & Dining", "2024-06", 90)}, june)

			Expect(s.TotalSpent).To(Equal(120.0))
			Expect(s.TotalBudgeted).To(Equal(90.0))
			Expect(s.Remaining).To(Equal(-30.0))
			Expect(s.TopCategory).To(Equal("Food & Dining"))
		})

		It("reports None when nothing was spent", func() {
			s := dashboard.Summarize([]transaction.Transaction{income("1", "2024-06-01", 100)}, nil, june)

			Expect(s.TotalSpent).To(BeZero())
			Expect(s.TopCategory).To(Equal(dashboard.NoCategory))
		})

		It("keeps the first category to reach the maximum on a tie", func() {
			tied := []transaction.Transaction{
				expense("1", "Shopping", "2024-06-01", 50),
				expense("2", "Travel", "2024-06-02", 50),
			}
			Expect(dashboard.Summarize(tied, nil, june).TopCategory).To(Equal("Shopping"))
		})
	})

	Describe("RecentTransactions", func() {
		It("orders by date descending and truncates", func() {
			recent := dashboard.RecentTransactions(transactions, 3)

			Expect(recent).To(HaveLen(3))
			Expect(recent[0].ID).To(Equal("8"))
			Expect(recent[1].ID).To(Equal("3"))
			Expect(recent[2].ID).To(Equal("4"))
		})

		It("keeps input order for equal dates", func() {
			same := []transaction.Transaction{
				expense("a", "Other", "2024-06-01", 1),
				expense("b", "Other", "2024-06-01", 1),
				expense("c", "Other", "2024-06-02", 1),
			}
			recent := dashboard.RecentTransactions(same, 5)
			Expect([]string{recent[0].ID, recent[1].ID, recent[2].ID}).To(Equal([]string{"c", "a", "b"}))
		})

		It("does not reorder its input", func() {
			input := []transaction.Transaction{
				expense("a", "Other", "2024-06-01", 1),
				expense("b", "Other", "2024-06-05", 1),
			}
			dashboard.RecentTransactions(input, 5)
			Expect(input[0].ID).To(Equal("a"))
		})
	})

	Describe("Build", func() {
		It("assembles every view for the month", func() {
			budgets := []budget.Budget{
				monthBudget("Food & Dining", "2024-06", 200),
				monthBudget("Food & Dining", "2024-05", 10),
			}
			d := dashboard.Build(transactions, budgets, june, dashboard.Options{})

			Expect(d.Month).To(Equal(june))
			Expect(d.MonthlyExpenses).To(HaveLen(dashboard.DefaultWindow))
			Expect(d.Recent).To(HaveLen(dashboard.DefaultRecentLimit))
			Expect(d.Insights).To(HaveLen(1))
			Expect(d.Insights[0].Status).To(Equal(budget.StatusHalfway))
			Expect(d.Summary.TotalBudgeted).To(Equal(200.0))
		})
	})
})
