package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/core/money"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/spf13/cobra"
)

var (
	dashboardMonth  string
	dashboardWindow int
	dashboardRecent int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show spending, budgets and recent activity for a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		month := period.MonthOf(time.Now())
		if dashboardMonth != "" {
			m, err := period.ParseMonth(dashboardMonth)
			if err != nil {
				return err
			}
			month = m
		}

		s, _, err := openStore(cmd.Context(), true)
		if err != nil {
			return err
		}
		snapshot := s.Snapshot()

		d := dashboard.Build(snapshot.Transactions, snapshot.Budgets, month, dashboard.Options{
			Window:      dashboardWindow,
			RecentLimit: dashboardRecent,
			Catalog:     category.DefaultCatalog(),
		})
		printDashboard(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardMonth, "month", "m", "", "reference month YYYY-MM (default: current month)")
	dashboardCmd.Flags().IntVar(&dashboardWindow, "window", dashboard.DefaultWindow, "number of months in the spending trend")
	dashboardCmd.Flags().IntVar(&dashboardRecent, "recent", dashboard.DefaultRecentLimit, "number of recent transactions to show")
}

func printDashboard(w io.Writer, d dashboard.Dashboard) {
	fmt.Fprintf(w, "Dashboard for %s\n\n", d.Month.Label())

	tw := newTable(w)
	fmt.Fprintf(tw, "Total spent\t%s\n", money.Format(d.Summary.TotalSpent))
	fmt.Fprintf(tw, "Total budgeted\t%s\n", money.Format(d.Summary.TotalBudgeted))
	fmt.Fprintf(tw, "Remaining\t%s\n", money.Format(d.Summary.Remaining))
	fmt.Fprintf(tw, "Top category\t%s\n", d.Summary.TopCategory)
	tw.Flush()

	fmt.Fprintln(w, "\nMonthly expenses")
	var peak float64
	for _, m := range d.MonthlyExpenses {
		if m.Total > peak {
			peak = m.Total
		}
	}
	tw = newTable(w)
	for _, m := range d.MonthlyExpenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Label, money.Format(m.Total), bar(m.Total, peak, 30))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nBy category")
	if len(d.Categories) == 0 {
		fmt.Fprintln(w, "  no expenses this month")
	}
	tw = newTable(w)
	for _, c := range d.Categories {
		fmt.Fprintf(tw, "%s %s\t%s\t%s%%\n", c.Icon, c.Category, money.Format(c.Total), money.FormatPercent(c.Percentage))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nBudgets")
	if len(d.Insights) == 0 {
		fmt.Fprintln(w, "  no budgets set for this month")
	}
	tw = newTable(w)
	for _, in := range d.Insights {
		fmt.Fprintf(tw, "%s\t%s / %s\t%s%%\t%s\t%s\n",
			in.Budget.Category,
			money.Format(in.ActualSpent),
			money.Format(in.Budget.Amount),
			money.FormatPercent(in.PercentageUsed),
			in.Status,
			in.Message)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nRecent transactions")
	printTransactions(w, d.Recent)
}

func bar(v, peak float64, width int) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	n := int(v / peak * float64(width))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
