package cmd

import (
	"fmt"
	"io"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/core/money"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Manage monthly category budgets",
}

var budgetMonth string

var budgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budgets with how much of each has been spent",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd.Context(), true)
		if err != nil {
			return err
		}
		snapshot := s.Snapshot()

		budgets := snapshot.Budgets
		if budgetMonth != "" {
			month, err := period.ParseMonth(budgetMonth)
			if err != nil {
				return err
			}
			budgets = budget.InMonth(budgets, month)
		}

		printInsights(cmd.OutOrStdout(), budget.CalculateAll(budgets, snapshot.Transactions))
		return nil
	},
}

var (
	budgetCategory string
	budgetAmount   float64
)

var budgetsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Set a budget for a category and month",
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := period.ParseMonth(budgetMonth)
		if err != nil {
			return err
		}

		// loaded so the duplicate check sees existing budgets
		s, _, err := openStore(cmd.Context(), true)
		if err != nil {
			return err
		}

		created, err := s.CreateBudget(cmd.Context(), budget.CreateBudgetDTO{
			Category: budgetCategory,
			Amount:   budgetAmount,
			Month:    month,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Budget added: %s\n", created.ID)
		return nil
	},
}

var budgetsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the category, amount or month of a budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dto budget.UpdateBudgetDTO
		flags := cmd.Flags()
		if flags.Changed("category") {
			dto.Category = &budgetCategory
		}
		if flags.Changed("amount") {
			dto.Amount = &budgetAmount
		}
		if flags.Changed("month") {
			month, err := period.ParseMonth(budgetMonth)
			if err != nil {
				return err
			}
			dto.Month = &month
		}

		s, _, err := openStore(cmd.Context(), true)
		if err != nil {
			return err
		}

		updated, err := s.UpdateBudget(cmd.Context(), args[0], dto)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Budget updated: %s %s %s\n", updated.Category, updated.Month, money.Format(updated.Amount))
		return nil
	},
}

var budgetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd.Context(), false)
		if err != nil {
			return err
		}
		if err := s.DeleteBudget(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Budget deleted")
		return nil
	},
}

func init() {
	budgetsListCmd.Flags().StringVarP(&budgetMonth, "month", "m", "", "only budgets of month YYYY-MM")

	budgetsAddCmd.Flags().StringVar(&budgetCategory, "category", "", "category name")
	budgetsAddCmd.Flags().Float64Var(&budgetAmount, "amount", 0, "positive budget amount")
	budgetsAddCmd.Flags().StringVarP(&budgetMonth, "month", "m", "", "month YYYY-MM")
	_ = budgetsAddCmd.MarkFlagRequired("category")
	_ = budgetsAddCmd.MarkFlagRequired("amount")
	_ = budgetsAddCmd.MarkFlagRequired("month")

	budgetsUpdateCmd.Flags().StringVar(&budgetCategory, "category", "", "new category name")
	budgetsUpdateCmd.Flags().Float64Var(&budgetAmount, "amount", 0, "new amount")
	budgetsUpdateCmd.Flags().StringVarP(&budgetMonth, "month", "m", "", "new month YYYY-MM")

	budgetsCmd.AddCommand(budgetsListCmd, budgetsAddCmd, budgetsUpdateCmd, budgetsDeleteCmd)
}

func printInsights(w io.Writer, insights []budget.Insight) {
	if len(insights) == 0 {
		fmt.Fprintln(w, "  no budgets")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "MONTH\tCATEGORY\tSPENT\tBUDGET\tREMAINING\tUSED\tSTATUS\tID")
	for _, in := range insights {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s%%\t%s\t%s\n",
			in.Budget.Month,
			in.Budget.Category,
			money.Format(in.ActualSpent),
			money.Format(in.Budget.Amount),
			money.Format(in.Remaining),
			money.FormatPercent(in.PercentageUsed),
			in.Status,
			in.Budget.ID)
	}
	tw.Flush()

	for _, in := range insights {
		fmt.Fprintf(w, "  %s\n", in.Message)
	}
}
