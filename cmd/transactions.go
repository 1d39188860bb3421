package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/core/money"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/spf13/cobra"
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "List, add and delete transactions",
}

var (
	listSearch   string
	listCategory string
	listRange    string
)

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateRange, err := transaction.ParseDateRange(listRange)
		if err != nil {
			return err
		}

		s, _, err := openStore(cmd.Context(), true)
		if err != nil {
			return err
		}

		filtered := transaction.Apply(s.Transactions(), transaction.Filter{
			Search:   listSearch,
			Category: listCategory,
			Range:    dateRange,
		}, time.Now())

		printTransactions(cmd.OutOrStdout(), filtered)
		return nil
	},
}

var (
	addAmount      float64
	addDescription string
	addCategory    string
	addDate        string
	addType        string
)

var transactionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := period.DateOf(time.Now())
		if addDate != "" {
			d, err := period.ParseDate(addDate)
			if err != nil {
				return err
			}
			date = d
		}

		s, _, err := openStore(cmd.Context(), false)
		if err != nil {
			return err
		}

		created, err := s.AddTransaction(cmd.Context(), transaction.CreateTransactionDTO{
			Amount:      addAmount,
			Description: addDescription,
			Category:    addCategory,
			Date:        date,
			Type:        transaction.Type(addType),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Transaction added: %s\n", created.ID)
		return nil
	},
}

var transactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd.Context(), false)
		if err != nil {
			return err
		}
		if err := s.DeleteTransaction(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Transaction deleted")
		return nil
	},
}

func init() {
	transactionsListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "match description or category, case-insensitive")
	transactionsListCmd.Flags().StringVar(&listCategory, "category", transaction.AllCategories, "exact category name")
	transactionsListCmd.Flags().StringVar(&listRange, "range", string(transaction.RangeAll), "all, thisMonth, lastMonth or last3Months")

	transactionsAddCmd.Flags().Float64Var(&addAmount, "amount", 0, "positive amount")
	transactionsAddCmd.Flags().StringVar(&addDescription, "description", "", "what it was for (max 100 characters)")
	transactionsAddCmd.Flags().StringVar(&addCategory, "category", "", "category name")
	transactionsAddCmd.Flags().StringVar(&addDate, "date", "", "date YYYY-MM-DD (default: today)")
	transactionsAddCmd.Flags().StringVar(&addType, "type", string(transaction.TypeExpense), "expense or income")
	_ = transactionsAddCmd.MarkFlagRequired("amount")
	_ = transactionsAddCmd.MarkFlagRequired("description")
	_ = transactionsAddCmd.MarkFlagRequired("category")

	transactionsCmd.AddCommand(transactionsListCmd, transactionsAddCmd, transactionsDeleteCmd)
}

func printTransactions(w io.Writer, transactions []transaction.Transaction) {
	if len(transactions) == 0 {
		fmt.Fprintln(w, "  no transactions")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION\tID")
	for _, t := range transactions {
		amount := money.Format(t.Amount)
		if t.IsExpense() {
			amount = "-" + amount
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.Date, t.Type, t.Category, amount, t.Description, t.ID)
	}
	tw.Flush()
}
