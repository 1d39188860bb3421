package cmd

import (
	"fmt"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	txDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/server"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample transactions and budgets around the current month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := openDatabase(cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to init db: %w", err)
		}
		defer db.Close()

		if clearData {
			if err := clearRecords(db.Gorm); err != nil {
				return fmt.Errorf("failed to clear data: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared existing transactions and budgets")
		}

		services := server.NewServices(server.Dependencies{Gorm: db.Gorm, Logger: logger})
		today := period.DateOf(time.Now())

		for _, dto := range sampleTransactions(today) {
			if _, err := services.Transactions.CreateTransaction(&dto); err != nil {
				return fmt.Errorf("failed to seed transaction %q: %w", dto.Description, err)
			}
		}

		existing, err := services.Budgets.ListBudgets()
		if err != nil {
			return err
		}
		seeded := 0
		for _, dto := range sampleBudgets(today.Month()) {
			if budget.CheckDuplicate(existing, dto) != nil {
				continue
			}
			if _, err := services.Budgets.CreateBudget(&dto); err != nil {
				return fmt.Errorf("failed to seed budget %q: %w", dto.Category, err)
			}
			seeded++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d transactions and %d budgets\n", len(sampleTransactions(today)), seeded)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}

func clearRecords(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&txDatamodel.Transaction{}).Error; err != nil {
			return err
		}
		return all.Delete(&budgetDatamodel.Budget{}).Error
	})
}

func sampleTransactions(today period.Date) []transaction.CreateTransactionDTO {
	day := func(monthsAgo, d int) period.Date {
		m := today.Month().AddMonths(-monthsAgo)
		return period.NewDate(m.Year, m.Month, d)
	}
	expense := func(amount float64, description, cat string, date period.Date) transaction.CreateTransactionDTO {
		return transaction.CreateTransactionDTO{Amount: amount, Description: description, Category: cat, Date: date, Type: transaction.TypeExpense}
	}

	return []transaction.CreateTransactionDTO{
		{Amount: 4200, Description: "Monthly salary", Category: "Other", Date: day(0, 1), Type: transaction.TypeIncome},
		expense(1200, "Rent", "Bills & Utilities", day(0, 1)),
		expense(86.4, "Groceries", "Food & Dining", day(0, 3)),
		expense(42.5, "Dinner with friends", "Food & Dining", day(0, 5)),
		expense(60, "Fuel", "Transportation", day(0, 6)),
		expense(15.99, "Streaming subscription", "Entertainment", day(0, 7)),
		expense(35, "Gym membership", "Fitness", day(0, 8)),
		{Amount: 4200, Description: "Monthly salary", Category: "Other", Date: day(1, 1), Type: transaction.TypeIncome},
		expense(1200, "Rent", "Bills & Utilities", day(1, 1)),
		expense(240.75, "Groceries", "Food & Dining", day(1, 12)),
		expense(130, "New shoes", "Shopping", day(1, 18)),
		expense(1200, "Rent", "Bills & Utilities", day(2, 1)),
		expense(310.2, "Groceries", "Food & Dining", day(2, 14)),
		expense(480, "Flight tickets", "Travel", day(2, 20)),
	}
}

func sampleBudgets(month period.Month) []budget.CreateBudgetDTO {
	return []budget.CreateBudgetDTO{
		{Category: "Food & Dining", Amount: 400, Month: month},
		{Category: "Transportation", Amount: 150, Month: month},
		{Category: "Entertainment", Amount: 50, Month: month},
		{Category: "Bills & Utilities", Amount: 1250, Month: month},
	}
}
