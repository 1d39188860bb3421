package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

var _ = Describe("loadConfig", func() {
	It("falls back to defaults without a config file", func() {
		cfg, err := loadConfig(GinkgoT().TempDir())
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Server.Port).To(Equal(internal.DefaultConfig().Server.Port))
		Expect(cfg.Database.Driver).To(Equal(internal.DriverSQLite))
	})

	It("reads config.yml from the given directory", func() {
		dir := GinkgoT().TempDir()
		yml := []byte(`
http_server:
  port: 9191
database:
  driver: sqlite
  source: ledger.db
client:
  base_url: http://ledger.local:9191
  timeout: 4s
observability:
  logging:
    level: debug
`)
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600)).To(Succeed())

		cfg, err := loadConfig(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Server.Port).To(Equal(9191))
		Expect(cfg.Database.Source).To(Equal("ledger.db"))
		Expect(cfg.Client.Timeout).To(Equal(4 * time.Second))
		Expect(cfg.Observability.Logging.Level).To(Equal("debug"))
		Expect(cfg.Server.ShutdownTimeout).To(Equal(internal.DefaultConfig().Server.ShutdownTimeout))
	})

	It("rejects an invalid config", func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), []byte("database:\n  driver: mysql\n"), 0o600)).To(Succeed())

		_, err := loadConfig(dir)
		Expect(err).To(MatchError(ContainSubstring("unsupported driver")))
	})
})

var _ = Describe("output", func() {
	june := period.MustParseMonth("2024-06")
	transactions := []transaction.Transaction{
		{ID: "t1", Amount: 12.5, Description: "Lunch", Category: "Food & Dining", Date: period.MustParseDate("2024-06-03"), Type: transaction.TypeExpense},
		{ID: "t2", Amount: 1000, Description: "Salary", Category: "Other", Date: period.MustParseDate("2024-06-01"), Type: transaction.TypeIncome},
	}

	It("signs expenses in the transaction table", func() {
		var buf bytes.Buffer
		printTransactions(&buf, transactions)

		Expect(buf.String()).To(ContainSubstring("-12.50"))
		Expect(buf.String()).To(ContainSubstring("1000.00"))
		Expect(buf.String()).ToNot(ContainSubstring("-1000.00"))
	})

	It("prints a placeholder for an empty list", func() {
		var buf bytes.Buffer
		printTransactions(&buf, nil)
		Expect(buf.String()).To(ContainSubstring("no transactions"))
	})

	It("prints each budget with its message", func() {
		b := budget.Budget{ID: "b1", Category: "Food & Dining", Amount: 25, Month: june}
		var buf bytes.Buffer
		printInsights(&buf, budget.CalculateAll([]budget.Budget{b}, transactions))

		Expect(buf.String()).To(ContainSubstring("2024-06"))
		Expect(buf.String()).To(ContainSubstring("You're halfway through your Food & Dining budget."))
	})

	It("renders every dashboard section", func() {
		d := dashboard.Build(transactions, nil, june, dashboard.Options{Window: 3})
		var buf bytes.Buffer
		printDashboard(&buf, d)

		out := buf.String()
		Expect(out).To(ContainSubstring("Dashboard for Jun 2024"))
		Expect(out).To(ContainSubstring("Top category"))
		Expect(out).To(ContainSubstring("Apr 2024"))
		Expect(out).To(ContainSubstring("no budgets set for this month"))
		Expect(out).To(ContainSubstring("Lunch"))
	})

	DescribeTable("scales trend bars",
		func(v, peak float64, expected int) {
			Expect(bar(v, peak, 10)).To(HaveLen(expected))
		},
		Entry("peak fills the width", 50.0, 50.0, 10),
		Entry("half", 25.0, 50.0, 5),
		Entry("tiny values still show", 0.1, 50.0, 1),
		Entry("zero is empty", 0.0, 50.0, 0),
	)
})

var _ = Describe("seed data", func() {
	catalog := category.DefaultCatalog()
	today := period.MustParseDate("2024-03-31")

	It("produces valid transactions", func() {
		for _, dto := range sampleTransactions(today) {
			Expect(dto.Validate(catalog.IsValidCategory)).To(Succeed(), dto.Description)
		}
	})

	It("produces valid budgets without duplicates", func() {
		var existing []budget.Budget
		for _, dto := range sampleBudgets(today.Month()) {
			Expect(dto.Validate(catalog.IsValidCategory)).To(Succeed())
			Expect(budget.CheckDuplicate(existing, dto)).To(Succeed())
			existing = append(existing, *budget.NewBudget(dto))
		}
	})
})
