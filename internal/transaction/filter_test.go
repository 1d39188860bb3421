package transaction_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

func tx(id, description, category, date string, amount float64, typ transaction.Type) transaction.Transaction {
	return transaction.Transaction{
		ID:          id,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        period.MustParseDate(date),
		Type:        typ,
	}
}

func ids(transactions []transaction.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ID)
	}
	return out
}

var _ = Describe("Filter", func() {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	transactions := []transaction.Transaction{
		tx("1", "Weekly groceries", "Food & Dining", "2024-06-10", 80, transaction.TypeExpense),
		tx("2", "Train ticket", "Transportation", "2024-06-01", 12, transaction.TypeExpense),
		tx("3", "Salary", "Other", "2024-05-31", 3000, transaction.TypeIncome),
		tx("4", "Pizza night", "Food & Dining", "2024-05-02", 25, transaction.TypeExpense),
		tx("5", "Concert", "Entertainment", "2024-03-15", 60, transaction.TypeExpense),
		tx("6", "Cinema", "Entertainment", "2024-03-14", 15, transaction.TypeExpense),
	}

	It("keeps everything with an empty filter", func() {
		Expect(ids(transaction.Apply(transactions, transaction.Filter{}, now))).To(Equal([]string{"1", "2", "3", "4", "5", "6"}))
	})

	Describe("search", func() {
		It("matches the description case-insensitively", func() {
			f := transaction.Filter{Search: "GROCER"}
			Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"1"}))
		})

		It("matches the category name too", func() {
			f := transaction.Filter{Search: "dining"}
			Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"1", "4"}))
		})
	})

	Describe("category", func() {
		It("requires an exact name", func() {
			f := transaction.Filter{Category: "Entertainment"}
			Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"5", "6"}))

			f = transaction.Filter{Category: "entertainment"}
			Expect(transaction.Apply(transactions, f, now)).To(BeEmpty())
		})

		It("is disabled by the all sentinel", func() {
			f := transaction.Filter{Category: transaction.AllCategories}
			Expect(transaction.Apply(transactions, f, now)).To(HaveLen(len(transactions)))
		})
	})

	Describe("date range", func() {
		It("selects the current calendar month", func() {
			f := transaction.Filter{Range: transaction.RangeThisMonth}
			Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"1", "2"}))
		})

		It("selects the previous calendar month", func() {
			f := transaction.Filter{Range: transaction.RangeLastMonth}
			Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"3", "4"}))
		})

		It("selects the last three months by calendar date", func() {
			f := transaction.Filter{Range: transaction.RangeLast3Months}
			Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"1", "2", "3", "4", "5"}))
		})

		It("wraps the previous month across the year boundary", func() {
			january := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
			december := []transaction.Transaction{tx("d", "Gift", "Shopping", "2023-12-24", 40, transaction.TypeExpense)}
			f := transaction.Filter{Range: transaction.RangeLastMonth}
			Expect(transaction.Apply(december, f, january)).To(HaveLen(1))
		})
	})

	It("combines all predicates", func() {
		f := transaction.Filter{Search: "pizza", Category: "Food & Dining", Range: transaction.RangeLastMonth}
		Expect(ids(transaction.Apply(transactions, f, now))).To(Equal([]string{"4"}))

		f.Range = transaction.RangeThisMonth
		Expect(transaction.Apply(transactions, f, now)).To(BeEmpty())
	})

	It("does not modify its input", func() {
		before := append([]transaction.Transaction(nil), transactions...)
		transaction.Apply(transactions, transaction.Filter{Search: "x"}, now)
		Expect(transactions).To(Equal(before))
	})
})

var _ = Describe("ParseDateRange", func() {
	It("accepts the known ranges and defaults to all", func() {
		r, err := transaction.ParseDateRange("last3Months")
		Expect(err).ToNot(HaveOccurred())
		Expect(r).To(Equal(transaction.RangeLast3Months))

		r, err = transaction.ParseDateRange("")
		Expect(err).ToNot(HaveOccurred())
		Expect(r).To(Equal(transaction.RangeAll))
	})

	It("rejects anything else", func() {
		_, err := transaction.ParseDateRange("lastYear")
		Expect(err).To(HaveOccurred())
	})
})
