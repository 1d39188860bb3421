package transaction_test

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/category"
	txDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

// Mock repository for testing
type mockTransactionRepository struct {
	rows        []*txDatamodel.Transaction
	getAllError error
	createError error
	deleteError error
}

func (m *mockTransactionRepository) GetAll() ([]*txDatamodel.Transaction, error) {
	if m.getAllError != nil {
		return nil, m.getAllError
	}
	return m.rows, nil
}

func (m *mockTransactionRepository) Create(t *txDatamodel.Transaction) error {
	if m.createError != nil {
		return m.createError
	}
	m.rows = append(m.rows, t)
	return nil
}

func (m *mockTransactionRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	for i, row := range m.rows {
		if row.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return transaction.ErrTransactionNotFound
}

func validDraft() transaction.CreateTransactionDTO {
	return transaction.CreateTransactionDTO{
		Amount:      50,
		Description: "Lunch",
		Category:    "Food & Dining",
		Date:        period.MustParseDate("2024-06-01"),
		Type:        transaction.TypeExpense,
	}
}

var _ = Describe("TransactionService", func() {
	var (
		service  *transaction.Service
		mockRepo *mockTransactionRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = &mockTransactionRepository{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = transaction.NewService(mockRepo, category.DefaultCatalog(), logger)
	})

	Describe("CreateTransaction", func() {
		It("assigns an id and stores the record", func() {
			// Given
			dto := validDraft()

			// When
			created, err := service.CreateTransaction(&dto)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).ToNot(BeEmpty())
			_, parseErr := transaction.ParseID(created.ID)
			Expect(parseErr).ToNot(HaveOccurred())
			Expect(created.Amount).To(Equal(50.0))
			Expect(mockRepo.rows).To(HaveLen(1))
			Expect(mockRepo.rows[0].Date).To(Equal("2024-06-01"))
		})

		DescribeTable("rejects invalid drafts without storing them",
			func(mutate func(*transaction.CreateTransactionDTO), field string) {
				dto := validDraft()
				mutate(&dto)

				created, err := service.CreateTransaction(&dto)

				Expect(created).To(BeNil())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
				Expect(appErr.Details).To(BeAssignableToTypeOf(internal.ValidationErrors{}))
				Expect(appErr.Details.(internal.ValidationErrors).Errors[0].Field).To(Equal(field))
				Expect(mockRepo.rows).To(BeEmpty())
			},
			Entry("zero amount", func(d *transaction.CreateTransactionDTO) { d.Amount = 0 }, "amount"),
			Entry("negative amount", func(d *transaction.CreateTransactionDTO) { d.Amount = -5 }, "amount"),
			Entry("empty description", func(d *transaction.CreateTransactionDTO) { d.Description = "" }, "description"),
			Entry("description over 100 characters", func(d *transaction.CreateTransactionDTO) { d.Description = strings.Repeat("x", 101) }, "description"),
			Entry("unknown category", func(d *transaction.CreateTransactionDTO) { d.Category = "Snacks" }, "category"),
			Entry("missing date", func(d *transaction.CreateTransactionDTO) { d.Date = period.Date{} }, "date"),
			Entry("unknown type", func(d *transaction.CreateTransactionDTO) { d.Type = "transfer" }, "type"),
		)

		It("accepts a description of exactly 100 characters", func() {
			dto := validDraft()
			dto.Description = strings.Repeat("x", 100)
			_, err := service.CreateTransaction(&dto)
			Expect(err).ToNot(HaveOccurred())
		})

		It("propagates repository failures", func() {
			mockRepo.createError = errors.New("disk full")
			dto := validDraft()
			_, err := service.CreateTransaction(&dto)
			Expect(err).To(MatchError("disk full"))
		})
	})

	Describe("ListTransactions", func() {
		It("converts stored rows", func() {
			mockRepo.rows = []*txDatamodel.Transaction{
				{ID: "a", Amount: 10, Description: "Bus", Category: "Transportation", Date: "2024-06-02", Type: "expense"},
			}
			list, err := service.ListTransactions()
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Date).To(Equal(period.MustParseDate("2024-06-02")))
			Expect(list[0].IsExpense()).To(BeTrue())
		})

		It("fails on a malformed stored date", func() {
			mockRepo.rows = []*txDatamodel.Transaction{{ID: "a", Date: "06/02/2024"}}
			_, err := service.ListTransactions()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DeleteTransaction", func() {
		It("removes an existing transaction", func() {
			dto := validDraft()
			created, err := service.CreateTransaction(&dto)
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteTransaction(created.ID)).To(Succeed())
			Expect(mockRepo.rows).To(BeEmpty())
		})

		It("rejects a malformed id before reaching the repository", func() {
			mockRepo.deleteError = errors.New("should not be called")
			err := service.DeleteTransaction("42")
			Expect(errors.Is(err, transaction.ErrInvalidID)).To(BeTrue())
		})

		It("reports an unknown id as not found", func() {
			err := service.DeleteTransaction("8f14e45f-ceea-4e7a-9f6b-3c59d2a4b1e0")
			Expect(errors.Is(err, transaction.ErrTransactionNotFound)).To(BeTrue())
		})
	})
})
