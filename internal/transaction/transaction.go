package transaction

import (
	"fmt"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	txDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/google/uuid"
)

// Type is the direction of a transaction. Amounts are always positive; the
// type decides whether they count as spend or income.
type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

const MaxDescriptionLength = 100

func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

type Transaction struct {
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        period.Date `json:"date"`
	Type        Type        `json:"type"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

func NewTransaction(dto CreateTransactionDTO) *Transaction {
	now := time.Now()
	return &Transaction{
		ID:          uuid.NewString(),
		Amount:      dto.Amount,
		Description: dto.Description,
		Category:    dto.Category,
		Date:        dto.Date,
		Type:        dto.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ParseID normalizes a transaction identifier, rejecting anything that is
// not a UUID.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}

func ToDataModel(t *Transaction) *txDatamodel.Transaction {
	return &txDatamodel.Transaction{
		ID:          t.ID,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date.String(),
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDataModel(t *txDatamodel.Transaction) (*Transaction, error) {
	date, err := period.ParseDate(t.Date)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	return &Transaction{
		ID:          t.ID,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        date,
		Type:        Type(t.Type),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}, nil
}

func FromDataModelSlice(rows []*txDatamodel.Transaction) ([]Transaction, error) {
	result := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := FromDataModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	return result, nil
}

var (
	ErrTransactionNotFound = internal.NewNotFoundError("Transaction not found", internal.ErrCodeTransactionNotFound)
	ErrInvalidID           = internal.NewValidationError("invalid transaction id", internal.ErrCodeInvalidID)
)
