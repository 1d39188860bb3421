package budget

import (
	"fmt"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/google/uuid"
)

// Budget is a spending ceiling for one category in one calendar month.
type Budget struct {
	ID        string       `json:"id"`
	Category  string       `json:"category"`
	Amount    float64      `json:"amount"`
	Month     period.Month `json:"month"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewBudget(dto CreateBudgetDTO) *Budget {
	now := time.Now()
	return &Budget{
		ID:        uuid.NewString(),
		Category:  dto.Category,
		Amount:    dto.Amount,
		Month:     dto.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Merge overlays the non-zero fields of updated onto b.
func (b Budget) Merge(updated Budget) Budget {
	if updated.Category != "" {
		b.Category = updated.Category
	}
	if updated.Amount != 0 {
		b.Amount = updated.Amount
	}
	if !updated.Month.IsZero() {
		b.Month = updated.Month
	}
	if !updated.CreatedAt.IsZero() {
		b.CreatedAt = updated.CreatedAt
	}
	if !updated.UpdatedAt.IsZero() {
		b.UpdatedAt = updated.UpdatedAt
	}
	return b
}

func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}

func ToDataModel(b *Budget) *budgetDatamodel.Budget {
	return &budgetDatamodel.Budget{
		ID:        b.ID,
		Category:  b.Category,
		Amount:    b.Amount,
		Month:     b.Month.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromDataModel(b *budgetDatamodel.Budget) (*Budget, error) {
	month, err := period.ParseMonth(b.Month)
	if err != nil {
		return nil, fmt.Errorf("budget %s: %w", b.ID, err)
	}
	return &Budget{
		ID:        b.ID,
		Category:  b.Category,
		Amount:    b.Amount,
		Month:     month,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}, nil
}

func FromDataModelSlice(rows []*budgetDatamodel.Budget) ([]Budget, error) {
	result := make([]Budget, 0, len(rows))
	for _, row := range rows {
		b, err := FromDataModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, nil
}

var (
	ErrBudgetNotFound = internal.NewNotFoundError("Budget not found", internal.ErrCodeBudgetNotFound)
	ErrBudgetExists   = internal.NewConflictError("A budget for this category and month already exists", internal.ErrCodeBudgetExists)
	ErrInvalidID      = internal.NewValidationError("invalid budget id", internal.ErrCodeInvalidID)
)
