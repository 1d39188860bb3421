package budget

import (
	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/core/common/validation"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
)

type CreateBudgetDTO struct {
	Category string       `json:"category"`
	Amount   float64      `json:"amount"`
	Month    period.Month `json:"month"`
}

func (dto CreateBudgetDTO) Validate(isKnownCategory func(string) bool) error {
	v := validation.NewValidator()
	v.Field("category", dto.Category).
		Required(internal.ErrCodeInvalidCategory).
		Custom(validation.KnownCategory("category", isKnownCategory))
	v.Field("amount", dto.Amount).
		Positive(internal.ErrCodeInvalidAmount)
	v.Field("month", dto.Month).
		Required(internal.ErrCodeInvalidMonth)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateBudgetDTO is a partial update; nil fields are left untouched.
type UpdateBudgetDTO struct {
	Category *string       `json:"category,omitempty"`
	Amount   *float64      `json:"amount,omitempty"`
	Month    *period.Month `json:"month,omitempty"`
}

func (dto UpdateBudgetDTO) Validate(isKnownCategory func(string) bool) error {
	v := validation.NewValidator()
	if dto.Category != nil {
		v.Field("category", *dto.Category).
			Required(internal.ErrCodeInvalidCategory).
			Custom(validation.KnownCategory("category", isKnownCategory))
	}
	if dto.Amount != nil {
		v.Field("amount", *dto.Amount).
			Positive(internal.ErrCodeInvalidAmount)
	}
	if dto.Month != nil {
		v.Field("month", *dto.Month).
			Required(internal.ErrCodeInvalidMonth)
	}

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// Apply returns b with the present fields of dto written over it.
func (dto UpdateBudgetDTO) Apply(b Budget) Budget {
	if dto.Category != nil {
		b.Category = *dto.Category
	}
	if dto.Amount != nil {
		b.Amount = *dto.Amount
	}
	if dto.Month != nil {
		b.Month = *dto.Month
	}
	return b
}

type DeleteResponse struct {
	Message string `json:"message"`
}
