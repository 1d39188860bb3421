package transaction

import (
	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/core/common/validation"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
)

// CreateTransactionDTO is a draft transaction: everything except the
// identifier, which the server assigns.
type CreateTransactionDTO struct {
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        period.Date `json:"date"`
	Type        Type        `json:"type"`
}

// Validate checks the draft. isKnownCategory may be nil to skip the
// category lookup.
func (dto CreateTransactionDTO) Validate(isKnownCategory func(string) bool) error {
	v := validation.NewValidator()
	v.Field("amount", dto.Amount).
		Positive(internal.ErrCodeInvalidAmount)
	v.Field("description", dto.Description).
		Required(internal.ErrCodeInvalidDescription).
		MaxLength(MaxDescriptionLength, internal.ErrCodeInvalidDescription)
	v.Field("category", dto.Category).
		Required(internal.ErrCodeInvalidCategory).
		Custom(validation.KnownCategory("category", isKnownCategory))
	v.Field("date", dto.Date).
		Required(internal.ErrCodeInvalidDate)
	v.Field("type", string(dto.Type)).
		Required(internal.ErrCodeInvalidType).
		OneOf(internal.ErrCodeInvalidType, string(TypeExpense), string(TypeIncome))

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type DeleteResponse struct {
	Message string `json:"message"`
}
