package budget

import "github.com/frahmantamala/finance-tracker/internal/core/period"

// FindByCategoryMonth returns the budget already set for category in month.
func FindByCategoryMonth(budgets []Budget, category string, month period.Month) (Budget, bool) {
	for _, b := range budgets {
		if b.Category == category && b.Month == month {
			return b, true
		}
	}
	return Budget{}, false
}

// CheckDuplicate rejects a draft whose (category, month) pair is already
// budgeted. It must run before the draft is submitted.
func CheckDuplicate(existing []Budget, dto CreateBudgetDTO) error {
	if _, ok := FindByCategoryMonth(existing, dto.Category, dto.Month); ok {
		return ErrBudgetExists
	}
	return nil
}

// InMonth returns the budgets set for month, keeping their order.
func InMonth(budgets []Budget, month period.Month) []Budget {
	result := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Month == month {
			result = append(result, b)
		}
	}
	return result
}
