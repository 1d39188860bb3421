package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/core/period"
)

// DateRange is a date window relative to "now".
type DateRange string

const (
	RangeAll         DateRange = "all"
	RangeThisMonth   DateRange = "thisMonth"
	RangeLastMonth   DateRange = "lastMonth"
	RangeLast3Months DateRange = "last3Months"
)

// AllCategories disables the category predicate.
const AllCategories = "all"

func ParseDateRange(s string) (DateRange, error) {
	switch r := DateRange(s); r {
	case RangeAll, RangeThisMonth, RangeLastMonth, RangeLast3Months:
		return r, nil
	case "":
		return RangeAll, nil
	default:
		return "", fmt.Errorf("unknown date range %q", s)
	}
}

// Filter selects transactions by free text, category and date window.
// A transaction is kept only when all three predicates hold.
type Filter struct {
	Search   string
	Category string
	Range    DateRange
}

func (f Filter) Matches(t Transaction, now time.Time) bool {
	return f.matchesSearch(t) && f.matchesCategory(t) && f.matchesRange(t, period.DateOf(now))
}

func (f Filter) matchesSearch(t Transaction) bool {
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}

func (f Filter) matchesCategory(t Transaction) bool {
	if f.Category == "" || f.Category == AllCategories {
		return true
	}
	return t.Category == f.Category
}

func (f Filter) matchesRange(t Transaction, today period.Date) bool {
	switch f.Range {
	case RangeThisMonth:
		return today.Month().Contains(t.Date)
	case RangeLastMonth:
		return today.Month().AddMonths(-1).Contains(t.Date)
	case RangeLast3Months:
		// calendar arithmetic keeps the day of month: 2024-06-15 -> 2024-03-15
		return !t.Date.Before(today.AddMonths(-3))
	default:
		return true
	}
}

// Apply returns the transactions accepted by f, in their original order.
func Apply(transactions []Transaction, f Filter, now time.Time) []Transaction {
	result := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Matches(t, now) {
			result = append(result, t)
		}
	}
	return result
}
