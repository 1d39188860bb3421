package budget

import (
	"fmt"
	"math"

	"github.com/frahmantamala/finance-tracker/internal/core/money"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

type Status string

const (
	StatusOverBudget Status = "over-budget"
	StatusWarning    Status = "warning"
	StatusHalfway    Status = "halfway"
	StatusOnTrack    Status = "on-track"
)

// Classification thresholds, in percent of the budget consumed.
const (
	OverBudgetThreshold = 100.0
	WarningThreshold    = 80.0
	HalfwayThreshold    = 50.0
)

// Insight describes how much of a budget has been consumed.
// PercentageUsed is clamped to 100 for progress display; RawPercentage and
// Remaining are not clamped.
type Insight struct {
	Budget         Budget  `json:"budget"`
	ActualSpent    float64 `json:"actual_spent"`
	PercentageUsed float64 `json:"percentage_used"`
	RawPercentage  float64 `json:"-"`
	Remaining      float64 `json:"remaining"`
	Status         Status  `json:"status"`
	Message        string  `json:"message"`
}

// ActualSpent sums the expenses of b's category dated within b's month.
func ActualSpent(b Budget, transactions []transaction.Transaction) float64 {
	var spent float64
	for _, t := range transactions {
		if t.IsExpense() && t.Category == b.Category && b.Month.Contains(t.Date) {
			spent += t.Amount
		}
	}
	return spent
}

// Classify maps a raw (unclamped) percentage to a status. The first
// threshold reached wins, checked from the top.
func Classify(rawPercentage float64) Status {
	switch {
	case rawPercentage >= OverBudgetThreshold:
		return StatusOverBudget
	case rawPercentage >= WarningThreshold:
		return StatusWarning
	case rawPercentage >= HalfwayThreshold:
		return StatusHalfway
	default:
		return StatusOnTrack
	}
}

func rawPercentage(spent, amount float64) float64 {
	if amount <= 0 {
		if spent > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return spent / amount * 100
}

// Calculate builds the insight for one budget against the full transaction set.
func Calculate(b Budget, transactions []transaction.Transaction) Insight {
	spent := ActualSpent(b, transactions)
	raw := rawPercentage(spent, b.Amount)
	remaining := b.Amount - spent
	status := Classify(raw)

	return Insight{
		Budget:         b,
		ActualSpent:    spent,
		PercentageUsed: math.Min(raw, 100),
		RawPercentage:  raw,
		Remaining:      remaining,
		Status:         status,
		Message:        message(status, b.Category, raw, remaining),
	}
}

// CalculateAll returns insights in the order of budgets.
func CalculateAll(budgets []Budget, transactions []transaction.Transaction) []Insight {
	insights := make([]Insight, 0, len(budgets))
	for _, b := range budgets {
		insights = append(insights, Calculate(b, transactions))
	}
	return insights
}

func message(status Status, category string, raw, remaining float64) string {
	switch status {
	case StatusOverBudget:
		return fmt.Sprintf("You've exceeded your %s budget by %s.", category, money.Format(math.Abs(remaining)))
	case StatusWarning:
		return fmt.Sprintf("You're %s%% through your %s budget.", money.FormatPercent(raw), category)
	case StatusHalfway:
		return fmt.Sprintf("You're halfway through your %s budget.", category)
	default:
		return fmt.Sprintf("You're on track with your %s budget.", category)
	}
}
