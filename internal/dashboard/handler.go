package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/core/period"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transport"
)

type TransactionLister interface {
	ListTransactions() ([]transaction.Transaction, error)
}

type BudgetLister interface {
	ListBudgets() ([]budget.Budget, error)
}

type Handler struct {
	*transport.BaseHandler
	Transactions TransactionLister
	Budgets      BudgetLister
	Catalog      *category.Catalog
	now          func() time.Time
}

func NewHandler(baseHandler *transport.BaseHandler, transactions TransactionLister, budgets BudgetLister, catalog *category.Catalog) *Handler {
	return &Handler{
		BaseHandler:  baseHandler,
		Transactions: transactions,
		Budgets:      budgets,
		Catalog:      catalog,
		now:          time.Now,
	}
}

// GetDashboard serves the dashboard for ?month=YYYY-MM, defaulting to the
// current month. window and recent override the default sizes.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	month := period.MonthOf(h.now())
	if raw := q.Get("month"); raw != "" {
		m, err := period.ParseMonth(raw)
		if err != nil {
			h.HandleServiceError(w, internal.NewValidationFieldError("month", err.Error(), internal.ErrCodeInvalidMonth))
			return
		}
		month = m
	}

	opts := Options{Catalog: h.Catalog}
	var err error
	if opts.Window, err = positiveQueryInt(q.Get("window")); err != nil {
		h.WriteError(w, http.StatusBadRequest, "window must be a positive integer")
		return
	}
	if opts.RecentLimit, err = positiveQueryInt(q.Get("recent")); err != nil {
		h.WriteError(w, http.StatusBadRequest, "recent must be a positive integer")
		return
	}

	transactions, err := h.Transactions.ListTransactions()
	if err != nil {
		h.Logger.Error("GetDashboard: failed to list transactions", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	budgets, err := h.Budgets.ListBudgets()
	if err != nil {
		h.Logger.Error("GetDashboard: failed to list budgets", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, Build(transactions, budgets, month, opts))
}

func positiveQueryInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
