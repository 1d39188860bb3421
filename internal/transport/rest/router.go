package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transport/middleware"
	"github.com/frahmantamala/finance-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

const specPath = "/openapi.yml"

type Handlers struct {
	DB       *sql.DB
	DBDriver string

	Transactions *transaction.Handler
	Budgets      *budget.Handler
	Categories   *category.Handler
	Dashboard    *dashboard.Handler

	// OpenAPISpec enables request validation and the Swagger UI when set.
	OpenAPISpec []byte
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, logger *slog.Logger) error {
	healthHandler := NewHealthHandler(h.DB, h.DBDriver)

	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	var validator func(http.Handler) http.Handler
	if len(h.OpenAPISpec) > 0 {
		doc, err := middleware.LoadOpenAPI(h.OpenAPISpec)
		if err != nil {
			return err
		}
		if validator, err = middleware.OpenAPIValidator(doc, logger); err != nil {
			return err
		}

		router.Get(specPath, swagger.SpecHandler(h.OpenAPISpec))
		router.Handle("/swagger/*", swagger.Handler(specPath))
	}

	router.Route("/api", func(r chi.Router) {
		if validator != nil {
			r.Use(validator)
		}

		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if h.Transactions != nil {
			r.Route("/transactions", func(tr chi.Router) {
				tr.MethodNotAllowed(methodNotAllowed(http.MethodGet, http.MethodPost))
				tr.Get("/", h.Transactions.ListTransactions)
				tr.Post("/", h.Transactions.CreateTransaction)

				tr.Route("/{id}", func(ir chi.Router) {
					ir.MethodNotAllowed(methodNotAllowed(http.MethodDelete))
					ir.Delete("/", h.Transactions.DeleteTransaction)
				})
			})
		}

		if h.Budgets != nil {
			r.Route("/budgets", func(br chi.Router) {
				br.MethodNotAllowed(methodNotAllowed(http.MethodGet, http.MethodPost))
				br.Get("/", h.Budgets.ListBudgets)
				br.Post("/", h.Budgets.CreateBudget)

				br.Route("/{id}", func(ir chi.Router) {
					ir.MethodNotAllowed(methodNotAllowed(http.MethodPut, http.MethodDelete))
					ir.Put("/", h.Budgets.UpdateBudget)
					ir.Delete("/", h.Budgets.DeleteBudget)
				})
			})
		}

		if h.Categories != nil {
			r.Get("/categories", h.Categories.GetCategories)
		}

		if h.Dashboard != nil {
			r.Get("/dashboard", h.Dashboard.GetDashboard)
		}
	})

	return nil
}

// methodNotAllowed answers 405 and lists the supported methods in Allow.
func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		appErr := &internal.AppError{
			Type:       internal.ErrorTypeValidation,
			Code:       internal.ErrCodeMethodNotAllowed,
			Message:    "Method " + r.Method + " not allowed",
			StatusCode: http.StatusMethodNotAllowed,
		}
		status, body := appErr.ToHTTPResponse()
		writeJSON(w, status, body)
	}
}
