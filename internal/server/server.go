// Package server assembles the REST API from its repositories, services and
// handlers.
package server

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/finance-tracker/api"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	budgetPostgres "github.com/frahmantamala/finance-tracker/internal/budget/postgres"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	txPostgres "github.com/frahmantamala/finance-tracker/internal/transaction/postgres"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/internal/transport/rest"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
	"github.com/go-chi/chi"
	"gorm.io/gorm"
)

type Dependencies struct {
	Gorm     *gorm.DB
	SQL      *sql.DB
	Driver   string
	Catalog  *category.Catalog
	Logger   *slog.Logger
	Validate bool
}

type Services struct {
	Transactions *transaction.Service
	Budgets      *budget.Service
	Catalog      *category.Catalog
}

// NewServices builds the domain services over gorm repositories.
func NewServices(deps Dependencies) *Services {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = category.DefaultCatalog()
	}
	if deps.Logger == nil {
		deps.Logger = logger.LoggerWrapper()
	}
	return &Services{
		Transactions: transaction.NewService(txPostgres.NewTransactionRepository(deps.Gorm), catalog, deps.Logger),
		Budgets:      budget.NewService(budgetPostgres.NewBudgetRepository(deps.Gorm), catalog, deps.Logger),
		Catalog:      catalog,
	}
}

// NewRouter returns the full HTTP API. Validate turns on OpenAPI request
// validation and publishes the document with Swagger UI.
func NewRouter(deps Dependencies) (*chi.Mux, error) {
	if deps.Logger == nil {
		deps.Logger = logger.LoggerWrapper()
	}
	services := NewServices(deps)
	base := transport.NewBaseHandler(deps.Logger)

	handlers := rest.Handlers{
		DB:           deps.SQL,
		DBDriver:     deps.Driver,
		Transactions: transaction.NewHandler(base, services.Transactions),
		Budgets:      budget.NewHandler(base, services.Budgets),
		Categories:   category.NewHandler(base, services.Catalog),
		Dashboard:    dashboard.NewHandler(base, services.Transactions, services.Budgets, services.Catalog),
	}
	if deps.Validate {
		handlers.OpenAPISpec = api.OpenAPISpec
	}

	router := chi.NewRouter()
	if err := rest.RegisterAllRoutes(router, handlers, base.Logger); err != nil {
		return nil, err
	}
	return router, nil
}
