// Package store holds the in-memory transactions and budgets and keeps them in
// step with the remote persistence API. Local state changes only after the
// remote call succeeds.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/core/events"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Persistence is the remote record API.
type Persistence interface {
	ListTransactions(ctx context.Context) ([]transaction.Transaction, error)
	CreateTransaction(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListBudgets(ctx context.Context) ([]budget.Budget, error)
	CreateBudget(ctx context.Context, dto budget.CreateBudgetDTO) (*budget.Budget, error)
	UpdateBudget(ctx context.Context, id string, dto budget.UpdateBudgetDTO) (*budget.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
}

type CategoryChecker interface {
	IsValidCategory(name string) bool
}

type Store struct {
	mu          sync.RWMutex
	state       State
	persistence Persistence
	categories  CategoryChecker
	bus         *events.EventBus
	logger      *slog.Logger
}

type Option func(*Store)

// WithCategories makes drafts with unknown category names fail validation
// before they are submitted.
func WithCategories(c CategoryChecker) Option {
	return func(s *Store) { s.categories = c }
}

func New(persistence Persistence, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		persistence: persistence,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = events.NewEventBus(logger)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

func (s *Store) Transactions() []transaction.Transaction {
	return s.Snapshot().Transactions
}

func (s *Store) Budgets() []budget.Budget {
	return s.Snapshot().Budgets
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loading
}

// Load fetches both collections concurrently and replaces them together. If
// either fetch fails, neither collection changes.
func (s *Store) Load(ctx context.Context) error {
	s.dispatch(ctx, SetLoading{Loading: true})

	var (
		transactions []transaction.Transaction
		budgets      []budget.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.persistence.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.persistence.ListBudgets(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load records", "error", err)
		s.dispatch(ctx, SetLoading{Loading: false})
		return err
	}

	s.dispatch(ctx,
		SetTransactions{Transactions: transactions},
		SetBudgets{Budgets: budgets},
		SetLoading{Loading: false},
	)
	s.logger.Info("records loaded", "transactions", len(transactions), "budgets", len(budgets))
	return nil
}

func (s *Store) AddTransaction(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
	if err := dto.Validate(s.isKnownCategory()); err != nil {
		return nil, err
	}

	created, err := s.persistence.CreateTransaction(ctx, dto)
	if err != nil {
		s.logger.Error("failed to add transaction", "error", err)
		return nil, err
	}

	s.dispatch(ctx, AddTransaction{Transaction: *created})
	return created, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	id = canonicalID(id)
	if err := s.persistence.DeleteTransaction(ctx, id); err != nil {
		s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		return err
	}

	s.dispatch(ctx, DeleteTransaction{ID: id})
	return nil
}

// CreateBudget rejects a draft whose (category, month) is already budgeted,
// then adds it.
func (s *Store) CreateBudget(ctx context.Context, dto budget.CreateBudgetDTO) (*budget.Budget, error) {
	if err := dto.Validate(s.isKnownCategory()); err != nil {
		return nil, err
	}
	if err := budget.CheckDuplicate(s.Budgets(), dto); err != nil {
		s.logger.Warn("budget rejected as duplicate",
			"category", dto.Category,
			"month", dto.Month.String())
		return nil, err
	}
	return s.AddBudget(ctx, dto)
}

// AddBudget submits dto as is. Callers run the duplicate check first.
func (s *Store) AddBudget(ctx context.Context, dto budget.CreateBudgetDTO) (*budget.Budget, error) {
	created, err := s.persistence.CreateBudget(ctx, dto)
	if err != nil {
		s.logger.Error("failed to add budget", "error", err)
		return nil, err
	}

	s.dispatch(ctx, AddBudget{Budget: *created})
	return created, nil
}

func (s *Store) UpdateBudget(ctx context.Context, id string, dto budget.UpdateBudgetDTO) (*budget.Budget, error) {
	id = canonicalID(id)
	if err := dto.Validate(s.isKnownCategory()); err != nil {
		return nil, err
	}

	updated, err := s.persistence.UpdateBudget(ctx, id, dto)
	if err != nil {
		s.logger.Error("failed to update budget", "error", err, "budget_id", id)
		return nil, err
	}

	s.dispatch(ctx, UpdateBudget{Budget: *updated})
	return updated, nil
}

func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	id = canonicalID(id)
	if err := s.persistence.DeleteBudget(ctx, id); err != nil {
		s.logger.Error("failed to delete budget", "error", err, "budget_id", id)
		return err
	}

	s.dispatch(ctx, DeleteBudget{ID: id})
	return nil
}

// canonicalID rewrites any UUID spelling the server accepts into the form it
// stores. Other identifiers pass through for the server to judge.
func canonicalID(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}
	return raw
}

func (s *Store) isKnownCategory() func(string) bool {
	if s.categories == nil {
		return nil
	}
	return s.categories.IsValidCategory
}

// dispatch applies actions as one atomic step and notifies subscribers once.
func (s *Store) dispatch(ctx context.Context, actions ...Action) {
	s.mu.Lock()
	next := s.state
	for _, a := range actions {
		next = Reduce(next, a)
	}
	s.state = next
	snapshot := copyState(next)
	s.mu.Unlock()

	if err := s.bus.PublishSync(ctx, newChangedEvent(actions, snapshot)); err != nil {
		s.logger.Warn("store listener failed", "error", err)
	}
}

func copyState(s State) State {
	return State{
		Transactions: append([]transaction.Transaction(nil), s.Transactions...),
		Budgets:      append([]budget.Budget(nil), s.Budgets...),
		Loading:      s.Loading,
	}
}
