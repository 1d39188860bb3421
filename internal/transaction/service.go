package transaction

import (
	"errors"
	"log/slog"

	txDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
)

type RepositoryAPI interface {
	GetAll() ([]*txDatamodel.Transaction, error)
	Create(transaction *txDatamodel.Transaction) error
	Delete(id string) error
}

type CategoryChecker interface {
	IsValidCategory(name string) bool
}

type Service struct {
	repo       RepositoryAPI
	categories CategoryChecker
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, categories CategoryChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

func (s *Service) CreateTransaction(dto *CreateTransactionDTO) (*Transaction, error) {
	var isKnown func(string) bool
	if s.categories != nil {
		isKnown = s.categories.IsValidCategory
	}
	if err := dto.Validate(isKnown); err != nil {
		s.logger.Warn("transaction validation failed", "error", err)
		return nil, err
	}

	t := NewTransaction(*dto)
	if err := s.repo.Create(ToDataModel(t)); err != nil {
		s.logger.Error("failed to create transaction", "error", err)
		return nil, err
	}

	s.logger.Info("transaction created successfully",
		"transaction_id", t.ID,
		"amount", t.Amount,
		"category", t.Category,
		"type", t.Type)

	return t, nil
}

// ListTransactions returns every transaction, newest date first.
func (s *Service) ListTransactions() ([]Transaction, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, err
	}

	transactions, err := FromDataModelSlice(rows)
	if err != nil {
		s.logger.Error("stored transaction is malformed", "error", err)
		return nil, err
	}

	return transactions, nil
}

func (s *Service) DeleteTransaction(rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		s.logger.Warn("delete transaction rejected: malformed id", "id", rawID)
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			s.logger.Warn("transaction not found for deletion", "transaction_id", id)
		} else {
			s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		}
		return err
	}

	s.logger.Info("transaction deleted successfully", "transaction_id", id)
	return nil
}
