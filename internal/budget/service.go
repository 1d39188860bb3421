package budget

import (
	"errors"
	"log/slog"
	"time"

	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
)

type RepositoryAPI interface {
	GetAll() ([]*budgetDatamodel.Budget, error)
	GetByID(id string) (*budgetDatamodel.Budget, error)
	Create(budget *budgetDatamodel.Budget) error
	Update(budget *budgetDatamodel.Budget) error
	Delete(id string) error
}

type CategoryChecker interface {
	IsValidCategory(name string) bool
}

// Service persists budgets. It does not enforce one budget per
// (category, month); that check belongs to the creating client.
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

func (s *Service) isKnownCategory() func(string) bool {
	if s.categories == nil {
		return nil
	}
	return s.categories.IsValidCategory
}

func (s *Service) CreateBudget(dto *CreateBudgetDTO) (*Budget, error) {
	if err := dto.Validate(s.isKnownCategory()); err != nil {
		s.logger.Warn("budget validation failed", "error", err)
		return nil, err
	}

	b := NewBudget(*dto)
	if err := s.repo.Create(ToDataModel(b)); err != nil {
		s.logger.Error("failed to create budget", "error", err)
		return nil, err
	}

	s.logger.Info("budget created successfully",
		"budget_id", b.ID,
		"category", b.Category,
		"month", b.Month.String(),
		"amount", b.Amount)

	return b, nil
}

func (s *Service) ListBudgets() ([]Budget, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err)
		return nil, err
	}

	budgets, err := FromDataModelSlice(rows)
	if err != nil {
		s.logger.Error("stored budget is malformed", "error", err)
		return nil, err
	}

	return budgets, nil
}

func (s *Service) UpdateBudget(rawID string, dto *UpdateBudgetDTO) (*Budget, error) {
	id, err := ParseID(rawID)
	if err != nil {
		s.logger.Warn("update budget rejected: malformed id", "id", rawID)
		return nil, err
	}

	if err := dto.Validate(s.isKnownCategory()); err != nil {
		s.logger.Warn("budget update validation failed", "error", err, "budget_id", id)
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		if !errors.Is(err, ErrBudgetNotFound) {
			s.logger.Error("failed to load budget for update", "error", err, "budget_id", id)
		}
		return nil, err
	}

	current, err := FromDataModel(row)
	if err != nil {
		s.logger.Error("stored budget is malformed", "error", err, "budget_id", id)
		return nil, err
	}

	updated := dto.Apply(*current)
	updated.UpdatedAt = time.Now()
	if err := s.repo.Update(ToDataModel(&updated)); err != nil {
		s.logger.Error("failed to update budget", "error", err, "budget_id", id)
		return nil, err
	}

	s.logger.Info("budget updated successfully", "budget_id", id)
	return &updated, nil
}

func (s *Service) DeleteBudget(rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		s.logger.Warn("delete budget rejected: malformed id", "id", rawID)
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			s.logger.Warn("budget not found for deletion", "budget_id", id)
		} else {
			s.logger.Error("failed to delete budget", "error", err, "budget_id", id)
		}
		return err
	}

	s.logger.Info("budget deleted successfully", "budget_id", id)
	return nil
}
