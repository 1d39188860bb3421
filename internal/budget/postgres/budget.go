package postgres

import (
	"errors"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.RepositoryAPI {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) GetAll() ([]*budgetDatamodel.Budget, error) {
	var rows []*budgetDatamodel.Budget
	err := r.db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *BudgetRepository) GetByID(id string) (*budgetDatamodel.Budget, error) {
	var row budgetDatamodel.Budget
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budget.ErrBudgetNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *BudgetRepository) Create(b *budgetDatamodel.Budget) error {
	return r.db.Create(b).Error
}

func (r *BudgetRepository) Update(b *budgetDatamodel.Budget) error {
	result := r.db.Model(&budgetDatamodel.Budget{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"category": b.Category,
			"amount":   b.Amount,
			"month":    b.Month,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return budget.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&budgetDatamodel.Budget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return budget.ErrBudgetNotFound
	}
	return nil
}
