package postgres

import (
	txDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"gorm.io/gorm"
)

// TransactionRepository implements transaction.RepositoryAPI using GORM
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.RepositoryAPI {
	return &TransactionRepository{db: db}
}

// GetAll returns every transaction, newest date first
func (r *TransactionRepository) GetAll() ([]*txDatamodel.Transaction, error) {
	var rows []*txDatamodel.Transaction
	err := r.db.Order("date DESC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *TransactionRepository) Create(t *txDatamodel.Transaction) error {
	return r.db.Create(t).Error
}

func (r *TransactionRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&txDatamodel.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}
	return nil
}
