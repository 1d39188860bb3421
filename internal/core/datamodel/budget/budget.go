package budget

import "time"

type Budget struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Category  string    `gorm:"column:category;not null"`
	Amount    float64   `gorm:"column:amount;not null"`
	Month     string    `gorm:"column:month;type:varchar(7);not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Budget) TableName() string {
	return "budgets"
}
