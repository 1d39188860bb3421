package transaction

import "time"

type Transaction struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Amount      float64   `gorm:"column:amount;not null"`
	Description string    `gorm:"column:description;type:varchar(100);not null"`
	Category    string    `gorm:"column:category;not null"`
	Date        string    `gorm:"column:date;type:varchar(10);not null;index"`
	Type        string    `gorm:"column:type;type:varchar(10);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
