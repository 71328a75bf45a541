package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 税区分。is_defaultの扱いはStoreと同じ。
type TaxClass struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Rate      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"rate"`
	IsDefault bool            `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (TaxClass) TableName() string {
	return "tax_classes"
}
