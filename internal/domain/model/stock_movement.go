package model

import "time"

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
	MovementReturn     MovementType = "return"
	MovementTransfer   MovementType = "transfer"
)

func ValidMovementType(t MovementType) bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment, MovementReturn, MovementTransfer:
		return true
	}
	return false
}

// 在庫変動の台帳。作成後は書き換えない（追記のみ）。
type StockMovement struct {
	ID             int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	VariantID      int64        `gorm:"not null;index:idx_movement_variant" json:"variant_id"`
	StoreID        *int64       `json:"store_id"`
	Type           MovementType `gorm:"type:varchar(20);not null;default:'adjustment'" json:"type"`
	Quantity       int          `gorm:"not null" json:"quantity"`
	QuantityBefore int          `gorm:"not null" json:"quantity_before"`
	QuantityAfter  int          `gorm:"not null" json:"quantity_after"`
	ReferenceType  string       `gorm:"type:varchar(50)" json:"reference_type"`
	ReferenceID    *int64       `json:"reference_id"`
	Notes          string       `gorm:"type:text" json:"notes"`
	UserID         *int64       `json:"user_id"`
	CreatedAt      time.Time    `json:"created_at"`
}
