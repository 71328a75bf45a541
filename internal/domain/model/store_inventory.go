package model

import "time"

// 店舗×バリアントの在庫。(store_id, variant_id)で一意。
type StoreInventory struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID          int64     `gorm:"not null;uniqueIndex:idx_store_variant" json:"store_id"`
	VariantID        int64     `gorm:"not null;uniqueIndex:idx_store_variant" json:"variant_id"`
	Quantity         int       `gorm:"not null;default:0" json:"quantity"`
	ReservedQuantity int       `gorm:"not null;default:0" json:"reserved_quantity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (StoreInventory) TableName() string {
	return "store_inventory"
}

// 引当済みを除いた販売可能数
func (si *StoreInventory) Available() int {
	return si.Quantity - si.ReservedQuantity
}
