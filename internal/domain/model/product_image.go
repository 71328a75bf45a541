package model

import "time"

// 商品画像。variant_idが入っていればバリアント専用の画像。
// is_primaryはグループ内で1枚だけ、という運用上の約束（DB制約ではない）。
type ProductImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	VariantID *int64    `gorm:"index" json:"variant_id"`
	ImageURL  string    `gorm:"type:varchar(2048);not null" json:"image_url"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
