package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 販売単位（SKU）。必ず1つのProductに属する。
// 参照先のSize/Color/Fabric/Fit/TaxClassが消えたらFKはNULLに落とす。
type ProductVariant struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index:idx_variant_product" json:"product_id"`
	SKU       string  `gorm:"column:sku;type:varchar(100);uniqueIndex;not null" json:"sku"`
	Barcode   *string `gorm:"type:varchar(100);uniqueIndex" json:"barcode"`

	SizeID     *int64 `json:"size_id"`
	ColorID    *int64 `json:"color_id"`
	FabricID   *int64 `json:"fabric_id"`
	FitID      *int64 `json:"fit_id"`
	TaxClassID *int64 `json:"tax_class_id"`

	Size     *Size     `gorm:"foreignKey:SizeID;constraint:OnDelete:SET NULL" json:"size,omitempty"`
	Color    *Color    `gorm:"foreignKey:ColorID;constraint:OnDelete:SET NULL" json:"color,omitempty"`
	Fabric   *Fabric   `gorm:"foreignKey:FabricID;constraint:OnDelete:SET NULL" json:"fabric,omitempty"`
	Fit      *Fit      `gorm:"foreignKey:FitID;constraint:OnDelete:SET NULL" json:"fit,omitempty"`
	TaxClass *TaxClass `gorm:"foreignKey:TaxClassID;constraint:OnDelete:SET NULL" json:"tax_class,omitempty"`

	CostPrice   decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost_price"`
	RetailPrice decimal.Decimal     `gorm:"type:decimal(10,2);not null;default:0" json:"retail_price"`
	SalePrice   decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"sale_price"`
	Weight      decimal.NullDecimal `gorm:"type:decimal(8,2)" json:"weight"`

	IsOnline bool `gorm:"not null;default:true" json:"is_online"`
	IsPos    bool `gorm:"not null;default:true" json:"is_pos"`
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	StockQuantity     int `gorm:"not null;default:0" json:"stock_quantity"`
	LowStockThreshold int `gorm:"not null;default:5" json:"low_stock_threshold"`

	Images []ProductImage `gorm:"foreignKey:VariantID" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

// 売価（sale_priceがあればそちら）
func (v *ProductVariant) EffectivePrice() decimal.Decimal {
	if v.SalePrice.Valid {
		return v.SalePrice.Decimal
	}
	return v.RetailPrice
}

// 在庫が閾値以下か
func (v *ProductVariant) LowStock() bool {
	return v.StockQuantity > 0 && v.StockQuantity <= v.LowStockThreshold
}
