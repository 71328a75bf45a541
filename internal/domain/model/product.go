package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusDraft      ProductStatus = "draft"
	ProductStatusPublished  ProductStatus = "published"
	ProductStatusPosOnly    ProductStatus = "pos_only"
	ProductStatusOnlineOnly ProductStatus = "online_only"
)

func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusPosOnly, ProductStatusOnlineOnly:
		return true
	}
	return false
}

type ProductType string

const (
	ProductTypeStitched   ProductType = "stitched"
	ProductTypeUnstitched ProductType = "unstitched"
)

func ValidProductType(t ProductType) bool {
	return t == ProductTypeStitched || t == ProductTypeUnstitched
}

// 商品の集約ルート。バリアントと画像を所有する（cascade delete）。
// 削除はソフトデリート（バリアント等はハードデリート）。
type Product struct {
	ID               int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string              `gorm:"type:varchar(255);not null" json:"name"`
	Slug             string              `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description      string              `gorm:"type:text" json:"description"`
	ShortDescription string              `gorm:"type:varchar(500)" json:"short_description"`
	ProductType      ProductType         `gorm:"type:varchar(20);not null;default:'stitched'" json:"product_type"`
	BrandID          *int64              `json:"brand_id"`
	Brand            *Brand              `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Price            decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	SalePrice        decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"sale_price"`
	CostPrice        decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost_price"`
	StockQuantity    int                 `gorm:"not null;default:0" json:"stock_quantity"`
	Status           ProductStatus       `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	IsActive         bool                `gorm:"not null;default:true" json:"is_active"`
	IsFeatured       bool                `gorm:"not null;default:false" json:"is_featured"`
	IsBestseller     bool                `gorm:"not null;default:false" json:"is_bestseller"`

	// SEO
	MetaTitle       string `gorm:"type:varchar(70)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(170)" json:"meta_description"`
	MetaKeywords    string `gorm:"type:varchar(255)" json:"meta_keywords"`

	Categories      []Category       `gorm:"many2many:product_categories" json:"categories,omitempty"`
	AttributeValues []AttributeValue `gorm:"many2many:product_attribute_values" json:"attribute_values,omitempty"`
	Images          []ProductImage   `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Variants        []ProductVariant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
