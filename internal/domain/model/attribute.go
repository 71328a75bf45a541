package model

import "time"

// 商品属性（例: 機会・シーズン）。値はAttributeValueとして所有する。
type Attribute struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string           `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Values    []AttributeValue `gorm:"constraint:OnDelete:CASCADE" json:"values,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type AttributeValue struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	AttributeID int64      `gorm:"not null;index" json:"attribute_id"`
	Attribute   *Attribute `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"`
	Value       string     `gorm:"type:varchar(255);not null" json:"value"`
	SortOrder   int        `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
