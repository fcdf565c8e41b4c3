// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;not null"`
	Description string          `json:"description" gorm:"type:text"`
	ShowPrice   decimal.Decimal `json:"show_price" gorm:"type:decimal(10,2);not null;default:0"`
	Cover       string          `json:"cover" gorm:"size:255"`

	// Relationships
	Skus          []Sku          `json:"skus,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	ProductImages []ProductImage `json:"product_images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Attributes    []Attribute    `json:"attributes,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

type ProductImage struct {
	BaseModel
	ProductID uint             `json:"product_id" gorm:"not null;index"`
	Order     string           `json:"order" gorm:"column:sort_order;size:100"`
	URL       string           `json:"url" gorm:"size:255;not null"`
	Type      ProductImageType `json:"type" gorm:"type:varchar(20);not null;default:'list'"`
}

// Attribute names are unique per product among live rows; the partial index
// is what keeps concurrent resolvers from creating twins.
type Attribute struct {
	BaseModel
	ProductID uint   `json:"product_id" gorm:"not null;uniqueIndex:idx_attributes_product_name,where:deleted_at IS NULL"`
	Name      string `json:"name" gorm:"size:50;not null;uniqueIndex:idx_attributes_product_name,where:deleted_at IS NULL"`

	Values []AttributeValue `json:"values,omitempty" gorm:"foreignKey:AttributeID;constraint:OnDelete:RESTRICT"`
}

type AttributeValue struct {
	BaseModel
	AttributeID uint   `json:"attribute_id" gorm:"not null;index"`
	Value       string `json:"value" gorm:"size:50;not null"`

	Attribute *Attribute `json:"attribute,omitempty" gorm:"foreignKey:AttributeID"`
}

type Sku struct {
	BaseModel
	ProductID uint            `json:"product_id" gorm:"not null;index"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock     int             `json:"stock" gorm:"not null;default:0"`

	AttributeValues []AttributeValue `json:"attribute_values" gorm:"many2many:sku_attribute_values;constraint:OnDelete:CASCADE"`
}
