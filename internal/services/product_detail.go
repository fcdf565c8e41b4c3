// internal/services/product_detail.go
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/javajoker/variant-catalog/internal/models"
)

// ProductDetail is the client-facing shape of a product: each SKU lists its
// attribute values flattened together with their attribute.
type ProductDetail struct {
	ID            uint                  `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	ShowPrice     decimal.Decimal       `json:"show_price"`
	Cover         string                `json:"cover"`
	Status        models.RecordStatus   `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Skus          []SkuDetail           `json:"skus"`
	ProductImages []models.ProductImage `json:"product_images"`
}

type SkuDetail struct {
	ID              uint                 `json:"id"`
	Price           decimal.Decimal      `json:"price"`
	Stock           int                  `json:"stock"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	AttributeValues []AttributeValueView `json:"attribute_values"`
}

type AttributeValueView struct {
	AttributeID      uint   `json:"attribute_id"`
	AttributeName    string `json:"attribute_name"`
	AttributeValueID uint   `json:"attribute_value_id"`
	AttributeValue   string `json:"attribute_value"`
}

// NewProductDetail reshapes a product loaded with Skus.AttributeValues.Attribute
// and ProductImages. It only reads p.
func NewProductDetail(p *models.Product) *ProductDetail {
	detail := &ProductDetail{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		ShowPrice:     p.ShowPrice,
		Cover:         p.Cover,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Skus:          make([]SkuDetail, 0, len(p.Skus)),
		ProductImages: p.ProductImages,
	}
	if detail.ProductImages == nil {
		detail.ProductImages = []models.ProductImage{}
	}

	for _, sku := range p.Skus {
		detail.Skus = append(detail.Skus, newSkuDetail(sku))
	}
	return detail
}

func newSkuDetail(sku models.Sku) SkuDetail {
	views := make([]AttributeValueView, 0, len(sku.AttributeValues))
	for _, av := range sku.AttributeValues {
		view := AttributeValueView{
			AttributeID:      av.AttributeID,
			AttributeValueID: av.ID,
			AttributeValue:   av.Value,
		}
		if av.Attribute != nil {
			view.AttributeName = av.Attribute.Name
		}
		views = append(views, view)
	}

	return SkuDetail{
		ID:              sku.ID,
		Price:           sku.Price,
		Stock:           sku.Stock,
		CreatedAt:       sku.CreatedAt,
		UpdatedAt:       sku.UpdatedAt,
		AttributeValues: views,
	}
}
