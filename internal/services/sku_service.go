// internal/services/sku_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/variant-catalog/internal/database"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type SkuService struct {
	db    *gorm.DB
	cache *ProductCache
}

type CreateSkuRequest struct {
	Price decimal.Decimal `json:"price" validate:"min=0"`
	Stock int             `json:"stock" validate:"min=0"`
}

type AttachAttributeValuesRequest struct {
	AttributeValueIDs []uint `json:"attribute_value_ids" validate:"required,min=1"`
}

func NewSkuService(db *gorm.DB, cache *ProductCache) *SkuService {
	return &SkuService{
		db:    db,
		cache: cache,
	}
}

func (s *SkuService) CreateSku(ctx context.Context, productID uint, req *CreateSkuRequest) (*models.Sku, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	sku := &models.Sku{
		ProductID: productID,
		Price:     req.Price,
		Stock:     req.Stock,
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := requireProduct(tx, productID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(sku).Error; err != nil {
			return fmt.Errorf("failed to create sku: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"sku_id":     sku.ID,
	}).Info("Sku created")

	s.cache.Invalidate(ctx, productID)
	sku.AttributeValues = []models.AttributeValue{}
	return sku, nil
}

// AddAttributeValuesToSku links existing attribute values to the SKU. Either
// every id resolves and all are linked, or nothing changes. A SKU holds each
// value at most once: ids repeated in the request count once, and linking a
// value the SKU already has is a no-op.
func (s *SkuService) AddAttributeValuesToSku(ctx context.Context, skuID uint, attributeValueIDs []uint) (*models.Sku, error) {
	var sku models.Sku

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Preload("AttributeValues").First(&sku, skuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return skuNotFound(skuID)
			}
			return fmt.Errorf("database error: %w", err)
		}

		ids := distinctIDs(attributeValueIDs)
		if len(ids) == 0 {
			return nil
		}

		var values []models.AttributeValue
		if err := tx.Where("id IN ?", ids).Find(&values).Error; err != nil {
			return fmt.Errorf("failed to load attribute values: %w", err)
		}
		if len(values) != len(ids) {
			return notFound("some attribute values not found")
		}

		if err := tx.Model(&sku).Association("AttributeValues").Append(values); err != nil {
			return fmt.Errorf("failed to link attribute values to sku %d: %w", skuID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated models.Sku
	err = s.db.WithContext(ctx).
		Preload("AttributeValues", orderByID).
		Preload("AttributeValues.Attribute").
		First(&updated, skuID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to reload sku: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"sku_id":           skuID,
		"attribute_values": len(updated.AttributeValues),
	}).Info("Attribute values attached to sku")

	s.cache.Invalidate(ctx, updated.ProductID)
	return &updated, nil
}

func distinctIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
