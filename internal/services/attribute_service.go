// internal/services/attribute_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/variant-catalog/internal/database"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/utils"
)

// AttributeRef names the attribute a value belongs to. It is built with
// ByID, ByName or ByIDOrName; the zero value refers to nothing.
type AttributeRef struct {
	id   *uint
	name string
}

func ByID(id uint) AttributeRef {
	return AttributeRef{id: &id}
}

func ByName(name string) AttributeRef {
	return AttributeRef{name: name}
}

// ByIDOrName is the payload form: an optional id with an optional name to fall
// back on when the id does not resolve.
func ByIDOrName(id *uint, name string) AttributeRef {
	ref := AttributeRef{name: name}
	if id != nil {
		v := *id
		ref.id = &v
	}
	return ref
}

func (r AttributeRef) String() string {
	switch {
	case r.id != nil && r.name != "":
		return fmt.Sprintf("id=%d|name=%q", *r.id, r.name)
	case r.id != nil:
		return fmt.Sprintf("id=%d", *r.id)
	default:
		return fmt.Sprintf("name=%q", r.name)
	}
}

type AttributeService struct {
	db    *gorm.DB
	cache *ProductCache
}

type CreateAttributeRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type ResolveAttributeRequest struct {
	AttributeID   *uint  `json:"attribute_id,omitempty"`
	AttributeName string `json:"attribute_name,omitempty" validate:"max=50"`
}

type CreateAttributeValueRequest struct {
	Value string `json:"value" validate:"required,max=50"`
}

func NewAttributeService(db *gorm.DB, cache *ProductCache) *AttributeService {
	return &AttributeService{
		db:    db,
		cache: cache,
	}
}

// Resolve returns the attribute of productID that ref points at, creating it by
// name when needed. It runs inside the caller's unit of work tx and never
// leaves two live attributes with the same name under one product. Names are
// compared after trimming surrounding whitespace.
func (s *AttributeService) Resolve(tx *gorm.DB, productID uint, ref AttributeRef) (*models.Attribute, error) {
	if ref.id != nil {
		attribute, err := s.findByID(tx, productID, *ref.id)
		if err != nil {
			return nil, err
		}
		if attribute != nil {
			return attribute, nil
		}
	}

	name := strings.TrimSpace(ref.name)
	if name == "" {
		return nil, invalidInput("attributeName is required")
	}

	return s.findOrCreateByName(tx, productID, name)
}

func (s *AttributeService) findByID(tx *gorm.DB, productID, attributeID uint) (*models.Attribute, error) {
	var attribute models.Attribute
	err := tx.Where("id = ? AND product_id = ?", attributeID, productID).First(&attribute).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up attribute %d: %w", attributeID, err)
	}
	return &attribute, nil
}

// findOrCreateByName inserts with ON CONFLICT DO NOTHING against the partial
// (product_id, name) index and reads back whichever row won.
func (s *AttributeService) findOrCreateByName(tx *gorm.DB, productID uint, name string) (*models.Attribute, error) {
	attribute := &models.Attribute{ProductID: productID, Name: name}

	result := tx.Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "product_id"}, {Name: "name"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
		DoNothing:   true,
	}).Omit(clause.Associations).Create(attribute)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create attribute %q: %w", name, result.Error)
	}
	if result.RowsAffected == 1 && attribute.ID != 0 {
		return attribute, nil
	}

	var existing models.Attribute
	if err := tx.Where("product_id = ? AND name = ?", productID, name).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load attribute %q: %w", name, err)
	}
	return &existing, nil
}

// ResolveAttribute is Resolve in its own transaction for callers composing a
// product step by step. The product must exist.
func (s *AttributeService) ResolveAttribute(ctx context.Context, productID uint, req *ResolveAttributeRequest) (*models.Attribute, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	var attribute *models.Attribute
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := requireProduct(tx, productID); err != nil {
			return err
		}

		var err error
		attribute, err = s.Resolve(tx, productID, ByIDOrName(req.AttributeID, req.AttributeName))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, productID)
	return attribute, nil
}

// CreateAttribute inserts an attribute without looking for a same-named one
// first. A duplicate name is refused by the store and reported as ErrConflict.
func (s *AttributeService) CreateAttribute(ctx context.Context, productID uint, name string) (*models.Attribute, error) {
	name = strings.TrimSpace(name)
	if err := utils.ValidateStruct(&CreateAttributeRequest{Name: name}); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	attribute := &models.Attribute{ProductID: productID, Name: name}
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := requireProduct(tx, productID); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(attribute).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict("Attribute %q already exists for product %d", name, productID)
			}
			return fmt.Errorf("failed to create attribute: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id":   productID,
		"attribute_id": attribute.ID,
		"name":         name,
	}).Info("Attribute created")

	s.cache.Invalidate(ctx, productID)
	return attribute, nil
}

func (s *AttributeService) CreateAttributeValue(ctx context.Context, attributeID uint, value string) (*models.AttributeValue, error) {
	if err := utils.ValidateStruct(&CreateAttributeValueRequest{Value: value}); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	var attribute models.Attribute
	attributeValue := &models.AttributeValue{AttributeID: attributeID, Value: value}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.First(&attribute, attributeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attributeNotFound(attributeID)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Omit(clause.Associations).Create(attributeValue).Error; err != nil {
			return fmt.Errorf("failed to create attribute value: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attributeValue.Attribute = &attribute

	logrus.WithFields(logrus.Fields{
		"attribute_id":       attributeID,
		"attribute_value_id": attributeValue.ID,
	}).Info("Attribute value created")

	s.cache.Invalidate(ctx, attribute.ProductID)
	return attributeValue, nil
}

func requireProduct(tx *gorm.DB, productID uint) error {
	var product models.Product
	if err := tx.Select("id").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productNotFound(productID)
		}
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}
