// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/variant-catalog/internal/database"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type ProductService struct {
	db         *gorm.DB
	attributes *AttributeService
	cache      *ProductCache
}

type AttributeValueInput struct {
	AttributeID   *uint  `json:"attribute_id,omitempty"`
	AttributeName string `json:"attribute_name,omitempty" validate:"max=50"`
	Value         string `json:"value" validate:"required,max=50"`
}

type SkuInput struct {
	Price           decimal.Decimal       `json:"price" validate:"min=0"`
	Stock           int                   `json:"stock" validate:"min=0"`
	AttributeValues []AttributeValueInput `json:"attribute_values" validate:"dive"`
}

type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description"`
	Skus        []SkuInput `json:"skus" validate:"dive"`
}

type CreateProductEntityRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Description string           `json:"description"`
	CoverURL    string           `json:"cover_url" validate:"omitempty,max=255"`
	ShowPrice   *decimal.Decimal `json:"show_price,omitempty" validate:"omitempty,min=0"`
}

type AddProductImageRequest struct {
	URL   string                  `json:"url" validate:"required,url,max=255"`
	Order string                  `json:"order" validate:"max=100"`
	Type  models.ProductImageType `json:"type" validate:"omitempty,oneof=list detail banner"`
}

type ListProductsParams struct {
	utils.PaginationParams
	IncludeDeleted bool `json:"include_deleted"`
}

type ProductPage struct {
	Data       []models.Product `json:"data"`
	Count      int64            `json:"count"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

var productSortFields = []string{"id", "created_at", "updated_at", "name", "show_price"}

func NewProductService(db *gorm.DB, attributes *AttributeService, cache *ProductCache) *ProductService {
	return &ProductService{
		db:         db,
		attributes: attributes,
		cache:      cache,
	}
}

// CreateProductWithVariants creates the product, its SKUs and the attribute
// graph in one transaction and returns the graph as stored.
func (s *ProductService) CreateProductWithVariants(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	var productID uint
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		product := &models.Product{
			Name:        req.Name,
			Description: req.Description,
			ShowPrice:   lowestPrice(req.Skus),
		}
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		for i := range req.Skus {
			if err := s.createVariant(tx, product.ID, &req.Skus[i]); err != nil {
				return err
			}
		}

		productID = product.ID
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("name", req.Name).Warn("Product creation rolled back")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"skus":       len(req.Skus),
	}).Info("Product created with variants")

	return s.loadProductGraph(ctx, productID)
}

func (s *ProductService) createVariant(tx *gorm.DB, productID uint, in *SkuInput) error {
	sku := &models.Sku{
		ProductID: productID,
		Price:     in.Price,
		Stock:     in.Stock,
	}
	if err := tx.Omit(clause.Associations).Create(sku).Error; err != nil {
		return fmt.Errorf("failed to create sku: %w", err)
	}

	values := make([]models.AttributeValue, 0, len(in.AttributeValues))
	for _, av := range in.AttributeValues {
		attribute, err := s.attributes.Resolve(tx, productID, ByIDOrName(av.AttributeID, av.AttributeName))
		if err != nil {
			return err
		}

		value := models.AttributeValue{AttributeID: attribute.ID, Value: av.Value}
		if err := tx.Omit(clause.Associations).Create(&value).Error; err != nil {
			return fmt.Errorf("failed to create attribute value: %w", err)
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return nil
	}

	if err := tx.Model(sku).Association("AttributeValues").Append(values); err != nil {
		return fmt.Errorf("failed to link attribute values to sku %d: %w", sku.ID, err)
	}
	return nil
}

func lowestPrice(skus []SkuInput) decimal.Decimal {
	if len(skus) == 0 {
		return decimal.Zero
	}

	lowest := skus[0].Price
	for _, sku := range skus[1:] {
		if sku.Price.LessThan(lowest) {
			lowest = sku.Price
		}
	}
	return lowest
}

func (s *ProductService) loadProductGraph(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Skus", orderByID).
		Preload("Skus.AttributeValues", orderByID).
		Preload("Skus.AttributeValues.Attribute").
		First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

func (s *ProductService) CreateProductEntity(ctx context.Context, req *CreateProductEntityRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Cover:       req.CoverURL,
	}
	if req.ShowPrice != nil {
		product.ShowPrice = *req.ShowPrice
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logrus.WithField("product_id", product.ID).Info("Product entity created")
	return product, nil
}

// ListProducts returns one page of products without their SKUs or images.
func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams) (*ProductPage, error) {
	if params.Page < 1 {
		return nil, invalidInput("page must be a positive integer")
	}
	if params.PageSize < 1 {
		return nil, invalidInput("pageSize must be a positive integer")
	}
	if utils.OffsetOverflows(params.Page, params.PageSize) {
		return nil, invalidInput("page is out of range")
	}

	query := s.db.WithContext(ctx).Model(&models.Product{})
	if params.IncludeDeleted {
		query = query.Unscoped()
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = utils.ApplySort(query, params.PaginationParams, productSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &ProductPage{
		Data:       products,
		Count:      total,
		TotalPages: utils.TotalPages(total, params.PageSize),
		Page:       params.Page,
		PageSize:   params.PageSize,
	}, nil
}

// GetProductDetail loads the full product graph and flattens it. A missing or
// deleted product is ErrNotFound.
func (s *ProductService) GetProductDetail(ctx context.Context, productID uint) (*ProductDetail, error) {
	if detail, ok := s.cache.Get(ctx, productID); ok {
		return detail, nil
	}
	version, cacheable := s.cache.Version(ctx, productID)

	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Skus", orderByID).
		Preload("Skus.AttributeValues", orderByID).
		Preload("Skus.AttributeValues.Attribute").
		Preload("ProductImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc").Order("id asc")
		}).
		First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	detail := NewProductDetail(&product)
	if cacheable {
		s.cache.Set(ctx, detail, version)
	}
	return detail, nil
}

func (s *ProductService) AddProductImage(ctx context.Context, productID uint, req *AddProductImageRequest) (*models.ProductImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	image := &models.ProductImage{
		ProductID: productID,
		Order:     req.Order,
		URL:       req.URL,
		Type:      req.Type,
	}
	if image.Type == "" {
		image.Type = models.ProductImageTypeList
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := requireProduct(tx, productID); err != nil {
			return err
		}
		if err := tx.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create product image: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, productID)
	return image, nil
}

// DeleteProduct logically removes the product together with its SKUs,
// attributes, attribute values and images.
func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	now := time.Now()
	columns := models.SoftDeleteColumns(now)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := requireProduct(tx, productID); err != nil {
			return err
		}

		attributeIDs := tx.Model(&models.Attribute{}).Select("id").Where("product_id = ?", productID)
		if err := tx.Model(&models.AttributeValue{}).Where("attribute_id IN (?)", attributeIDs).Updates(columns).Error; err != nil {
			return fmt.Errorf("failed to delete attribute values: %w", err)
		}

		for _, model := range []interface{}{&models.Attribute{}, &models.Sku{}, &models.ProductImage{}} {
			if err := tx.Model(model).Where("product_id = ?", productID).Updates(columns).Error; err != nil {
				return fmt.Errorf("failed to delete product children: %w", err)
			}
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Updates(columns).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("product_id", productID).Info("Product deleted")
	s.cache.Invalidate(ctx, productID)
	return nil
}
