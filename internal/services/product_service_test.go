package services_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/testutil"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	db         *gorm.DB
	attributes *services.AttributeService
	products   *services.ProductService
	skus       *services.SkuService
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutil.NewTestDB(suite.T())

	cache := services.NewProductCache(nil, 0)
	suite.attributes = services.NewAttributeService(suite.db, cache)
	suite.products = services.NewProductService(suite.db, suite.attributes, cache)
	suite.skus = services.NewSkuService(suite.db, cache)
}

func (suite *CatalogServiceTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func (suite *CatalogServiceTestSuite) createEntity(name string) *models.Product {
	product, err := suite.products.CreateProductEntity(suite.ctx, &services.CreateProductEntityRequest{Name: name})
	suite.Require().NoError(err)
	return product
}

func (suite *CatalogServiceTestSuite) TestCreateProductWithVariants() {
	product, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name:        "Shirt",
		Description: "d",
		Skus: []services.SkuInput{{
			Price: decimal.NewFromInt(10),
			Stock: 5,
			AttributeValues: []services.AttributeValueInput{
				{AttributeName: "Color", Value: "Red"},
			},
		}},
	})
	suite.Require().NoError(err)

	suite.NotZero(product.ID)
	suite.Equal("Shirt", product.Name)
	suite.Require().Len(product.Skus, 1)

	sku := product.Skus[0]
	suite.True(sku.Price.Equal(decimal.NewFromInt(10)))
	suite.Equal(5, sku.Stock)
	suite.Require().Len(sku.AttributeValues, 1)
	suite.Equal("Red", sku.AttributeValues[0].Value)
	suite.Require().NotNil(sku.AttributeValues[0].Attribute)
	suite.Equal("Color", sku.AttributeValues[0].Attribute.Name)
	suite.Equal(product.ID, sku.AttributeValues[0].Attribute.ProductID)
}

func (suite *CatalogServiceTestSuite) TestCreateProductWithVariantsSharesAttributesAcrossSkus() {
	product, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{
			{
				Price: decimal.RequireFromString("12.50"),
				Stock: 1,
				AttributeValues: []services.AttributeValueInput{
					{AttributeName: "Color", Value: "Red"},
					{AttributeName: "Size", Value: "M"},
				},
			},
			{
				Price: decimal.RequireFromString("9.99"),
				Stock: 2,
				AttributeValues: []services.AttributeValueInput{
					{AttributeName: "Color", Value: "Blue"},
					{AttributeName: "Size", Value: "L"},
				},
			},
		},
	})
	suite.Require().NoError(err)

	suite.Require().Len(product.Skus, 2)
	suite.Len(product.Skus[0].AttributeValues, 2)
	suite.Len(product.Skus[1].AttributeValues, 2)
	suite.Equal(int64(2), suite.count(&models.Attribute{}))
	suite.Equal(int64(4), suite.count(&models.AttributeValue{}))
	suite.True(product.ShowPrice.Equal(decimal.RequireFromString("9.99")))
}

func (suite *CatalogServiceTestSuite) TestCreateProductWithVariantsIsAtomic() {
	_, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{
			{
				Price:           decimal.NewFromInt(10),
				AttributeValues: []services.AttributeValueInput{{AttributeName: "Color", Value: "Red"}},
			},
			{
				Price:           decimal.NewFromInt(11),
				AttributeValues: []services.AttributeValueInput{{Value: "XL"}},
			},
		},
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidInput)
	suite.EqualError(err, "attributeName is required")

	suite.Zero(suite.count(&models.Product{}))
	suite.Zero(suite.count(&models.Sku{}))
	suite.Zero(suite.count(&models.Attribute{}))
	suite.Zero(suite.count(&models.AttributeValue{}))
}

func (suite *CatalogServiceTestSuite) TestCreateProductWithVariantsFallsBackToNameForUnknownID() {
	missing := uint(999)
	product, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{{
			Price:           decimal.NewFromInt(10),
			AttributeValues: []services.AttributeValueInput{{AttributeID: &missing, AttributeName: "Color", Value: "Red"}},
		}},
	})
	suite.Require().NoError(err)
	suite.Require().Len(product.Skus[0].AttributeValues, 1)
	suite.Equal("Color", product.Skus[0].AttributeValues[0].Attribute.Name)
}

func (suite *CatalogServiceTestSuite) TestCreateProductWithVariantsRejectsInvalidRequest() {
	_, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{{Price: decimal.NewFromInt(-1)}},
	})
	suite.ErrorIs(err, services.ErrInvalidInput)
	suite.Zero(suite.count(&models.Product{}))
}

func (suite *CatalogServiceTestSuite) TestResolveAttributeIsIdempotent() {
	product := suite.createEntity("Shirt")

	first, err := suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeName: "Size"})
	suite.Require().NoError(err)
	second, err := suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeName: "Size"})
	suite.Require().NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal(int64(1), suite.count(&models.Attribute{}))
}

func (suite *CatalogServiceTestSuite) TestResolveAttributeTrimsName() {
	product := suite.createEntity("Shirt")

	padded, err := suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeName: "  Color "})
	suite.Require().NoError(err)
	suite.Equal("Color", padded.Name)

	plain, err := suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeName: "Color"})
	suite.Require().NoError(err)
	suite.Equal(padded.ID, plain.ID)

	_, err = suite.attributes.CreateAttribute(suite.ctx, product.ID, " Color")
	suite.ErrorIs(err, services.ErrConflict)

	_, err = suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeName: "   "})
	suite.ErrorIs(err, services.ErrInvalidInput)

	suite.Equal(int64(1), suite.count(&models.Attribute{}))
}

func (suite *CatalogServiceTestSuite) TestResolveAttributeByID() {
	product := suite.createEntity("Shirt")
	attribute, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.Require().NoError(err)

	id := attribute.ID
	resolved, err := suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeID: &id})
	suite.Require().NoError(err)
	suite.Equal(attribute.ID, resolved.ID)
}

func (suite *CatalogServiceTestSuite) TestResolveAttributeIgnoresOtherProductsID() {
	shirt := suite.createEntity("Shirt")
	hat := suite.createEntity("Hat")
	hatColor, err := suite.attributes.CreateAttribute(suite.ctx, hat.ID, "Color")
	suite.Require().NoError(err)

	id := hatColor.ID
	_, err = suite.attributes.ResolveAttribute(suite.ctx, shirt.ID, &services.ResolveAttributeRequest{AttributeID: &id})
	suite.ErrorIs(err, services.ErrInvalidInput)

	resolved, err := suite.attributes.ResolveAttribute(suite.ctx, shirt.ID, &services.ResolveAttributeRequest{AttributeID: &id, AttributeName: "Color"})
	suite.Require().NoError(err)
	suite.NotEqual(hatColor.ID, resolved.ID)
	suite.Equal(shirt.ID, resolved.ProductID)
}

func (suite *CatalogServiceTestSuite) TestResolveAttributeRequiresProduct() {
	_, err := suite.attributes.ResolveAttribute(suite.ctx, 4242, &services.ResolveAttributeRequest{AttributeName: "Size"})
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "Product with ID 4242 not found")
}

func (suite *CatalogServiceTestSuite) TestCreateAttribute() {
	product := suite.createEntity("Shirt")

	attribute, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.Require().NoError(err)
	suite.Equal(product.ID, attribute.ProductID)
	suite.Equal(models.RecordStatusActive, attribute.Status)

	_, err = suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.ErrorIs(err, services.ErrConflict)

	_, err = suite.attributes.CreateAttribute(suite.ctx, 4242, "Color")
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "Product with ID 4242 not found")
}

func (suite *CatalogServiceTestSuite) TestCreateAttributeValue() {
	product := suite.createEntity("Shirt")
	attribute, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Size")
	suite.Require().NoError(err)

	value, err := suite.attributes.CreateAttributeValue(suite.ctx, attribute.ID, "Large")
	suite.Require().NoError(err)
	suite.Equal("Large", value.Value)
	suite.Equal(attribute.ID, value.AttributeID)
	suite.Require().NotNil(value.Attribute)
	suite.Equal("Size", value.Attribute.Name)
}

func (suite *CatalogServiceTestSuite) TestCreateAttributeValueMissingAttribute() {
	_, err := suite.attributes.CreateAttributeValue(suite.ctx, 999, "Large")
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "Attribute with ID 999 not found")
}

func (suite *CatalogServiceTestSuite) TestCreateSku() {
	product := suite.createEntity("Shirt")

	sku, err := suite.skus.CreateSku(suite.ctx, product.ID, &services.CreateSkuRequest{Price: decimal.NewFromInt(100), Stock: 20})
	suite.Require().NoError(err)
	suite.Equal(product.ID, sku.ProductID)
	suite.Equal(20, sku.Stock)
	suite.Empty(sku.AttributeValues)

	_, err = suite.skus.CreateSku(suite.ctx, 4242, &services.CreateSkuRequest{Price: decimal.NewFromInt(1)})
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "Product with ID 4242 not found")
}

func (suite *CatalogServiceTestSuite) TestAddAttributeValuesToSku() {
	product := suite.createEntity("Shirt")
	sku, err := suite.skus.CreateSku(suite.ctx, product.ID, &services.CreateSkuRequest{Price: decimal.NewFromInt(100), Stock: 20})
	suite.Require().NoError(err)

	color, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.Require().NoError(err)
	size, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Size")
	suite.Require().NoError(err)
	red, err := suite.attributes.CreateAttributeValue(suite.ctx, color.ID, "Red")
	suite.Require().NoError(err)
	large, err := suite.attributes.CreateAttributeValue(suite.ctx, size.ID, "Large")
	suite.Require().NoError(err)

	updated, err := suite.skus.AddAttributeValuesToSku(suite.ctx, sku.ID, []uint{red.ID})
	suite.Require().NoError(err)
	suite.Require().Len(updated.AttributeValues, 1)

	updated, err = suite.skus.AddAttributeValuesToSku(suite.ctx, sku.ID, []uint{large.ID, large.ID})
	suite.Require().NoError(err)
	suite.Require().Len(updated.AttributeValues, 2)
	suite.Equal(red.ID, updated.AttributeValues[0].ID)
	suite.Equal(large.ID, updated.AttributeValues[1].ID)
	suite.Equal("Size", updated.AttributeValues[1].Attribute.Name)

	// Re-attaching is a no-op.
	updated, err = suite.skus.AddAttributeValuesToSku(suite.ctx, sku.ID, []uint{red.ID})
	suite.Require().NoError(err)
	suite.Len(updated.AttributeValues, 2)
}

func (suite *CatalogServiceTestSuite) TestAddAttributeValuesToSkuKeepsOneLinkPerValue() {
	product := suite.createEntity("Shirt")
	sku, err := suite.skus.CreateSku(suite.ctx, product.ID, &services.CreateSkuRequest{Price: decimal.NewFromInt(100), Stock: 20})
	suite.Require().NoError(err)
	attribute, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.Require().NoError(err)
	red, err := suite.attributes.CreateAttributeValue(suite.ctx, attribute.ID, "Red")
	suite.Require().NoError(err)

	_, err = suite.skus.AddAttributeValuesToSku(suite.ctx, sku.ID, []uint{red.ID, red.ID})
	suite.Require().NoError(err)
	updated, err := suite.skus.AddAttributeValuesToSku(suite.ctx, sku.ID, []uint{red.ID})
	suite.Require().NoError(err)
	suite.Len(updated.AttributeValues, 1)

	var links int64
	suite.Require().NoError(suite.db.Table("sku_attribute_values").Where("sku_id = ?", sku.ID).Count(&links).Error)
	suite.Equal(int64(1), links)
}

func (suite *CatalogServiceTestSuite) TestAddAttributeValuesToSkuIsAllOrNothing() {
	product := suite.createEntity("Shirt")
	sku, err := suite.skus.CreateSku(suite.ctx, product.ID, &services.CreateSkuRequest{Price: decimal.NewFromInt(100), Stock: 20})
	suite.Require().NoError(err)

	attribute, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.Require().NoError(err)
	red, err := suite.attributes.CreateAttributeValue(suite.ctx, attribute.ID, "Red")
	suite.Require().NoError(err)

	_, err = suite.skus.AddAttributeValuesToSku(suite.ctx, sku.ID, []uint{red.ID, 31337})
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "some attribute values not found")

	var reloaded models.Sku
	suite.Require().NoError(suite.db.Preload("AttributeValues").First(&reloaded, sku.ID).Error)
	suite.Empty(reloaded.AttributeValues)
}

func (suite *CatalogServiceTestSuite) TestAddAttributeValuesToMissingSku() {
	_, err := suite.skus.AddAttributeValuesToSku(suite.ctx, 4242, []uint{1})
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "Sku with ID 4242 not found")
}

func (suite *CatalogServiceTestSuite) TestListProductsPagination() {
	for i := 1; i <= 25; i++ {
		suite.createEntity(fmt.Sprintf("Product %02d", i))
	}

	page, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 1, PageSize: 10},
	})
	suite.Require().NoError(err)
	suite.Equal(int64(25), page.Count)
	suite.Equal(3, page.TotalPages)
	suite.Len(page.Data, 10)
	suite.Equal("Product 01", page.Data[0].Name)

	last, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 3, PageSize: 10},
	})
	suite.Require().NoError(err)
	suite.Len(last.Data, 5)
	suite.Equal("Product 21", last.Data[0].Name)

	beyond, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 4, PageSize: 10},
	})
	suite.Require().NoError(err)
	suite.Empty(beyond.Data)
	suite.Equal(3, beyond.TotalPages)
}

func (suite *CatalogServiceTestSuite) TestListProductsRejectsBadPage() {
	_, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 0, PageSize: 10},
	})
	suite.ErrorIs(err, services.ErrInvalidInput)

	_, err = suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 1, PageSize: 0},
	})
	suite.ErrorIs(err, services.ErrInvalidInput)
}

func (suite *CatalogServiceTestSuite) TestListProductsRejectsOverflowingPage() {
	for i := 0; i < 3; i++ {
		suite.createEntity(fmt.Sprintf("Product %d", i))
	}

	_, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: math.MaxInt/10 + 2, PageSize: 10},
	})
	suite.ErrorIs(err, services.ErrInvalidInput)

	// The largest page whose offset still fits is simply empty.
	page, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: math.MaxInt/10 + 1, PageSize: 10},
	})
	suite.Require().NoError(err)
	suite.Empty(page.Data)
	suite.Equal(int64(3), page.Count)
}

func (suite *CatalogServiceTestSuite) TestListProductsSkipsRelations() {
	_, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{{Price: decimal.NewFromInt(10), Stock: 1}},
	})
	suite.Require().NoError(err)

	page, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 1, PageSize: 10},
	})
	suite.Require().NoError(err)
	suite.Require().Len(page.Data, 1)
	suite.Nil(page.Data[0].Skus)
	suite.Nil(page.Data[0].ProductImages)
}

func (suite *CatalogServiceTestSuite) TestGetProductDetailFlattensAttributeValues() {
	created, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{{
			Price: decimal.NewFromInt(10),
			Stock: 5,
			AttributeValues: []services.AttributeValueInput{
				{AttributeName: "Color", Value: "Red"},
				{AttributeName: "Size", Value: "M"},
			},
		}},
	})
	suite.Require().NoError(err)

	_, err = suite.products.AddProductImage(suite.ctx, created.ID, &services.AddProductImageRequest{
		URL:   "https://cdn.example.com/shirt.png",
		Order: "1",
		Type:  models.ProductImageTypeDetail,
	})
	suite.Require().NoError(err)

	detail, err := suite.products.GetProductDetail(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(created.ID, detail.ID)
	suite.Require().Len(detail.Skus, 1)
	suite.Require().Len(detail.ProductImages, 1)
	suite.Equal(models.ProductImageTypeDetail, detail.ProductImages[0].Type)

	views := detail.Skus[0].AttributeValues
	suite.Require().Len(views, 2)
	suite.Equal("Color", views[0].AttributeName)
	suite.Equal("Red", views[0].AttributeValue)
	suite.Equal(created.Skus[0].AttributeValues[0].ID, views[0].AttributeValueID)
	suite.Equal(created.Skus[0].AttributeValues[0].AttributeID, views[0].AttributeID)
	suite.Equal("Size", views[1].AttributeName)
}

func (suite *CatalogServiceTestSuite) TestGetProductDetailMissing() {
	_, err := suite.products.GetProductDetail(suite.ctx, 4242)
	suite.ErrorIs(err, services.ErrNotFound)
	suite.EqualError(err, "Product with ID 4242 not found")
}

func (suite *CatalogServiceTestSuite) TestDeleteProductCascadesSoftDelete() {
	created, err := suite.products.CreateProductWithVariants(suite.ctx, &services.CreateProductRequest{
		Name: "Shirt",
		Skus: []services.SkuInput{{
			Price:           decimal.NewFromInt(10),
			AttributeValues: []services.AttributeValueInput{{AttributeName: "Color", Value: "Red"}},
		}},
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.products.DeleteProduct(suite.ctx, created.ID))

	_, err = suite.products.GetProductDetail(suite.ctx, created.ID)
	suite.ErrorIs(err, services.ErrNotFound)

	suite.Zero(suite.count(&models.Product{}))
	suite.Zero(suite.count(&models.Sku{}))
	suite.Zero(suite.count(&models.Attribute{}))
	suite.Zero(suite.count(&models.AttributeValue{}))

	var product models.Product
	suite.Require().NoError(suite.db.Unscoped().First(&product, created.ID).Error)
	suite.Equal(models.RecordStatusDeleted, product.Status)
	suite.True(product.IsDeleted())

	page, err := suite.products.ListProducts(suite.ctx, services.ListProductsParams{
		PaginationParams: utils.PaginationParams{Page: 1, PageSize: 10},
		IncludeDeleted:   true,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Count)

	err = suite.products.DeleteProduct(suite.ctx, created.ID)
	suite.ErrorIs(err, services.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestDeletedAttributeNameCanBeReused() {
	product := suite.createEntity("Shirt")
	attribute, err := suite.attributes.CreateAttribute(suite.ctx, product.ID, "Color")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Model(&models.Attribute{}).
		Where("id = ?", attribute.ID).
		Updates(models.SoftDeleteColumns(attribute.CreatedAt)).Error)

	resolved, err := suite.attributes.ResolveAttribute(suite.ctx, product.ID, &services.ResolveAttributeRequest{AttributeName: "Color"})
	suite.Require().NoError(err)
	suite.NotEqual(attribute.ID, resolved.ID)
}

func (suite *CatalogServiceTestSuite) TestAddProductImage() {
	product := suite.createEntity("Shirt")

	image, err := suite.products.AddProductImage(suite.ctx, product.ID, &services.AddProductImageRequest{URL: "https://cdn.example.com/a.png"})
	suite.Require().NoError(err)
	suite.Equal(models.ProductImageTypeList, image.Type)

	_, err = suite.products.AddProductImage(suite.ctx, 4242, &services.AddProductImageRequest{URL: "https://cdn.example.com/a.png"})
	suite.ErrorIs(err, services.ErrNotFound)

	_, err = suite.products.AddProductImage(suite.ctx, product.ID, &services.AddProductImageRequest{URL: "not a url"})
	suite.True(errors.Is(err, services.ErrInvalidInput))
}

func (suite *CatalogServiceTestSuite) TestCreateProductEntity() {
	price := decimal.RequireFromString("19.90")
	product, err := suite.products.CreateProductEntity(suite.ctx, &services.CreateProductEntityRequest{
		Name:      "Mug",
		CoverURL:  "https://cdn.example.com/mug.png",
		ShowPrice: &price,
	})
	suite.Require().NoError(err)
	suite.Equal("https://cdn.example.com/mug.png", product.Cover)
	suite.True(product.ShowPrice.Equal(price))

	_, err = suite.products.CreateProductEntity(suite.ctx, &services.CreateProductEntityRequest{})
	suite.ErrorIs(err, services.ErrInvalidInput)
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
