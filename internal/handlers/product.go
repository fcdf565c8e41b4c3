// internal/handlers/product.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
	catalog        config.CatalogConfig
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService, catalog config.CatalogConfig) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
		catalog:        catalog,
	}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := services.ListProductsParams{
		PaginationParams: utils.GetPaginationParams(c, h.catalog.DefaultPageSize, h.catalog.MaxPageSize),
	}

	// Deleted products are only listed for admins.
	if includeDeleted := c.Query("include_deleted"); includeDeleted != "" && utils.IsAdmin(c) {
		if v, err := strconv.ParseBool(includeDeleted); err == nil {
			params.IncludeDeleted = v
		}
	}

	page, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	result := utils.CreatePaginationResult(page.Data, page.Count, page.Page, page.PageSize)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProductWithVariants(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.KeyAttributeNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// POST /products/entity
func (h *ProductHandler) CreateProductEntity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductEntityRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProductEntity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	detail, err := h.productService.GetProductDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	body, err := json.Marshal(utils.APIResponse{Success: true, Data: detail})
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	etag := utils.WeakETag(body)
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
		"id":      id,
	})
}

// POST /products/:id/images
func (h *ProductHandler) AddProductImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	var req services.AddProductImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.productService.AddProductImage(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyImageAdded),
		"image":   image,
	})
}

// POST /products/:id/images/upload
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "file"), err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType), nil)
		return
	}

	ctx := c.Request.Context()
	upload, err := h.storageService.UploadFile(ctx, file, header, services.ProductImageUploadOptions)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			respondError(c, err, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}

	req := services.AddProductImageRequest{
		URL:   upload.URL,
		Order: c.PostForm("order"),
		Type:  models.ProductImageType(c.PostForm("type")),
	}
	image, err := h.productService.AddProductImage(ctx, id, &req)
	if err != nil {
		// The file is orphaned without its record.
		if delErr := h.storageService.DeleteFile(ctx, upload.Key); delErr != nil {
			c.Error(delErr)
		}
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyImageAdded),
		"image":   image,
		"upload":  upload,
	})
}
