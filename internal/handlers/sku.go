// internal/handlers/sku.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type SkuHandler struct {
	skuService *services.SkuService
}

func NewSkuHandler(skuService *services.SkuService) *SkuHandler {
	return &SkuHandler{skuService: skuService}
}

// POST /products/:id/skus
func (h *SkuHandler) CreateSku(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	var req services.CreateSkuRequest
	if !bindJSON(c, &req) {
		return
	}

	sku, err := h.skuService.CreateSku(c.Request.Context(), productID, &req)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySkuCreated),
		"sku":     sku,
	})
}

// POST /skus/:id/attribute-values
func (h *SkuHandler) AttachAttributeValues(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	skuID, ok := parseID(c, i18n.KeySkuInvalid)
	if !ok {
		return
	}

	var req services.AttachAttributeValuesRequest
	if !bindJSON(c, &req) {
		return
	}

	sku, err := h.skuService.AddAttributeValuesToSku(c.Request.Context(), skuID, req.AttributeValueIDs)
	if err != nil {
		respondError(c, err, i18n.KeySkuNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySkuValuesAttached),
		"sku":     sku,
	})
}
