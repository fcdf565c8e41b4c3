// internal/handlers/attribute.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type AttributeHandler struct {
	attributeService *services.AttributeService
}

func NewAttributeHandler(attributeService *services.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// POST /products/:id/attributes
func (h *AttributeHandler) CreateAttribute(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	var req services.CreateAttributeRequest
	if !bindJSON(c, &req) {
		return
	}

	attribute, err := h.attributeService.CreateAttribute(c.Request.Context(), productID, req.Name)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyAttributeCreated),
		"attribute": attribute,
	})
}

// POST /products/:id/attributes/resolve
func (h *AttributeHandler) ResolveAttribute(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID, ok := parseID(c, i18n.KeyProductInvalid)
	if !ok {
		return
	}

	var req services.ResolveAttributeRequest
	if !bindJSON(c, &req) {
		return
	}

	attribute, err := h.attributeService.ResolveAttribute(c.Request.Context(), productID, &req)
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyAttributeResolved),
		"attribute": attribute,
	})
}

// POST /attributes/:id/values
func (h *AttributeHandler) CreateAttributeValue(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	attributeID, ok := parseID(c, i18n.KeyAttributeInvalid)
	if !ok {
		return
	}

	var req services.CreateAttributeValueRequest
	if !bindJSON(c, &req) {
		return
	}

	value, err := h.attributeService.CreateAttributeValue(c.Request.Context(), attributeID, req.Value)
	if err != nil {
		respondError(c, err, i18n.KeyAttributeNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":         i18n.T(lang, i18n.KeyAttributeValueCreated),
		"attribute_value": value,
	})
}
