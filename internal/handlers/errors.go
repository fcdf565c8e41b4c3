// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

// respondError maps a service failure onto the response envelope. Unknown
// errors are logged and reported without their details.
func respondError(c *gin.Context, err error, notFoundKey string) {
	var serviceErr *services.ServiceError
	message := ""
	if errors.As(err, &serviceErr) {
		message = serviceErr.Message
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		if message == "" {
			message = err.Error()
		}
		utils.BadRequestResponse(c, message, nil)
	case errors.Is(err, services.ErrUnauthorized):
		utils.UnauthorizedResponse(c, message)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundKey, message)
	case errors.Is(err, services.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		if message == "" {
			message = i18n.T(utils.GetLangFromContext(c), i18n.KeyAttributeExists)
		}
		utils.ConflictResponse(c, message)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}

// bindJSON decodes and validates the body, writing the error response itself
// when it returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

func parseID(c *gin.Context, invalidKey string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), invalidKey), nil)
		return 0, false
	}
	return uint(id), true
}
