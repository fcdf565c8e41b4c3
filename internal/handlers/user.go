// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
	catalog     config.CatalogConfig
}

func NewUserHandler(userService *services.UserService, catalog config.CatalogConfig) *UserHandler {
	return &UserHandler{
		userService: userService,
		catalog:     catalog,
	}
}

// POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	authResponse, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"user":       authResponse.User,
		"token":      authResponse.AccessToken,
		"token_type": authResponse.TokenType,
		"expires_in": authResponse.ExpiresIn,
	})
}

// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserCreated),
		"user":    user,
	})
}

// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.catalog.DefaultPageSize, h.catalog.MaxPageSize)

	page, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(page.Data, page.Count, page.Page, page.PageSize))
}

// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c, i18n.KeyUserInvalid)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}
