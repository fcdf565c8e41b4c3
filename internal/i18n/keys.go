// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError = "common.internal_error"
	KeyRateLimited   = "common.rate_limited"

	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"
	KeyAuthAccessDenied = "auth.access_denied"
	KeyAuthLoginSuccess = "auth.login_success"

	// Users
	KeyUserCreated  = "user.created"
	KeyUserNotFound = "user.not_found"
	KeyUserInvalid  = "user.invalid_id"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeyProductInvalid  = "product.invalid_id"

	// SKUs
	KeySkuCreated        = "sku.created"
	KeySkuValuesAttached = "sku.values_attached"
	KeySkuNotFound       = "sku.not_found"
	KeySkuInvalid        = "sku.invalid_id"

	// Attributes
	KeyAttributeCreated      = "attribute.created"
	KeyAttributeResolved     = "attribute.resolved"
	KeyAttributeValueCreated = "attribute.value_created"
	KeyAttributeNotFound     = "attribute.not_found"
	KeyAttributeInvalid      = "attribute.invalid_id"
	KeyAttributeExists       = "attribute.exists"

	// Images
	KeyImageAdded = "image.added"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileUploadFailed = "file.upload_failed"
	KeyFileInvalidType  = "file.invalid_type"
)
