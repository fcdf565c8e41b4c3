// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/handlers"
	"github.com/javajoker/variant-catalog/internal/middleware"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/utils"
)

// Initialize wires services and handlers onto a gin engine. redisClient may be
// nil, which disables the product detail cache.
func Initialize(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	return New(db, cfg, redisClient, storageService), nil
}

// New is Initialize with a caller-supplied storage backend.
func New(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, storageService *services.StorageService) *gin.Engine {
	productCache := services.NewProductCache(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	attributeService := services.NewAttributeService(db, productCache)
	productService := services.NewProductService(db, attributeService, productCache)
	skuService := services.NewSkuService(db, productCache)
	userService := services.NewUserService(db, cfg.JWT)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, storageService, cfg.Catalog)
	skuHandler := handlers.NewSkuHandler(skuService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)
	userHandler := handlers.NewUserHandler(userService, cfg.Catalog)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetJWTIssuer(cfg.JWT.Issuer)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	if cfg.AWS.AccessKeyID == "" && cfg.Storage.LocalDir != "" {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	writes := []gin.HandlerFunc{
		middleware.AuthRequired(),
		middleware.AdminRequired(),
		middleware.WriteRateLimit(cfg.RateLimit),
	}

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Auth routes
		v1.POST("/auth/login", middleware.WriteRateLimit(cfg.RateLimit), userHandler.Login)

		// User routes
		users := v1.Group("/users")
		users.Use(writes...)
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)

			// Admin routes
			admin := products.Group("")
			admin.Use(writes...)
			{
				admin.POST("", productHandler.CreateProduct)
				admin.POST("/entity", productHandler.CreateProductEntity)
				admin.DELETE("/:id", productHandler.DeleteProduct)
				admin.POST("/:id/skus", skuHandler.CreateSku)
				admin.POST("/:id/attributes", attributeHandler.CreateAttribute)
				admin.POST("/:id/attributes/resolve", attributeHandler.ResolveAttribute)
				admin.POST("/:id/images", productHandler.AddProductImage)
				admin.POST("/:id/images/upload", productHandler.UploadProductImage)
			}
		}

		// Attribute routes
		attributes := v1.Group("/attributes")
		attributes.Use(writes...)
		{
			attributes.POST("/:id/values", attributeHandler.CreateAttributeValue)
		}

		// SKU routes
		skus := v1.Group("/skus")
		skus.Use(writes...)
		{
			skus.POST("/:id/attribute-values", skuHandler.AttachAttributeValues)
		}
	}

	return r
}
