// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"product-analytics-backend/internal/config"
	"product-analytics-backend/internal/handlers"
	"product-analytics-backend/internal/middleware"
	"product-analytics-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	uploadService := services.NewUploadService(db)
	dashboardService := services.NewDashboardService(db)
	productService := services.NewProductService(db)

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(uploadService, cfg.Upload)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	productHandler := handlers.NewProductHandler(productService)

	// Initialize Gin router
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxUploadMB << 20

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Product Analytics API is running")
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Database connectivity probe
		api.GET("/test-db", func(c *gin.Context) {
			var now time.Time
			if err := db.Raw("SELECT NOW()").Row().Scan(&now); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Database Connected", "time": now})
		})

		api.POST("/upload", middleware.UploadRateLimit(), uploadHandler.Upload)

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/trends", dashboardHandler.GetRatingDistribution)
			dashboard.GET("/category", dashboardHandler.GetCategoryCounts)
			dashboard.GET("/top-reviewed", dashboardHandler.GetTopReviewed)
			dashboard.GET("/discount-distribution", dashboardHandler.GetDiscountDistribution)
			dashboard.GET("/category-avg-rating", dashboardHandler.GetCategoryAvgRating)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/categories", productHandler.GetCategories)
		}
	}

	return r
}
