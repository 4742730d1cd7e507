// internal/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-analytics-backend/internal/services"
	"product-analytics-backend/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		logrus.WithError(err).Error("Stats query failed")
		utils.InternalErrorResponse(c, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/trends
func (h *DashboardHandler) GetRatingDistribution(c *gin.Context) {
	groups, err := h.dashboardService.GetRatingDistribution()
	if err != nil {
		logrus.WithError(err).Error("Rating distribution query failed")
		utils.InternalErrorResponse(c, "Failed to fetch trends")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GET /api/dashboard/category
func (h *DashboardHandler) GetCategoryCounts(c *gin.Context) {
	counts, err := h.dashboardService.GetCategoryCounts()
	if err != nil {
		logrus.WithError(err).Error("Category counts query failed")
		utils.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GET /api/dashboard/top-reviewed
func (h *DashboardHandler) GetTopReviewed(c *gin.Context) {
	products, err := h.dashboardService.GetTopReviewed()
	if err != nil {
		logrus.WithError(err).Error("Top reviewed query failed")
		utils.InternalErrorResponse(c, "Failed to fetch top reviewed products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/dashboard/discount-distribution
func (h *DashboardHandler) GetDiscountDistribution(c *gin.Context) {
	buckets, err := h.dashboardService.GetDiscountDistribution()
	if err != nil {
		logrus.WithError(err).Error("Discount distribution query failed")
		utils.InternalErrorResponse(c, "Failed to fetch discount distribution")
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// GET /api/dashboard/category-avg-rating
func (h *DashboardHandler) GetCategoryAvgRating(c *gin.Context) {
	ratings, err := h.dashboardService.GetCategoryAvgRating()
	if err != nil {
		logrus.WithError(err).Error("Category avg rating query failed")
		utils.InternalErrorResponse(c, "Failed to fetch category avg rating")
		return
	}
	c.JSON(http.StatusOK, ratings)
}
