// internal/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-analytics-backend/internal/services"
	"product-analytics-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	if err := utils.ValidateStruct(&params); err != nil {
		utils.BadRequestResponse(c, "Invalid pagination parameters")
		return
	}

	products, total, err := h.productService.ListProducts(params)
	if err != nil {
		logrus.WithError(err).Error("Products list query failed")
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, utils.CreatePaginationResult(products, total, params))
}

// GET /api/products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories()
	if err != nil {
		logrus.WithError(err).Error("Categories list query failed")
		utils.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}
