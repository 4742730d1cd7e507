package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"product-analytics-backend/internal/services"
)

func TestGetProductsRejectsBadPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewProductHandler(services.NewProductService(nil))
	r := gin.New()
	r.GET("/api/products", handler.GetProducts)

	tests := []string{
		"/api/products?limit=500",
		"/api/products?page=-1",
		"/api/products?page=0",
	}

	for _, url := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %s", url)
	}
}
