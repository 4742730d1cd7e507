// internal/services/product_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"product-analytics-backend/internal/models"
	"product-analytics-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ListProducts returns one page of raw rows matching the combined filters,
// ordered by identity key so pagination is stable across calls. No filter
// means the whole table is eligible.
func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		query = query.Where("product_name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Review != "" {
		pattern := "%" + params.Review + "%"
		query = query.Where("(review_content ILIKE ? OR review_title ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	products := []models.Product{}
	err := query.
		Order("id ASC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// ListCategories returns the distinct non-empty categories ascending, for the
// filter dropdown.
func (s *ProductService) ListCategories() ([]string, error) {
	categories := []string{}
	err := s.db.Model(&models.Product{}).
		Distinct().
		Where("category IS NOT NULL AND category != ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}
