// internal/services/dashboard_service.go
package services

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"product-analytics-backend/internal/models"
	"product-analytics-backend/internal/numeric"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalProducts int64   `json:"totalProducts"`
	AvgRating     float64 `json:"avgRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type TopReviewedProduct struct {
	ProductName string   `json:"product_name"`
	Rating      *float64 `json:"rating"`
	ReviewCount *float64 `json:"review_count"`
}

type DiscountBucket struct {
	DiscountRange string `json:"discount_range"`
	Count         int64  `json:"count"`
}

type CategoryRating struct {
	Category     string  `json:"category"`
	AvgRating    float64 `json:"avg_rating"`
	ProductCount int64   `json:"product_count"`
}

type RatingGroup struct {
	RatingGroup string `json:"rating_group"`
	Count       int64  `json:"count"`
}

// GetStats computes the KPI card values: distinct products, mean extracted
// rating rounded to one decimal, and total rows (one review per row).
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Product{}).Distinct("product_id").Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var avg sql.NullFloat64
	row := s.db.Model(&models.Product{}).
		Select(fmt.Sprintf("ROUND(AVG(%s), 1)", numeric.SQLCast("rating"))).
		Where("rating IS NOT NULL AND rating != ''").
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if avg.Valid {
		stats.AvgRating = avg.Float64
	}

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalReviews).Error; err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	return stats, nil
}

// GetCategoryCounts returns the ten largest categories by row count.
func (s *DashboardService) GetCategoryCounts() ([]CategoryCount, error) {
	counts := []CategoryCount{}
	err := s.db.Model(&models.Product{}).
		Select("category, COUNT(*) as count").
		Where("category IS NOT NULL AND category != ''").
		Group("category").
		Order("count DESC").
		Limit(10).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category counts: %w", err)
	}
	return counts, nil
}

// GetTopReviewed returns the ten rows with the highest extracted rating count.
// Rows whose rating_count has no numeric run sort last.
func (s *DashboardService) GetTopReviewed() ([]TopReviewedProduct, error) {
	ratingCast := numeric.SQLCast("rating")
	countCast := numeric.SQLCast("rating_count")

	products := []TopReviewedProduct{}
	err := s.db.Model(&models.Product{}).
		Select(fmt.Sprintf("product_name, %s as rating, %s as review_count", ratingCast, countCast)).
		Where("rating_count IS NOT NULL AND rating_count != ''").
		Order(countCast + " DESC NULLS LAST").
		Limit(10).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top reviewed products: %w", err)
	}
	return products, nil
}

// discountRanges in ascending label order, which coincides with ascending
// numeric range for this fixed label set.
var discountRanges = []string{
	"0-10%", "10-20%", "20-30%", "30-40%", "40-50%", "50-60%", "60-70%", "70-100%",
}

// discountRange buckets a whole-percent discount. Everything from 70 up,
// including >100 anomalies, lands in the top bucket.
func discountRange(v float64) string {
	switch {
	case v >= 70:
		return "70-100%"
	case v >= 60:
		return "60-70%"
	case v >= 50:
		return "50-60%"
	case v >= 40:
		return "40-50%"
	case v >= 30:
		return "30-40%"
	case v >= 20:
		return "20-30%"
	case v >= 10:
		return "10-20%"
	default:
		return "0-10%"
	}
}

// GetDiscountDistribution histograms extracted discount percentages into the
// eight fixed buckets. Values that fail extraction are excluded, never coerced
// to zero.
func (s *DashboardService) GetDiscountDistribution() ([]DiscountBucket, error) {
	var values []string
	err := s.db.Model(&models.Product{}).
		Where("discount_percentage IS NOT NULL AND discount_percentage != ''").
		Pluck("discount_percentage", &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discount values: %w", err)
	}
	return buildDiscountHistogram(values), nil
}

func buildDiscountHistogram(values []string) []DiscountBucket {
	counts := make(map[string]int64, len(discountRanges))
	for _, v := range values {
		if n, ok := numeric.Extract(v); ok {
			counts[discountRange(n)]++
		}
	}

	buckets := make([]DiscountBucket, 0, len(discountRanges))
	for _, label := range discountRanges {
		buckets = append(buckets, DiscountBucket{DiscountRange: label, Count: counts[label]})
	}
	return buckets
}

// GetCategoryAvgRating returns the ten categories with the highest mean
// extracted rating, with the size of each group.
func (s *DashboardService) GetCategoryAvgRating() ([]CategoryRating, error) {
	ratings := []CategoryRating{}
	err := s.db.Model(&models.Product{}).
		Select(fmt.Sprintf("category, ROUND(AVG(%s), 1) as avg_rating, COUNT(*) as product_count", numeric.SQLCast("rating"))).
		Where("category IS NOT NULL AND category != ''").
		Where("rating IS NOT NULL AND rating != ''").
		Group("category").
		Order("avg_rating DESC").
		Limit(10).
		Scan(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category ratings: %w", err)
	}
	return ratings, nil
}

// GetRatingDistribution groups extracted ratings into star buckets for the
// trends chart.
func (s *DashboardService) GetRatingDistribution() ([]RatingGroup, error) {
	query := fmt.Sprintf(`
		SELECT
			CASE
				WHEN num_rating >= 4.5 THEN '5 Stars'
				WHEN num_rating >= 3.5 THEN '4 Stars'
				WHEN num_rating >= 2.5 THEN '3 Stars'
				WHEN num_rating >= 1.5 THEN '2 Stars'
				ELSE '1 Star'
			END as rating_group,
			COUNT(*) as count
		FROM (
			SELECT %s as num_rating
			FROM products
			WHERE rating IS NOT NULL AND rating != ''
		) AS parsed
		WHERE num_rating IS NOT NULL
		GROUP BY rating_group
		ORDER BY rating_group DESC`, numeric.SQLCast("rating"))

	groups := []RatingGroup{}
	if err := s.db.Raw(query).Scan(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rating distribution: %w", err)
	}
	return groups, nil
}
