// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page     int    `form:"page" json:"page" validate:"min=1"`
	Limit    int    `form:"limit" json:"limit" validate:"min=1,max=100"`
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
	Review   string `form:"review" json:"review"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PaginationResult struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// GetPaginationParams reads page/limit and the filter fields from the query
// string. Absent or non-numeric values fall back to defaults; out-of-range
// values are left for ValidateStruct to reject.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	return PaginationParams{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Review:   c.Query("review"),
	}
}

func CreatePaginationResult(data interface{}, total int64, params PaginationParams) PaginationResult {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return PaginationResult{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
