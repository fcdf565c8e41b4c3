// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Sort     string `json:"sort"`
	Order    string `json:"order"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	Count      int64       `json:"count"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// GetPaginationParams reads page/page_size/sort/order from the query string,
// falling back to defaultSize and capping page_size at maxSize.
func GetPaginationParams(c *gin.Context, defaultSize, maxSize int) PaginationParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	order := c.DefaultQuery("order", "asc")
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Sort:     c.DefaultQuery("sort", "id"),
		Order:    order,
	}
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// OffsetOverflows reports whether Offset(page, pageSize) does not fit in an int.
func OffsetOverflows(page, pageSize int) bool {
	if page < 1 || pageSize < 1 {
		return false
	}
	return page-1 > math.MaxInt/pageSize
}

func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset(Offset(params.Page, params.PageSize)).Limit(params.PageSize)
}

func ApplySort(db *gorm.DB, params PaginationParams, allowedSortFields []string) *gorm.DB {
	// Validate sort field
	sortField := params.Sort
	validSort := false
	for _, field := range allowedSortFields {
		if field == sortField {
			validSort = true
			break
		}
	}

	if !validSort {
		sortField = "id"
	}

	order := params.Order
	if order != "desc" {
		order = "asc"
	}

	// Tie-break on id so pages never overlap.
	if sortField == "id" {
		return db.Order("id " + order)
	}
	return db.Order(sortField + " " + order).Order("id asc")
}

func CreatePaginationResult(data interface{}, total int64, page, pageSize int) PaginationResult {
	return PaginationResult{
		Page:       page,
		PageSize:   pageSize,
		Count:      total,
		TotalPages: TotalPages(total, pageSize),
		Data:       data,
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Count, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.PageSize))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}
