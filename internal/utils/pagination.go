package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse is the pagination metadata handed to templates.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// HasNext reports whether another page follows.
func (p PaginationResponse) HasNext() bool {
	return int64(p.Page*p.Limit) < p.Total
}

// HasPrev reports whether a previous page exists.
func (p PaginationResponse) HasPrev() bool {
	return p.Page > 1
}

// NextPage returns the following page number.
func (p PaginationResponse) NextPage() int { return p.Page + 1 }

// PrevPage returns the preceding page number.
func (p PaginationResponse) PrevPage() int { return p.Page - 1 }

// NewPaginationParams clamps page and limit to sane values.
func NewPaginationParams(page, limit int) PaginationParams {
	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))
	return NewPaginationParams(page, limit)
}
