package utils

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	a, err := GeneratePassword()
	require.NoError(t, err)
	b, err := GeneratePassword()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}$`), a)
	assert.NotEqual(t, a, b)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query     string
		page      int
		limit     int
		offset    int
	}{
		{"", 1, 20, 0},
		{"page=3&limit=10", 3, 10, 20},
		{"page=0&limit=1000", 1, 20, 0},
		{"page=abc", 1, 20, 0},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/moderate?"+tt.query, nil)

		params := GetPaginationParams(c)
		assert.Equal(t, tt.page, params.Page, tt.query)
		assert.Equal(t, tt.limit, params.Limit, tt.query)
		assert.Equal(t, tt.offset, params.Offset, tt.query)
	}
}

func TestPaginationResponse_Navigation(t *testing.T) {
	p := PaginationResponse{Page: 1, Limit: 20, Total: 45}
	assert.True(t, p.HasNext())
	assert.False(t, p.HasPrev())

	p = PaginationResponse{Page: 3, Limit: 20, Total: 45}
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrev())
	assert.Equal(t, 2, p.PrevPage())
}
