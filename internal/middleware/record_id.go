package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
)

// RequireRecordID parses the :id route parameter. Malformed ids are answered
// with 404 so they look the same as unknown ones.
func RequireRecordID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.NotFound(c, "")
			return
		}

		c.Set(constants.ContextKeyRecordID, id)
		c.Next()
	}
}

// GetRecordID retrieves the id parsed by RequireRecordID
func GetRecordID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(constants.ContextKeyRecordID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
