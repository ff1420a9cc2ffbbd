package context

import (
	"net/http"
	"strconv"

	"github.com/onemapafrica/member-hub-api/internal/shared/logger"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing authenticated admin information
const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
)

func GetAdminID(c *gin.Context) (uint32, bool) {
	adminID, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := adminID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// RequireAdminID retrieves the authenticated admin's ID from the Gin context.
// If the ID is not found, automatically sends an authentication error response.
// Use this in most handlers to reduce boilerplate.
func RequireAdminID(c *gin.Context) (uint32, bool) {
	adminID, ok := GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "Please sign in.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] admin ID missing from context")
		return 0, false
	}
	return adminID, true
}
