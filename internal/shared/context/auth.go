package context

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	MemberIDKey    = "member_id"
	MemberEmailKey = "member_email"
	BearerTokenKey = "bearer_token"
)

// Unauthorized is the response sent when authentication is missing
var Unauthorized = sharedError.ErrorResponse{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH-000",
	Error:   "Unauthorized",
	Message: "Please log in.",
}

func GetMemberID(c *gin.Context) (uint32, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}

	id, ok := memberID.(uint32)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// RequireMemberID retrieves the authenticated member ID from the Gin context.
// If it is missing an authentication error response is sent and false returned.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.AbortWithStatusJSON(Unauthorized.Status, Unauthorized)
		logger.FromContext(c.Request.Context()).Error("[API] member id missing from context")
		return 0, false
	}
	return memberID, true
}
