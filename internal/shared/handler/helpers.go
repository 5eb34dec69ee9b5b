package handler

import (
	"fmt"
	"net/http"
	"strconv"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/ecomshop/shop-api/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreateProductRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		_ = c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// ParseID reads a positive numeric path parameter.
// Returns false if invalid (400 already sent).
func ParseID(c *gin.Context, param string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		_ = c.Error(fmt.Errorf("invalid path parameter %s=%q", param, c.Param(param)))

		resp := sharedError.InvalidRequest
		resp.Error = fmt.Sprintf("Invalid %s", param)
		resp.Message = fmt.Sprintf("%s must be a positive integer.", param)
		c.JSON(resp.Status, resp)
		return 0, false
	}
	return uint32(id), true
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	_ = c.Error(err)

	c.JSON(errResp.Status, errResp)
}

// RespondServiceError maps a domain error to its registered response and
// everything else to a logged 500.
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}

	logger.FromContext(c.Request.Context()).Error("unexpected service error",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	RespondError(c, err, sharedError.InternalServerError)
}
