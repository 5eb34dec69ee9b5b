package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sharedContext "github.com/ecomshop/shop-api/internal/shared/context"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// Register JWT error responses
func init() {
	for errInfo, label := range map[string]string{
		missingToken:  "Missing token",
		invalidToken:  "Invalid token",
		expiredToken:  "Expired token",
		invalidClaims: "Invalid token",
	} {
		resp := sharedContext.Unauthorized
		resp.Error = label
		sharedError.RegisterDomainErrorResponse(errInfo, resp)
	}
}

// JWT validates the bearer access token and stores the member in the context.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Step 1: 토큰 추출
		raw, err := extractToken(c)
		if err != nil {
			logAuthFailure(c, "extract_token", err)
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(raw, token.Access)
		if err != nil {
			logAuthFailure(c, "validate_token", err)
			handleJWTError(c, mapTokenError(err))
			return
		}

		c.Set(sharedContext.MemberIDKey, claims.MemberID)
		c.Set(sharedContext.MemberEmailKey, claims.Email)
		c.Next()
	}
}

// RequireBearer only checks that an "Authorization: Bearer <token>" header is
// present. The token itself is not verified.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extractToken(c)
		if err != nil {
			logAuthFailure(c, "extract_token", err)
			handleJWTError(c, err)
			return
		}

		c.Set(sharedContext.BearerTokenKey, raw)
		c.Next()
	}
}

func logAuthFailure(c *gin.Context, step string, err error) {
	slog.Warn("인증 실패",
		"step", step,
		"error", err.Error(),
		"client_ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", GetRequestID(c),
	)
}

// handleJWTError handles JWT errors using the standardized error response format
func handleJWTError(c *gin.Context, err error) {
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Error:   "Unauthorized",
			Message: "Authentication failed.",
		}
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(parts[1]), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
