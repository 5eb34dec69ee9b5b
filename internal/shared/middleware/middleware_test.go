package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	sharedContext "github.com/ecomshop/shop-api/internal/shared/context"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/metrics"
	"github.com/ecomshop/shop-api/internal/shared/middleware"
	"github.com/ecomshop/shop-api/internal/shared/testutil"
	"github.com/ecomshop/shop-api/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireBearer(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.GET("/orders", middleware.RequireBearer(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(sharedContext.BearerTokenKey))
	})

	testCases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "Missing header", header: "", status: http.StatusUnauthorized, code: "AUTH-000"},
		{name: "Wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, code: "AUTH-000"},
		{name: "Empty token", header: "Bearer   ", status: http.StatusUnauthorized, code: "AUTH-000"},
		{name: "Any bearer token", header: "Bearer whatever", status: http.StatusOK},
		{name: "Lowercase scheme", header: "bearer whatever", status: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.TestRequest{Method: http.MethodGet, URL: "/orders"}
			if tc.header != "" {
				req.Headers = map[string]string{"Authorization": tc.header}
			}
			recorder := testutil.ExecuteRequest(t, router, req)

			assert.Equal(t, tc.status, recorder.Code)
			if tc.code != "" {
				var errorResponse sharedError.ErrorResponse
				testutil.ParseResponse(t, recorder, &errorResponse)
				assert.Equal(t, tc.code, errorResponse.Code)
			} else {
				assert.Equal(t, "whatever", recorder.Body.String())
			}
		})
	}
}

func TestJWT(t *testing.T) {
	tokenManager := testutil.NewMockTokenManager()
	tokenManager.ValidateTokenFunc = func(raw string, expected token.Type) (*token.Claims, error) {
		switch raw {
		case "good":
			return &token.Claims{MemberID: 7, Email: "claire@example.com", TokenType: expected}, nil
		case "old":
			return nil, token.ErrExpiredToken
		default:
			return nil, token.ErrInvalidToken
		}
	}

	router := testutil.SetupTestRouter()
	router.GET("/me", middleware.JWT(tokenManager), func(c *gin.Context) {
		id, ok := sharedContext.RequireMemberID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	t.Run("valid token", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/me",
			Headers: testutil.BearerHeader("good"),
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"id":7}`, recorder.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/me",
			Headers: testutil.BearerHeader("old"),
		})
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "Expired token", errorResponse.Error)
	})
}

func TestRequestID(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/ping"})
		assert.NotEmpty(t, recorder.Body.String())
		assert.Equal(t, recorder.Body.String(), recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/ping",
			Headers: map[string]string{"X-Request-ID": "req-123"},
		})
		assert.Equal(t, "req-123", recorder.Body.String())
	})

	t.Run("oversized id replaced", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/ping",
			Headers: map[string]string{"X-Request-ID": strings.Repeat("x", 100)},
		})
		assert.NotEqual(t, strings.Repeat("x", 100), recorder.Body.String())
	})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	registry := metrics.New()
	router := testutil.SetupTestRouter()
	router.Use(middleware.Metrics(registry))
	router.GET("/api/commandes/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/commandes/5"})
	testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/commandes/6"})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/unknown"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	body := scrape(t, registry)
	assert.Contains(t, body, `shop_http_requests_total{method="GET",route="/api/commandes/:id",status="404"} 2`)
	assert.Contains(t, body, `shop_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}

func scrape(t *testing.T, registry *metrics.Registry) string {
	t.Helper()
	router := gin.New()
	router.GET("/metrics", gin.WrapH(registry.Handler()))
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/metrics"})
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.Body.String()
}
