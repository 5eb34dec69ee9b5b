package bootstrap_test

import (
	"net/http"
	"testing"

	"github.com/ecomshop/shop-api/internal/bootstrap"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/metrics"
	"github.com/ecomshop/shop-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupEngine_RecoversPanics(t *testing.T) {
	// Given
	engine := bootstrap.NewBootstrap(testutil.NewTestConfig(), metrics.New()).SetupEngine()
	engine.GET("/boom", func(c *gin.Context) {
		panic(struct{ reason string }{reason: "not a string"})
	})

	// When
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/boom"})

	// Then
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, sharedError.InternalServerError.Code, errorResponse.Code)
}

func TestNew_UsesConfiguredPort(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.App.Port = 9191

	srv := bootstrap.New(cfg, http.NotFoundHandler())

	assert.Equal(t, 9191, srv.Port())
	assert.Equal(t, ":9191", srv.Addr())
}
