package member_test

import (
	"net/http"
	"testing"

	"github.com/ecomshop/shop-api/internal/member"
	"github.com/ecomshop/shop-api/internal/model"
	sharedContext "github.com/ecomshop/shop-api/internal/shared/context"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/middleware"
	"github.com/ecomshop/shop-api/internal/shared/testutil"
	"github.com/ecomshop/shop-api/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberHandler := member.NewMemberHandler(member.NewMemberService(db, member.NewMemberRepository()))

	tokenManager := testutil.NewMockTokenManager()
	tokenManager.ValidateTokenFunc = func(raw string, expected token.Type) (*token.Claims, error) {
		if raw != "valid" {
			return nil, token.ErrInvalidToken
		}
		return &token.Claims{MemberID: 1, Email: "jane@example.com", TokenType: expected}, nil
	}

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/me", middleware.JWT(tokenManager), memberHandler.GetProfile)
	router.GET("/api/adherents/:id", memberHandler.GetByID)
	return router, db
}

func TestGetProfile_Success(t *testing.T) {
	// Given: an adherent with id 1
	router, db := setupTestEnvironment(t)
	testutil.MustCreate(t, db, model.NewMember("Doe", "Jane", "jane@example.com", "hashed"))

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/members/me",
		Headers: testutil.BearerHeader("valid"),
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var profile member.ProfileResponse
	testutil.ParseResponse(t, recorder, &profile)
	assert.Equal(t, uint32(1), profile.ID)
	assert.Equal(t, "Doe", profile.LastName)
	assert.Equal(t, "Jane", profile.FirstName)
}

func TestGetProfile_Unauthorized(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name    string
		headers map[string]string
	}{
		{name: "Missing header", headers: nil},
		{name: "Wrong scheme", headers: map[string]string{"Authorization": "Basic abc"}},
		{name: "Invalid token", headers: testutil.BearerHeader("forged")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method:  http.MethodGet,
				URL:     "/api/v1/members/me",
				Headers: tc.headers,
			})

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedContext.Unauthorized.Code, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Error)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/adherents/42",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestGetByID_InvalidID(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/adherents/abc",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
