package auth_test

import (
	"net/http"
	"testing"

	"github.com/ecomshop/shop-api/internal/auth"
	"github.com/ecomshop/shop-api/internal/member"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/testutil"
	"github.com/ecomshop/shop-api/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *testutil.MockTokenManager) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, member.NewMemberRepository(), mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	return router, mockTokenManager
}

func signup(t *testing.T, router *gin.Engine, body any) int {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body:   body,
	})
	return recorder.Code
}

func TestSignup_Success(t *testing.T) {
	// Given: Setup test environment
	router, _ := setupTestEnvironment(t)

	// When: Execute signup request
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			LastName:  "Doe",
			FirstName: "Jane",
			Email:     "jane@example.com",
			Password:  "password123",
		},
	})

	// Then: Verify response
	require.Equal(t, http.StatusCreated, recorder.Code)
	var response auth.SignupResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, uint32(1), response.ID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Given: an existing adherent
	router, _ := setupTestEnvironment(t)
	require.Equal(t, http.StatusCreated, signup(t, router, auth.SignupRequest{
		LastName: "Doe", FirstName: "Jane", Email: "duplicate@example.com", Password: "password123",
	}))

	// When: Try to create another one with the same email (different case)
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			LastName: "Roe", FirstName: "John", Email: "Duplicate@Example.com", Password: "password456",
		},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Error)
	assert.NotEmpty(t, errorResponse.Message)
}

func TestSignup_ValidationError(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]string
	}{
		{
			name:        "Missing nom",
			requestBody: map[string]string{"prenom": "Jane", "email": "jane@example.com", "password": "password123"},
		},
		{
			name:        "Blank prenom",
			requestBody: map[string]string{"nom": "Doe", "prenom": "   ", "email": "jane@example.com", "password": "password123"},
		},
		{
			name:        "Invalid email",
			requestBody: map[string]string{"nom": "Doe", "prenom": "Jane", "email": "not-an-email", "password": "password123"},
		},
		{
			name:        "Password too short",
			requestBody: map[string]string{"nom": "Doe", "prenom": "Jane", "email": "jane@example.com", "password": "short"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/signup",
				Body:   tc.requestBody,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "ERROR-001", errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	// Given: a registered adherent
	router, tokenManager := setupTestEnvironment(t)
	require.Equal(t, http.StatusCreated, signup(t, router, auth.SignupRequest{
		LastName: "Doe", FirstName: "Jane", Email: "jane@example.com", Password: "password123",
	}))

	var issuedFor uint32
	tokenManager.GeneratePairFunc = func(memberID uint32, email string, role token.Role) (*token.Pair, error) {
		issuedFor = memberID
		return &token.Pair{AccessToken: "access", RefreshToken: "refresh"}, nil
	}

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Email: "jane@example.com", Password: "password123"},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, uint32(1), response.MemberID)
	assert.Equal(t, "access", response.AccessToken)
	assert.Equal(t, "refresh", response.RefreshToken)
	assert.Equal(t, uint32(1), issuedFor)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := setupTestEnvironment(t)
	require.Equal(t, http.StatusCreated, signup(t, router, auth.SignupRequest{
		LastName: "Doe", FirstName: "Jane", Email: "jane@example.com", Password: "password123",
	}))

	testCases := []auth.LoginRequest{
		{Email: "jane@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "password123"},
	}

	for _, request := range testCases {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/v1/auth/login",
			Body:   request,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "AUTH-003", errorResponse.Code)
	}
}
