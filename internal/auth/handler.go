package auth

import (
	"net/http"

	"github.com/ecomshop/shop-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (a *AuthHandler) Signup(c *gin.Context) {
	var request SignupRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Signup(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
