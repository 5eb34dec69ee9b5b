package auth

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
)

var (
	ErrIncorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Error:   "Invalid credentials",
		Message: "Email or password is incorrect.",
	})
}
