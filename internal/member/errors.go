package member

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
)

const (
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	memberNotFound      = "MEMBER_NOT_FOUND"      // errInfo
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Error:   "Adherent not found",
		Message: "No adherent found.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Error:   "Adherent already exists",
		Message: "An adherent with this email already exists.",
	})
}
