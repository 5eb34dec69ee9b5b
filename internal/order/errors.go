package order

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
)

const (
	memberIDRequired  = "ORDER_MEMBER_ID_REQUIRED"  // errInfo
	orderDateRequired = "ORDER_DATE_REQUIRED"       // errInfo
	memberNotResolved = "ORDER_MEMBER_NOT_RESOLVED" // errInfo
	orderNotFound     = "ORDER_NOT_FOUND"           // errInfo
)

var (
	ErrMemberIDRequired  = sharedError.NewDomainError(memberIDRequired)
	ErrOrderDateRequired = sharedError.NewDomainError(orderDateRequired)
	ErrMemberNotResolved = sharedError.NewDomainError(memberNotResolved)
	ErrOrderNotFound     = sharedError.NewDomainError(orderNotFound)
)

// createFailed replaces the generic 500 body on order creation.
var createFailed = sharedError.ErrorResponse{
	Status:  http.StatusInternalServerError,
	Code:    "ORDER-500",
	Error:   "Internal server error",
	Message: "There was a problem with your order. Please log out and log in again to refresh your session.",
}

func init() {
	sharedError.RegisterDomainErrorResponse(memberIDRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ORDER-001",
		Error:   "Invalid adherent ID",
		Message: "Adherent ID is required. Please log in again to refresh your user data.",
	})

	sharedError.RegisterDomainErrorResponse(orderDateRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ORDER-002",
		Error:   "Invalid date",
		Message: "Order date is required.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotResolved, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ORDER-003",
		Error:   "Invalid adherent ID",
		Message: "No adherent found. Please log in again to refresh your user data.",
	})

	sharedError.RegisterDomainErrorResponse(orderNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ORDER-004",
		Error:   "Commande not found",
		Message: "No commande found.",
	})
}

func errMemberNotResolved(id uint32) error {
	return sharedError.WithMessage(ErrMemberNotResolved,
		"No adherent found with ID: %d. Please log in again to refresh your user data.", id)
}

func errOrderNotFound(id uint32) error {
	return sharedError.WithMessage(ErrOrderNotFound, "No commande found with ID: %d", id)
}
