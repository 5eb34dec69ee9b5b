package product

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
)

const (
	productNotFound = "PRODUCT_NOT_FOUND"         // errInfo
	unknownCategory = "PRODUCT_UNKNOWN_CATEGORY" // errInfo
)

var (
	ErrProductNotFound = sharedError.NewDomainError(productNotFound)
	ErrUnknownCategory = sharedError.NewDomainError(unknownCategory)
)

func init() {
	sharedError.RegisterDomainErrorResponse(productNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PRODUCT-001",
		Error:   "Product not found",
		Message: "No product found.",
	})

	sharedError.RegisterDomainErrorResponse(unknownCategory, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PRODUCT-002",
		Error:   "Invalid category ID",
		Message: "No category found.",
	})
}
