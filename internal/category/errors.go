package category

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
)

const categoryNotFound = "CATEGORY_NOT_FOUND" // errInfo

var ErrCategoryNotFound = sharedError.NewDomainError(categoryNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(categoryNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CATEGORY-001",
		Error:   "Category not found",
		Message: "No category found.",
	})
}
