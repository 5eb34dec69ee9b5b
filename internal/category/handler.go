package category

import (
	"net/http"

	"github.com/ecomshop/shop-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *CategoryService
}

func NewCategoryHandler(categoryService *CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var request CreateRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.categoryService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *CategoryHandler) List(c *gin.Context) {
	response, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
