package product

import (
	"net/http"

	"github.com/ecomshop/shop-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *ProductService
}

func NewProductHandler(productService *ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var request CreateRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.productService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	response, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *ProductHandler) List(c *gin.Context) {
	response, err := h.productService.List(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
