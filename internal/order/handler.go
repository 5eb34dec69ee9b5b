package order

import (
	"net/http"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/handler"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *OrderService
}

func NewOrderHandler(orderService *OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var request OrderDTO
	if !handler.BindJSON(c, &request) {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &request)
	if err != nil {
		if _, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondServiceError(c, err)
			return
		}
		logger.FromContext(c.Request.Context()).Error("order creation failed", "error", err)
		handler.RespondError(c, err, createFailed)
		return
	}
	c.JSON(http.StatusOK, ToResponse(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponseList(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToResponse(order))
}

// ListByMember expects a bearer header to have been checked by middleware.
func (h *OrderHandler) ListByMember(c *gin.Context) {
	memberID, ok := handler.ParseID(c, "memberId")
	if !ok {
		return
	}

	orders, err := h.orderService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponseList(orders))
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var request OrderDTO
	if !handler.BindJSON(c, &request) {
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToResponse(order))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
