package order

import (
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/product"
)

// ToEntity converts a transfer object to a partial order. The member and
// product associations stay unresolved; only the member id reference is kept.
// The status is taken as submitted; callers normalize it first.
func ToEntity(dto *OrderDTO) *model.Order {
	if dto == nil {
		return nil
	}

	order := &model.Order{
		Status: model.OrderStatus(dto.Status),
	}
	if dto.ID != nil {
		order.ID = *dto.ID
	}
	if dto.OrderDate != nil {
		order.OrderDate = dto.OrderDate.UTC()
	}
	if dto.MemberID != nil {
		order.MemberID = *dto.MemberID
	}
	if dto.TotalAmount != nil {
		total := *dto.TotalAmount
		order.TotalAmount = &total
	}
	return order
}

// ToDTO converts an order to its transfer object. A nil product association
// yields nil ProductIDs and an empty one an empty, non-nil slice.
func ToDTO(order *model.Order) *OrderDTO {
	if order == nil {
		return nil
	}

	dto := &OrderDTO{
		Status:     order.Status.String(),
		ProductIDs: order.ProductIDs(),
	}
	if order.ID != 0 {
		id := order.ID
		dto.ID = &id
	}
	if !order.OrderDate.IsZero() {
		dto.OrderDate = NewOrderTime(order.OrderDate)
	}
	switch {
	case order.Member != nil:
		memberID := order.Member.ID
		dto.MemberID = &memberID
	case order.MemberID != 0:
		memberID := order.MemberID
		dto.MemberID = &memberID
	}
	if order.TotalAmount != nil {
		total := *order.TotalAmount
		dto.TotalAmount = &total
	}
	return dto
}

func ToDTOList(orders []model.Order) []OrderDTO {
	if orders == nil {
		return nil
	}
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, *ToDTO(&orders[i]))
	}
	return dtos
}

func ToEntityList(dtos []OrderDTO) []model.Order {
	if dtos == nil {
		return nil
	}
	orders := make([]model.Order, 0, len(dtos))
	for i := range dtos {
		orders = append(orders, *ToEntity(&dtos[i]))
	}
	return orders
}

// ToResponse adds the resolved products to the transfer object.
func ToResponse(order *model.Order) *Response {
	if order == nil {
		return nil
	}

	resp := &Response{
		OrderDTO: *ToDTO(order),
		Products: make([]product.Response, 0, len(order.Products)),
	}
	for i := range order.Products {
		resp.Products = append(resp.Products, product.ToResponse(&order.Products[i]))
	}
	return resp
}

func toResponseList(orders []model.Order) []Response {
	responses := make([]Response, 0, len(orders))
	for i := range orders {
		responses = append(responses, *ToResponse(&orders[i]))
	}
	return responses
}
