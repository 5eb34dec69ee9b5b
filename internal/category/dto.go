package category

import "github.com/ecomshop/shop-api/internal/model"

type CreateRequest struct {
	Name string `json:"nom" binding:"required,notblank,max=100"`
}

type Response struct {
	ID   uint32 `json:"id"`
	Name string `json:"nom"`
}

func toResponse(c *model.Category) Response {
	return Response{ID: c.ID, Name: c.Name}
}
