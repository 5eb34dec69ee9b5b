package product

import "github.com/ecomshop/shop-api/internal/model"

type CreateRequest struct {
	Name        string   `json:"nom" binding:"required,notblank,max=200"`
	Description string   `json:"description" binding:"required,notblank,max=1000"`
	Price       *float64 `json:"prix" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Image       string   `json:"image" binding:"max=500"`
	CategoryID  *uint32  `json:"categorieId" binding:"omitempty,gt=0"`
}

type Response struct {
	ID          uint32  `json:"id"`
	Name        string  `json:"nom"`
	Description string  `json:"description"`
	Price       float64 `json:"prix"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
	CategoryID  *uint32 `json:"categorieId,omitempty"`
}

func ToResponse(p *model.Product) Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		CategoryID:  p.CategoryID,
	}
}
