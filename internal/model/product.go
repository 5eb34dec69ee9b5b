package model

// Product is a sellable item. Stock never goes below zero.
type Product struct {
	ID          uint32  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;type:VARCHAR2(200);not null"`
	Description string  `gorm:"column:description;type:VARCHAR2(1000);not null"`
	Price       float64 `gorm:"column:price;not null;default:0"`
	Stock       int     `gorm:"column:stock;not null;default:0"`
	Image       string  `gorm:"column:image;type:VARCHAR2(500)"`
	CategoryID  *uint32 `gorm:"column:category_id;index:idx_product_category"`

	BaseEntity
}

func (*Product) TableName() string {
	return "product"
}

// NewProduct creates a product; negative stock is clamped to 0.
func NewProduct(name, description string, price float64, stock int, image string, categoryID *uint32) *Product {
	if stock < 0 {
		stock = 0
	}
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Image:       image,
		CategoryID:  categoryID,
	}
}
