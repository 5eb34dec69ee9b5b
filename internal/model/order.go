package model

import (
	"strings"
	"time"
)

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "EN_COURS"
	OrderStatusValidated  OrderStatus = "VALIDÉE"
	OrderStatusCancelled  OrderStatus = "ANNULÉE"

	DefaultOrderStatus = OrderStatusInProgress
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusInProgress: {},
	OrderStatusValidated:  {},
	OrderStatusCancelled:  {},
}

// ParseOrderStatus matches s case-sensitively against the enum names.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	if _, ok := orderStatuses[status]; !ok {
		return "", false
	}
	return status, true
}

// NormalizeOrderStatus returns the default status for blank or unknown values.
func NormalizeOrderStatus(s string) OrderStatus {
	if strings.TrimSpace(s) == "" {
		return DefaultOrderStatus
	}
	if status, ok := ParseOrderStatus(s); ok {
		return status
	}
	return DefaultOrderStatus
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order (commande) links one member to zero or more products.
// Relations are id references; Member and Products are loaded by the repository.
type Order struct {
	ID          uint32      `gorm:"column:id;primaryKey;autoIncrement"`
	OrderDate   time.Time   `gorm:"column:order_date;not null"`
	Status      OrderStatus `gorm:"column:status;type:VARCHAR2(20);not null"`
	MemberID    uint32      `gorm:"column:member_id;not null;index:idx_order_member"`
	TotalAmount *float64    `gorm:"column:total_amount"`

	BaseEntity

	Member   *Member   `gorm:"-"`
	Products []Product `gorm:"-"`
}

func (*Order) TableName() string {
	return "orders"
}

// OrderLine is one row of the order/product join table. Position keeps the
// submission order and allows the same product to appear more than once.
type OrderLine struct {
	OrderID   uint32 `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	Position  int    `gorm:"column:position;primaryKey;autoIncrement:false"`
	ProductID uint32 `gorm:"column:product_id;not null;index:idx_order_line_product"`
}

func (*OrderLine) TableName() string {
	return "order_product"
}

// ProductIDs projects the product association to identifiers.
// A nil association yields nil, an empty one an empty slice.
func (o *Order) ProductIDs() []uint32 {
	if o.Products == nil {
		return nil
	}
	ids := make([]uint32, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, p.ID)
	}
	return ids
}
