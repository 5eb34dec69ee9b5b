package order

import (
	"context"

	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"gorm.io/gorm"
)

// OrderRepository stores orders and their product lines. Loaded orders have
// Member and Products populated from the id references.
type OrderRepository struct{}

// lineBatchSize bounds the rows of one multi-row insert.
const lineBatchSize = 500

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order row followed by one line per product.
func (r *OrderRepository) Create(ctx context.Context, db *gorm.DB, order *model.Order) error {
	if err := db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	return r.insertLines(ctx, db, order)
}

// Update rewrites the order columns. Lines are left untouched.
func (r *OrderRepository) Update(ctx context.Context, db *gorm.DB, order *model.Order) error {
	return db.WithContext(ctx).
		Model(order).
		Select("order_date", "status", "member_id", "total_amount", "updated_at").
		Updates(order).Error
}

// ReplaceLines drops the existing lines of order and writes order.Products.
func (r *OrderRepository) ReplaceLines(ctx context.Context, db *gorm.DB, order *model.Order) error {
	if err := db.WithContext(ctx).Where("order_id = ?", order.ID).Delete(&model.OrderLine{}).Error; err != nil {
		return err
	}
	return r.insertLines(ctx, db, order)
}

func (r *OrderRepository) insertLines(ctx context.Context, db *gorm.DB, order *model.Order) error {
	if len(order.Products) == 0 {
		return nil
	}

	lines := make([]model.OrderLine, 0, len(order.Products))
	for i, p := range order.Products {
		lines = append(lines, model.OrderLine{OrderID: order.ID, Position: i, ProductID: p.ID})
	}
	return db.WithContext(ctx).CreateInBatches(&lines, lineBatchSize).Error
}

func (r *OrderRepository) Exists(ctx context.Context, db *gorm.DB, id uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID returns gorm.ErrRecordNotFound when absent
func (r *OrderRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Order, error) {
	var order model.Order
	if err := db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}

	orders := []model.Order{order}
	if err := r.hydrate(ctx, db, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *OrderRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Order, error) {
	var orders []model.Order
	if err := db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.Order, error) {
	var orders []model.Order
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the order and its lines.
func (r *OrderRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	if err := db.WithContext(ctx).Where("order_id = ?", id).Delete(&model.OrderLine{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Where("id = ?", id).Delete(&model.Order{}).Error
}

// hydrate resolves the member and product references of orders. Each table
// is read with chunked IN lists, so large result sets stay within the
// driver's bind limits.
func (r *OrderRepository) hydrate(ctx context.Context, db *gorm.DB, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]uint32, 0, len(orders))
	memberIDs := make([]uint32, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		memberIDs = append(memberIDs, o.MemberID)
	}

	members, err := database.FindIn[model.Member](ctx, db, "id", memberIDs)
	if err != nil {
		return err
	}
	membersByID := make(map[uint32]*model.Member, len(members))
	for i := range members {
		membersByID[members[i].ID] = &members[i]
	}

	lines, err := database.FindIn[model.OrderLine](ctx, db, "order_id", orderIDs, "order_id", "position")
	if err != nil {
		return err
	}

	productIDs := make([]uint32, 0, len(lines))
	for _, l := range lines {
		productIDs = append(productIDs, l.ProductID)
	}
	products, err := database.FindIn[model.Product](ctx, db, "id", productIDs)
	if err != nil {
		return err
	}
	productsByID := make(map[uint32]model.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	linesByOrder := make(map[uint32][]model.Product, len(orders))
	for _, l := range lines {
		if p, ok := productsByID[l.ProductID]; ok {
			linesByOrder[l.OrderID] = append(linesByOrder[l.OrderID], p)
		}
	}

	for i := range orders {
		orders[i].Member = membersByID[orders[i].MemberID]
		orders[i].Products = linesByOrder[orders[i].ID]
		if orders[i].Products == nil {
			orders[i].Products = []model.Product{}
		}
	}
	return nil
}
