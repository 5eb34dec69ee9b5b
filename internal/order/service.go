package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ecomshop/shop-api/internal/member"
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/product"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/event"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/ecomshop/shop-api/internal/shared/metrics"
	"gorm.io/gorm"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// StockCache drops cached product data after a stock change.
type StockCache interface {
	Invalidate(ctx context.Context, ids ...uint32)
}

// OrderService assembles submitted orders: it validates them, resolves the
// member and products, adjusts stock and persists the result.
//
// Stock decrements and the order write share one transaction, and the
// decrement itself is conditional on stock > 0, so a failed write leaves
// stock untouched and concurrent orders cannot oversell.
type OrderService struct {
	db                *gorm.DB
	orderRepository   *OrderRepository
	memberRepository  *member.MemberRepository
	productRepository *product.ProductRepository
	stockCache        StockCache
	publisher         event.Publisher
	metrics           *metrics.Registry
}

func NewOrderService(
	db *gorm.DB,
	orderRepository *OrderRepository,
	memberRepository *member.MemberRepository,
	productRepository *product.ProductRepository,
	stockCache StockCache,
	publisher event.Publisher,
	registry *metrics.Registry,
) *OrderService {
	if publisher == nil {
		publisher = event.Noop{}
	}
	return &OrderService{
		db:                db,
		orderRepository:   orderRepository,
		memberRepository:  memberRepository,
		productRepository: productRepository,
		stockCache:        stockCache,
		publisher:         publisher,
		metrics:           registry,
	}
}

func (s *OrderService) Create(ctx context.Context, dto *OrderDTO) (*model.Order, error) {
	if err := validateSubmission(dto); err != nil {
		s.observe(opCreate, err)
		return nil, err
	}

	var (
		order   *model.Order
		changed []uint32
	)
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		submitted := s.normalizeStatus(ctx, dto)

		resolved, err := s.resolveMember(ctx, tx, *submitted.MemberID)
		if err != nil {
			return err
		}

		order = ToEntity(submitted)
		order.ID = 0
		order.MemberID = resolved.ID
		order.Member = resolved
		order.CreatedBy = &resolved.ID
		if order.TotalAmount == nil && submitted.TotalAmount != nil {
			total := *submitted.TotalAmount
			order.TotalAmount = &total
		}

		if len(submitted.ProductIDs) > 0 {
			order.Products, err = s.resolveProducts(ctx, tx, submitted.ProductIDs)
			if err != nil {
				return err
			}
			changed, err = s.decrementStock(ctx, tx, order.Products)
			if err != nil {
				return err
			}
		} else {
			order.Products = []model.Product{}
		}

		if err := s.orderRepository.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		return nil
	})
	s.observe(opCreate, err)
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, event.OrderCreated, order, changed)
	logger.FromContext(ctx).Info("order created",
		"order_id", order.ID,
		"member_id", order.MemberID,
		"status", order.Status,
		"products", len(order.Products),
	)
	return order, nil
}

// Update replaces an existing order. Products are kept when none are
// submitted.
func (s *OrderService) Update(ctx context.Context, id uint32, dto *OrderDTO) (*model.Order, error) {
	if err := validateSubmission(dto); err != nil {
		s.observe(opUpdate, err)
		return nil, err
	}

	var (
		order   *model.Order
		changed []uint32
	)
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.orderRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errOrderNotFound(id)
			}
			return fmt.Errorf("find order: %w", err)
		}

		submitted := s.normalizeStatus(ctx, dto)
		resolved, err := s.resolveMember(ctx, tx, *submitted.MemberID)
		if err != nil {
			return err
		}

		replacement := ToEntity(submitted)
		existing.OrderDate = replacement.OrderDate
		existing.Status = replacement.Status
		existing.MemberID = resolved.ID
		existing.Member = resolved
		if replacement.TotalAmount != nil {
			existing.TotalAmount = replacement.TotalAmount
		}

		if err := s.orderRepository.Update(ctx, tx, existing); err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if len(submitted.ProductIDs) > 0 {
			existing.Products, err = s.resolveProducts(ctx, tx, submitted.ProductIDs)
			if err != nil {
				return err
			}
			changed, err = s.decrementStock(ctx, tx, existing.Products)
			if err != nil {
				return err
			}
			if err := s.orderRepository.ReplaceLines(ctx, tx, existing); err != nil {
				return fmt.Errorf("replace order lines: %w", err)
			}
		}

		order = existing
		return nil
	})
	s.observe(opUpdate, err)
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, event.OrderUpdated, order, changed)
	logger.FromContext(ctx).Info("order updated", "order_id", order.ID, "status", order.Status)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.orderRepository.Exists(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return errOrderNotFound(id)
		}

		if err := s.orderRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
	s.observe(opDelete, err)
	if err != nil {
		return err
	}

	s.publish(ctx, event.OrderDeleted, id, map[string]uint32{"id": id})
	logger.FromContext(ctx).Info("order deleted", "order_id", id)
	return nil
}

func (s *OrderService) Get(ctx context.Context, id uint32) (*model.Order, error) {
	order, err := s.orderRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errOrderNotFound(id)
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ListByMember(ctx context.Context, memberID uint32) ([]model.Order, error) {
	orders, err := s.orderRepository.FindByMemberID(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("list orders of member %d: %w", memberID, err)
	}
	return orders, nil
}

func validateSubmission(dto *OrderDTO) error {
	if dto == nil || dto.MemberID == nil {
		return ErrMemberIDRequired
	}
	if dto.OrderDate == nil || dto.OrderDate.IsZero() {
		return ErrOrderDateRequired
	}
	return nil
}

// normalizeStatus returns a copy of dto whose status is a known value.
// Unknown values fall back to the default instead of being rejected.
func (s *OrderService) normalizeStatus(ctx context.Context, dto *OrderDTO) *OrderDTO {
	submitted := *dto
	status := model.NormalizeOrderStatus(dto.Status)
	if strings.TrimSpace(dto.Status) != "" && status.String() != dto.Status {
		logger.FromContext(ctx).Warn("unknown order status replaced by default",
			"submitted", dto.Status,
			"status", status,
		)
	}
	submitted.Status = status.String()
	return &submitted
}

func (s *OrderService) resolveMember(ctx context.Context, tx *gorm.DB, id uint32) (*model.Member, error) {
	resolved, err := s.memberRepository.FindByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errMemberNotResolved(id)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return resolved, nil
}

// resolveProducts keeps the submitted order and duplicates; ids that do not
// resolve are dropped.
func (s *OrderService) resolveProducts(ctx context.Context, tx *gorm.DB, ids []uint32) ([]model.Product, error) {
	found, err := s.productRepository.FindByIDs(ctx, tx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := make([]model.Product, 0, len(ids))
	var dropped []uint32
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			dropped = append(dropped, id)
			continue
		}
		products = append(products, p)
	}

	if len(dropped) > 0 {
		logger.FromContext(ctx).Warn("unresolved product ids dropped from order", "product_ids", dropped)
		if s.metrics != nil {
			s.metrics.UnresolvedProducts(len(dropped))
		}
	}
	return products, nil
}

// decrementStock removes one unit from each distinct product that still has
// stock and returns the ids that changed. The in-memory copies are updated
// to match.
func (s *OrderService) decrementStock(ctx context.Context, tx *gorm.DB, products []model.Product) ([]uint32, error) {
	seen := make(map[uint32]struct{}, len(products))
	var changed []uint32
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		if p.Stock <= 0 {
			continue
		}

		updated, err := s.productRepository.DecrementStock(ctx, tx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("decrement stock of product %d: %w", p.ID, err)
		}
		if updated {
			changed = append(changed, p.ID)
		}
	}

	for _, id := range changed {
		for i := range products {
			if products[i].ID == id {
				products[i].Stock--
			}
		}
	}

	if len(changed) > 0 {
		logger.FromContext(ctx).Debug("product stock decremented", "product_ids", changed)
	}
	return changed, nil
}

func (s *OrderService) afterCommit(ctx context.Context, eventType string, order *model.Order, changed []uint32) {
	if s.stockCache != nil {
		s.stockCache.Invalidate(ctx, changed...)
	}
	if s.metrics != nil && len(changed) > 0 {
		s.metrics.StockDecremented(len(changed))
	}
	s.publish(ctx, eventType, order.ID, ToResponse(order))
}

// publish is best effort; the order is already committed.
func (s *OrderService) publish(ctx context.Context, eventType string, id uint32, payload any) {
	key := strconv.FormatUint(uint64(id), 10)
	if err := s.publisher.Publish(ctx, eventType, key, payload); err != nil {
		logger.FromContext(ctx).Error("order event not published",
			"event", eventType,
			"order_id", id,
			"error", err,
		)
	}
}

func (s *OrderService) observe(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.OrderOperation(operation, outcome(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, ErrMemberIDRequired),
		errors.Is(err, ErrOrderDateRequired),
		errors.Is(err, ErrMemberNotResolved):
		return "rejected"
	default:
		return "error"
	}
}
