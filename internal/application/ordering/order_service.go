package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// OrderService handles order placement and the order ledger
type OrderService struct {
	orderRepo ordering.OrderRepository
	itemRepo  catalog.ItemRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, itemRepo catalog.ItemRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
	}
}

// Create places a new order. The delivery address and every cart item are
// validated before anything is written; the order and all of its details
// are then persisted in a single transaction, so a failure anywhere
// leaves no partial order behind.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if req.DeliveryAddress.IsEmpty() {
		return nil, shared.NewDomainError("VALIDATION", "Delivery address cannot be empty")
	}
	if len(req.CartItems) == 0 {
		return nil, shared.NewDomainError("VALIDATION", "Cart cannot be empty")
	}

	order, err := ordering.NewOrder(userID, req.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	for _, cartItem := range req.CartItems {
		item, err := s.itemRepo.FindByID(ctx, cartItem.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Cart item not found: "+cartItem.ID.String())
			}
			return nil, err
		}

		linePrice := frozenLinePrice(item, cartItem.Quantity, cartItem.Price)
		if _, err := order.AddDetail(item.ID, item.Name, cartItem.Quantity, linePrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", order.Total.String()),
		zap.Int("lines", len(order.Details)))

	return &CreateOrderResponse{OrderID: order.ID}, nil
}

// GetByID retrieves an order for its owner. Another user's order is
// indistinguishable from a missing one.
func (s *OrderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// findOwnedOrder loads an order and enforces ownership. Orders belonging
// to other users are reported as not found.
func (s *OrderService) findOwnedOrder(ctx context.Context, userID, orderID uuid.UUID) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, shared.ErrNotFound
	}
	return order, nil
}

// ListByUser retrieves a page of the user's orders, newest first
func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID, filter OrderListFilter) ([]OrderListResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	page, err := s.orderRepo.FindByUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderListResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToOrderListResponse(&page.Items[i])
	}

	return responses, page.Total, nil
}

// UpdateStatus records payment/fulfillment state changes on the
// caller's own order
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if req.PaymentStatus != nil {
		if err := order.SetPaymentStatus(*req.PaymentStatus); err != nil {
			return nil, err
		}
	}
	if req.FulfillmentStatus != nil {
		if err := order.SetFulfillmentStatus(*req.FulfillmentStatus); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// AddDetail appends a line item to an existing order, re-deriving the total
func (s *OrderService) AddDetail(ctx context.Context, userID, orderID uuid.UUID, req AddOrderDetailRequest) (*OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	linePrice := frozenLinePrice(item, req.Quantity, req.Price)
	if _, err := order.AddDetail(item.ID, item.Name, req.Quantity, linePrice); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// UpdateDetail adjusts a line item's quantity and/or price
func (s *OrderService) UpdateDetail(ctx context.Context, userID, orderID, detailID uuid.UUID, req UpdateOrderDetailRequest) (*OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := order.UpdateDetailQuantity(detailID, *req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := order.UpdateDetailPrice(detailID, *req.Price); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// RemoveDetail drops a line item from an order, re-deriving the total
func (s *OrderService) RemoveDetail(ctx context.Context, userID, orderID, detailID uuid.UUID) (*OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemoveDetail(detailID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// frozenLinePrice resolves the line total: an explicit price is taken as
// given, otherwise the current catalog price times quantity is frozen.
func frozenLinePrice(item *catalog.Item, quantity int, explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	return valueobject.NewMoneyZAR(item.Price).MulInt(int64(quantity)).Round(2).Amount()
}
