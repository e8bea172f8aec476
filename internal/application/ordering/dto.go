package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CartItem is one line of an incoming order. Price, when present, is the
// explicit line total; otherwise the catalog price is frozen at creation.
type CartItem struct {
	ID       uuid.UUID        `json:"id" binding:"required"`
	Quantity int              `json:"quantity" binding:"required,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

// CreateOrderRequest represents a request to place an order
type CreateOrderRequest struct {
	CartItems       []CartItem          `json:"cart_items" binding:"required,min=1,dive"`
	DeliveryAddress valueobject.Address `json:"delivery_address"`
}

// CreateOrderResponse carries the identifier of a freshly placed order
type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

// UpdateOrderStatusRequest updates payment and/or fulfillment status
type UpdateOrderStatusRequest struct {
	PaymentStatus     *string `json:"payment_status" binding:"omitempty,min=1,max=50"`
	FulfillmentStatus *string `json:"fulfillment_status" binding:"omitempty,min=1,max=50"`
}

// AddOrderDetailRequest appends a line item to an existing order
type AddOrderDetailRequest struct {
	ItemID   uuid.UUID        `json:"item_id" binding:"required"`
	Quantity int              `json:"quantity" binding:"required,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

// UpdateOrderDetailRequest adjusts a line item on an existing order
type UpdateOrderDetailRequest struct {
	Quantity *int             `json:"quantity" binding:"omitempty,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

// OrderDetailResponse represents an order line in API responses
type OrderDetailResponse struct {
	ID       uuid.UUID       `json:"id"`
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                uuid.UUID             `json:"id"`
	UserID            uuid.UUID             `json:"user_id"`
	Total             decimal.Decimal       `json:"total"`
	PaymentStatus     string                `json:"payment_status"`
	FulfillmentStatus string                `json:"fulfillment_status"`
	DeliveryAddress   string                `json:"delivery_address"`
	Details           []OrderDetailResponse `json:"details"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
	Version           int                   `json:"version"`
}

// OrderListResponse represents an order summary in list responses
type OrderListResponse struct {
	ID                uuid.UUID       `json:"id"`
	Total             decimal.Decimal `json:"total"`
	PaymentStatus     string          `json:"payment_status"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	ItemCount         int             `json:"item_count"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderListFilter represents pagination options for order lists
type OrderListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) *OrderResponse {
	details := make([]OrderDetailResponse, len(o.Details))
	for i := range o.Details {
		d := &o.Details[i]
		details[i] = OrderDetailResponse{
			ID:       d.ID,
			ItemID:   d.ItemID,
			ItemName: d.ItemName,
			Quantity: d.Quantity,
			Price:    d.Price,
		}
	}

	return &OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Total:             o.Total,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		DeliveryAddress:   o.DeliveryAddress,
		Details:           details,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Version:           o.Version,
	}
}

// ToOrderListResponse converts a domain Order to OrderListResponse
func ToOrderListResponse(o *ordering.Order) OrderListResponse {
	return OrderListResponse{
		ID:                o.ID,
		Total:             o.Total,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		ItemCount:         o.ItemCount(),
		CreatedAt:         o.CreatedAt,
	}
}
