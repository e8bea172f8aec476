package ordering

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Order status defaults. Both fields are free-form strings so payment and
// fulfillment integrations can record their own vocabulary.
const (
	PaymentStatusPending        = "Pending"
	PaymentStatusPaid           = "Paid"
	FulfillmentStatusProcessing = "Processing"
	FulfillmentStatusShipped    = "Shipped"
	FulfillmentStatusDelivered  = "Delivered"
)

// Order is the order aggregate root. The Total field is derived state:
// it always equals the sum of the detail line prices and is recomputed
// after every mutation of the Details slice.
type Order struct {
	shared.BaseAggregateRoot
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PaymentStatus     string          `gorm:"type:varchar(50);not null"`
	FulfillmentStatus string          `gorm:"type:varchar(50);not null"`
	DeliveryAddress   string          `gorm:"type:varchar(500);not null"`
	Details           []OrderDetail   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderDetail is a line item belonging to an order. Price is the line
// total, frozen at order time; later catalog price changes never touch it.
type OrderDetail struct {
	shared.BaseEntity
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName string          `gorm:"type:varchar(255);not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (OrderDetail) TableName() string {
	return "order_details"
}

// NewOrder creates a new empty order for a user with a delivery address.
// An address that joins to the empty string is rejected so no order row
// is ever written without a destination.
func NewOrder(userID uuid.UUID, address valueobject.Address) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Order requires a user")
	}
	if address.IsEmpty() || strings.TrimSpace(address.FullAddress()) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Total:             decimal.Zero,
		PaymentStatus:     PaymentStatusPending,
		FulfillmentStatus: FulfillmentStatusProcessing,
		DeliveryAddress:   address.FullAddress(),
	}, nil
}

// AddDetail appends a line item to the order. The price is the frozen
// line total for the given quantity, computed by the caller from the
// catalog price at order time.
func (o *Order) AddDetail(itemID uuid.UUID, itemName string, quantity int, price decimal.Decimal) (*OrderDetail, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Order detail requires an item")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Line price cannot be negative")
	}

	detail := OrderDetail{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		ItemID:     itemID,
		ItemName:   itemName,
		Quantity:   quantity,
		Price:      price,
	}
	o.Details = append(o.Details, detail)
	o.recalculateTotal()

	return &o.Details[len(o.Details)-1], nil
}

// UpdateDetailPrice replaces the frozen line price of an existing detail
func (o *Order) UpdateDetailPrice(detailID uuid.UUID, price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Line price cannot be negative")
	}

	for i := range o.Details {
		if o.Details[i].ID == detailID {
			o.Details[i].Price = price
			o.Details[i].UpdatedAt = time.Now()
			o.recalculateTotal()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Order detail not found")
}

// UpdateDetailQuantity changes the quantity of a line item. The frozen
// line price is scaled proportionally from the implied unit price.
func (o *Order) UpdateDetailQuantity(detailID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	for i := range o.Details {
		if o.Details[i].ID == detailID {
			d := &o.Details[i]
			unit := valueobject.NewMoneyZAR(d.Price.Div(decimal.NewFromInt(int64(d.Quantity))))
			d.Quantity = quantity
			d.Price = unit.MulInt(int64(quantity)).Round(2).Amount()
			d.UpdatedAt = time.Now()
			o.recalculateTotal()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Order detail not found")
}

// RemoveDetail drops a line item from the order
func (o *Order) RemoveDetail(detailID uuid.UUID) error {
	for i := range o.Details {
		if o.Details[i].ID == detailID {
			o.Details = append(o.Details[:i], o.Details[i+1:]...)
			o.recalculateTotal()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Order detail not found")
}

// FindDetail returns the line item with the given id, or nil
func (o *Order) FindDetail(detailID uuid.UUID) *OrderDetail {
	for i := range o.Details {
		if o.Details[i].ID == detailID {
			return &o.Details[i]
		}
	}
	return nil
}

// SetPaymentStatus records the latest payment state
func (o *Order) SetPaymentStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Payment status cannot be empty")
	}

	o.PaymentStatus = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// SetFulfillmentStatus records the latest fulfillment state
func (o *Order) SetFulfillmentStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Fulfillment status cannot be empty")
	}

	o.FulfillmentStatus = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// IsEmpty returns true if the order has no line items
func (o *Order) IsEmpty() bool {
	return len(o.Details) == 0
}

// ItemCount returns the total quantity across all line items
func (o *Order) ItemCount() int {
	count := 0
	for i := range o.Details {
		count += o.Details[i].Quantity
	}
	return count
}

// recalculateTotal re-derives the order total from the line prices.
// Every method that mutates Details must call this before returning.
func (o *Order) recalculateTotal() {
	total := valueobject.ZeroZAR()
	for i := range o.Details {
		total = total.MustAdd(valueobject.NewMoneyZAR(o.Details[i].Price))
	}
	o.Total = total.Round(2).Amount()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
