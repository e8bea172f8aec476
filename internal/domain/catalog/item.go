package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Item represents a sellable item in the catalog
type Item struct {
	shared.BaseAggregateRoot
	Name          string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	SKU           string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stock         int              `gorm:"not null;default:0"`
	IsActive      bool             `gorm:"not null;default:true"`
	Views         int64            `gorm:"not null;default:0"`
	Rating        float64          `gorm:"not null;default:0"`
	ReviewsCount  int              `gorm:"not null;default:0"`
	ReleaseDate   *time.Time       `gorm:"type:date"`
	SupplierID    *uuid.UUID       `gorm:"type:uuid;index"`
	Categories    []Category       `gorm:"many2many:item_categories"`
	Tags          []Tag            `gorm:"many2many:item_tags"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new catalog item
func NewItem(name, sku string, price decimal.Decimal) (*Item, error) {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)

	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 255 characters")
	}
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Item SKU cannot be empty")
	}
	if len(sku) > 50 {
		return nil, shared.NewDomainError("INVALID_SKU", "Item SKU cannot exceed 50 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               strings.ToUpper(sku),
		Price:             price,
		IsActive:          true,
	}, nil
}

// EffectivePrice returns the sale price after discount.
// The result is not clamped; well-formed data keeps it non-negative.
func (i *Item) EffectivePrice() decimal.Decimal {
	price := valueobject.NewMoneyZAR(i.Price)
	if i.DiscountPrice == nil {
		return price.Amount()
	}
	return price.MustSub(valueobject.NewMoneyZAR(*i.DiscountPrice)).Amount()
}

// IsDiscounted returns true if the item has a discount set
func (i *Item) IsDiscounted() bool {
	return i.DiscountPrice != nil && !i.DiscountPrice.IsZero()
}

// SetPrice updates the base price
func (i *Item) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	i.Price = price
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetDiscount sets the discount amount subtracted from the base price
func (i *Item) SetDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	i.DiscountPrice = &discount
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// ClearDiscount removes any discount
func (i *Item) ClearDiscount() {
	i.DiscountPrice = nil
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// SetStock replaces the stock level
func (i *Item) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	i.Stock = stock
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// AdjustStock applies a delta to the stock level, keeping it non-negative
func (i *Item) AdjustStock(delta int) error {
	if i.Stock+delta < 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Stock cannot go negative")
	}

	i.Stock += delta
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetDescription updates the item description
func (i *Item) SetDescription(description string) {
	i.Description = description
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// SetReleaseDate sets the release date
func (i *Item) SetReleaseDate(date time.Time) {
	i.ReleaseDate = &date
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// AssignSupplier links the item to a supplier
func (i *Item) AssignSupplier(supplierID uuid.UUID) {
	i.SupplierID = &supplierID
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// AddReview folds a new review rating into the running average
func (i *Item) AddReview(rating float64) error {
	if rating < 0 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}

	total := i.Rating*float64(i.ReviewsCount) + rating
	i.ReviewsCount++
	i.Rating = total / float64(i.ReviewsCount)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Activate makes the item visible in the storefront
func (i *Item) Activate() {
	i.IsActive = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// Deactivate hides the item from the storefront
func (i *Item) Deactivate() {
	i.IsActive = false
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
