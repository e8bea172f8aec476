package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Address types. An account keeps at most one address per type.
const (
	AddressTypePrimary   = "primary"
	AddressTypeSecondary = "secondary"
)

// IsValidAddressType checks a stored address type label
func IsValidAddressType(addressType string) bool {
	return addressType == AddressTypePrimary || addressType == AddressTypeSecondary
}

// DeliveryAddress is a saved address belonging to an account. The address
// components are flattened into columns and reconstituted through Location.
type DeliveryAddress struct {
	shared.BaseEntity
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index:idx_account_address_type,unique"`
	Type       string    `gorm:"type:varchar(20);not null;index:idx_account_address_type,unique"`
	Street     string    `gorm:"type:varchar(500);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	Province   string    `gorm:"type:varchar(50);not null"`
	PostalCode string    `gorm:"type:varchar(10)"`
	Country    string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (DeliveryAddress) TableName() string {
	return "delivery_addresses"
}

// NewDeliveryAddress creates a saved address of the given type for an account
func NewDeliveryAddress(accountID uuid.UUID, addressType string, location valueobject.Address) (*DeliveryAddress, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Address requires an account")
	}

	addressType = strings.ToLower(strings.TrimSpace(addressType))
	if !IsValidAddressType(addressType) {
		return nil, shared.NewDomainError("INVALID_ADDRESS_TYPE", "Address type must be primary or secondary")
	}
	if location.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}

	return &DeliveryAddress{
		BaseEntity: shared.NewBaseEntity(),
		AccountID:  accountID,
		Type:       addressType,
		Street:     location.Street(),
		City:       location.City(),
		Province:   location.Province(),
		PostalCode: location.PostalCode(),
		Country:    location.Country(),
	}, nil
}

// Location reconstitutes the address value object from the stored columns
func (d *DeliveryAddress) Location() (valueobject.Address, error) {
	opts := []valueobject.AddressOption{valueobject.WithPostalCode(d.PostalCode)}
	if d.Country != "" {
		opts = append(opts, valueobject.WithCountry(d.Country))
	}
	return valueobject.NewAddress(d.Street, d.City, d.Province, opts...)
}

// Relocate replaces the stored address components
func (d *DeliveryAddress) Relocate(location valueobject.Address) error {
	if location.IsEmpty() {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}

	d.Street = location.Street()
	d.City = location.City()
	d.Province = location.Province()
	d.PostalCode = location.PostalCode()
	d.Country = location.Country()
	d.UpdatedAt = time.Now()

	return nil
}

// FullAddress returns the joined address string
func (d *DeliveryAddress) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{d.Street, d.City, d.Province, d.PostalCode, d.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
