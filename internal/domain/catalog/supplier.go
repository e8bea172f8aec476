package catalog

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

var supplierEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Supplier represents a party that supplies catalog items
type Supplier struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email string `gorm:"type:varchar(255)"`
	Phone string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 255 characters")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// SetEmail sets the supplier contact email
func (s *Supplier) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !supplierEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid supplier email address")
	}

	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetPhone sets the supplier contact phone
func (s *Supplier) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	s.Phone = phone
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByName(ctx context.Context, name string) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
