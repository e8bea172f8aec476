package account

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the persistence interface for accounts
type AccountRepository interface {
	// FindByID retrieves an account by its id
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByEmail retrieves an account by its email, case-insensitively
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// ExistsByEmail checks if an account exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists an account (create or update)
	Save(ctx context.Context, account *Account) error

	// Delete removes an account
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository defines the persistence interface for saved addresses
type AddressRepository interface {
	// FindByAccount retrieves all saved addresses for an account
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]DeliveryAddress, error)

	// FindByAccountAndType retrieves the address of a given type, if any
	FindByAccountAndType(ctx context.Context, accountID uuid.UUID, addressType string) (*DeliveryAddress, error)

	// Save persists a saved address (create or update)
	Save(ctx context.Context, address *DeliveryAddress) error

	// Delete removes a saved address
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAccountAndType removes the address of a given type for an account
	DeleteByAccountAndType(ctx context.Context, accountID uuid.UUID, addressType string) error
}
