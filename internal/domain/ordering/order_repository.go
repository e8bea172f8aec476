package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderRepository defines the persistence interface for orders.
// Create and Save must write the order and its details atomically;
// a failure leaves neither the order row nor any detail row behind.
type OrderRepository interface {
	// FindByID retrieves an order with its details
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUser retrieves a page of a user's orders, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[Order], error)

	// Create persists a new order together with all its details
	Create(ctx context.Context, order *Order) error

	// Save persists order changes, reconciling the detail rows with the
	// aggregate state (removed details are deleted, the rest upserted)
	Save(ctx context.Context, order *Order) error

	// Delete removes an order and its details
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser returns the number of orders a user has placed
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
