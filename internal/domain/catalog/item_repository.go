package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ItemRepository defines the persistence interface for catalog items
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByIDs finds items by a set of IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Item, error)

	// FindByName finds an item by exact name, case-insensitive
	FindByName(ctx context.Context, name string) (*Item, error)

	// FindBySKU finds an item by its SKU
	FindBySKU(ctx context.Context, sku string) (*Item, error)

	// FindAll returns all items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)

	// FindByCategoryIDs returns the deduplicated union of items linked to
	// any of the given categories
	FindByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]Item, error)

	// SearchByName returns items whose name contains the substring,
	// case-insensitive
	SearchByName(ctx context.Context, substring string, filter shared.Filter) ([]Item, error)

	// ListNewest returns the most recently added items
	ListNewest(ctx context.Context, limit int) ([]Item, error)

	// ListDiscounted returns items carrying a discount
	ListDiscounted(ctx context.Context, limit int) ([]Item, error)

	// ListBestSelling returns items ordered by summed historical order
	// quantity, descending
	ListBestSelling(ctx context.Context, limit int) ([]Item, error)

	// ListTopRated returns items ordered by rating, then review count
	ListTopRated(ctx context.Context, limit int) ([]Item, error)

	// ListRandom returns a random selection of items
	ListRandom(ctx context.Context, limit int) ([]Item, error)

	// IncrementViews atomically bumps the view counter
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// Save persists an item and its category/tag links
	Save(ctx context.Context, item *Item) error

	// Delete removes an item
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
