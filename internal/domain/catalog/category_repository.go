package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryRepository defines the persistence interface for categories
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByName finds a category by exact name, case-insensitive
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll returns all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// FindChildren returns the direct children of a category
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)

	// FindRoots returns all root categories
	FindRoots(ctx context.Context) ([]Category, error)

	// FindSubtree returns the category plus every descendant, using the
	// materialized path prefix
	FindSubtree(ctx context.Context, path string) ([]Category, error)

	// ExistsByName reports whether a category with the given name exists,
	// case-insensitive
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save persists a category (insert or update)
	Save(ctx context.Context, category *Category) error

	// SaveAll persists a batch of categories in one transaction
	SaveAll(ctx context.Context, categories []*Category) error

	// Delete removes a category. Implementations must null the parent
	// reference of direct children rather than cascading the delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
