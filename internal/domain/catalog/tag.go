package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Tag is a free-form label attached to items
type Tag struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Tag) TableName() string {
	return "tags"
}

// NewTag creates a new tag
func NewTag(name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tag name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Tag name cannot exceed 100 characters")
	}

	return &Tag{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Rename updates the tag name
func (t *Tag) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tag name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Tag name cannot exceed 100 characters")
	}

	t.Name = name
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// TagRepository defines the persistence interface for tags
type TagRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	FindByName(ctx context.Context, name string) (*Tag, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Tag, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tag, error)
	Save(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}
