package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// MaxCategoryDepth is the maximum depth of the category hierarchy
const MaxCategoryDepth = 5

// DisplayNameSeparator joins the ancestor chain in a category display name,
// root to leaf (e.g. "Electronics > Laptops")
const DisplayNameSeparator = " > "

// Category represents a product category in the catalog.
// Categories form a tree through parent references; the materialized Path
// column ("rootID/.../selfID") makes subtree queries cheap and keeps the
// hierarchy acyclic: a node can never be moved under its own descendant.
type Category struct {
	shared.BaseAggregateRoot
	Name     string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Path     string     `gorm:"type:varchar(500);not null;index"`
	Level    int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new root category
func NewCategory(name string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Level:             0,
	}
	// Root category path is just the ID
	category.Path = category.ID.String()

	return category, nil
}

// NewChildCategory creates a new category under a parent
func NewChildCategory(name string, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}
	if parent.Level >= MaxCategoryDepth-1 {
		return nil, shared.NewDomainError("MAX_DEPTH_EXCEEDED", fmt.Sprintf("Category depth cannot exceed %d levels", MaxCategoryDepth))
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		ParentID:          &parent.ID,
		Level:             parent.Level + 1,
	}
	category.Path = parent.Path + "/" + category.ID.String()

	return category, nil
}

// Rename updates the category name
func (c *Category) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MoveTo re-parents the category. A nil parent makes it a root category.
// Moving a category under itself or any of its descendants is rejected so
// the parent relation stays acyclic. The caller is responsible for rebasing
// descendant paths afterwards (see RebasePath).
func (c *Category) MoveTo(parent *Category) error {
	if parent == nil {
		c.ParentID = nil
		c.Path = c.ID.String()
		c.Level = 0
		c.UpdatedAt = time.Now()
		c.IncrementVersion()
		return nil
	}

	if parent.ID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}
	if parent.IsDescendantOf(c) {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be moved under one of its descendants")
	}
	if parent.Level >= MaxCategoryDepth-1 {
		return shared.NewDomainError("MAX_DEPTH_EXCEEDED", fmt.Sprintf("Category depth cannot exceed %d levels", MaxCategoryDepth))
	}

	c.ParentID = &parent.ID
	c.Path = parent.Path + "/" + c.ID.String()
	c.Level = parent.Level + 1
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// PromoteToRoot clears the parent reference, keeping the node and its
// subtree intact. Used when the parent category is deleted.
func (c *Category) PromoteToRoot() {
	c.ParentID = nil
	c.Path = c.ID.String()
	c.Level = 0
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// RebasePath rewrites this category's path after an ancestor moved.
// oldPrefix must be a prefix of the current path.
func (c *Category) RebasePath(oldPrefix, newPrefix string, levelDelta int) {
	if !strings.HasPrefix(c.Path, oldPrefix) {
		return
	}
	c.Path = newPrefix + strings.TrimPrefix(c.Path, oldPrefix)
	c.Level += levelDelta
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsRoot returns true if this is a root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// AncestorIDs returns the IDs of all ancestor categories, root first
func (c *Category) AncestorIDs() []uuid.UUID {
	if c.Path == "" {
		return nil
	}

	parts := strings.Split(c.Path, "/")
	if len(parts) <= 1 {
		return nil
	}

	ancestors := make([]uuid.UUID, 0, len(parts)-1)
	for i := 0; i < len(parts)-1; i++ {
		if id, err := uuid.Parse(parts[i]); err == nil {
			ancestors = append(ancestors, id)
		}
	}

	return ancestors
}

// IsAncestorOf returns true if this category is an ancestor of the given category
func (c *Category) IsAncestorOf(other *Category) bool {
	if other == nil || other.Path == "" {
		return false
	}
	return strings.HasPrefix(other.Path, c.Path+"/")
}

// IsDescendantOf returns true if this category is a descendant of the given category
func (c *Category) IsDescendantOf(other *Category) bool {
	if other == nil {
		return false
	}
	return other.IsAncestorOf(c)
}

// validateCategoryName validates the category name
func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 255 characters")
	}
	return nil
}
