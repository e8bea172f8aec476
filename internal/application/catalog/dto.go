package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=255"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// RenameCategoryRequest represents a request to rename a category
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// MoveCategoryRequest represents a request to re-parent a category.
// A nil parent moves the category to the root level.
type MoveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Level       int        `json:"level"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// CategoryTreeNode represents a category with its nested children
type CategoryTreeNode struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	ParentID *uuid.UUID         `json:"parent_id"`
	Level    int                `json:"level"`
	Children []CategoryTreeNode `json:"children"`
}

// CreateItemRequest represents a request to create a new item
type CreateItemRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=255"`
	SKU           string           `json:"sku" binding:"required,min=1,max=50"`
	Description   string           `json:"description" binding:"max=2000"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Stock         *int             `json:"stock"`
	ReleaseDate   *time.Time       `json:"release_date"`
	SupplierID    *uuid.UUID       `json:"supplier_id"`
	CategoryIDs   []uuid.UUID      `json:"category_ids"`
	TagIDs        []uuid.UUID      `json:"tag_ids"`
}

// UpdateItemRequest represents a request to update an item
type UpdateItemRequest struct {
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	ClearDiscount bool             `json:"clear_discount"`
	Stock         *int             `json:"stock"`
	ReleaseDate   *time.Time       `json:"release_date"`
	SupplierID    *uuid.UUID       `json:"supplier_id"`
	CategoryIDs   []uuid.UUID      `json:"category_ids"`
	TagIDs        []uuid.UUID      `json:"tag_ids"`
	IsActive      *bool            `json:"is_active"`
}

// ItemResponse represents a full item detail in API responses
type ItemResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	SKU            string            `json:"sku"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	DiscountPrice  *decimal.Decimal  `json:"discount_price,omitempty"`
	EffectivePrice decimal.Decimal   `json:"effective_price"`
	Stock          int               `json:"stock"`
	IsActive       bool              `json:"is_active"`
	Views          int64             `json:"views"`
	Rating         float64           `json:"rating"`
	ReviewsCount   int               `json:"reviews_count"`
	ReleaseDate    *time.Time        `json:"release_date,omitempty"`
	DateAdded      time.Time         `json:"date_added"`
	Categories     []string          `json:"categories"`
	Tags           []string          `json:"tags"`
	Supplier       *SupplierResponse `json:"supplier,omitempty"`
}

// ItemListResponse represents an item card in list responses
type ItemListResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Price          decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	Rating         float64          `json:"rating"`
	ReviewsCount   int              `json:"reviews_count"`
	Categories     []string         `json:"categories"`
}

// HomepageResponse groups the storefront landing page sections.
// Each section holds at most eight item cards.
type HomepageResponse struct {
	NewArrivals []ItemListResponse `json:"new_arrivals"`
	Specials    []ItemListResponse `json:"specials"`
	BestSellers []ItemListResponse `json:"best_sellers"`
	TopRated    []ItemListResponse `json:"top_rated"`
	Featured    []ItemListResponse `json:"featured"`
}

// CreateTagRequest represents a request to create a tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"max=50"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse.
// The display name is the ancestor chain and must be supplied by the caller.
func ToCategoryResponse(c *catalog.Category, displayName string) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		DisplayName: displayName,
		ParentID:    c.ParentID,
		Level:       c.Level,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// ToItemResponse converts a domain Item to ItemResponse
func ToItemResponse(item *catalog.Item) *ItemResponse {
	return &ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		SKU:            item.SKU,
		Description:    item.Description,
		Price:          item.Price,
		DiscountPrice:  item.DiscountPrice,
		EffectivePrice: item.EffectivePrice(),
		Stock:          item.Stock,
		IsActive:       item.IsActive,
		Views:          item.Views,
		Rating:         item.Rating,
		ReviewsCount:   item.ReviewsCount,
		ReleaseDate:    item.ReleaseDate,
		DateAdded:      item.CreatedAt,
		Categories:     categoryNames(item.Categories),
		Tags:           tagNames(item.Tags),
	}
}

// ToItemListResponse converts a domain Item to ItemListResponse
func ToItemListResponse(item *catalog.Item) ItemListResponse {
	return ItemListResponse{
		ID:             item.ID,
		Name:           item.Name,
		Price:          item.Price,
		DiscountPrice:  item.DiscountPrice,
		EffectivePrice: item.EffectivePrice(),
		Rating:         item.Rating,
		ReviewsCount:   item.ReviewsCount,
		Categories:     categoryNames(item.Categories),
	}
}

// ToItemListResponses converts a slice of domain Items to ItemListResponses
func ToItemListResponses(items []catalog.Item) []ItemListResponse {
	responses := make([]ItemListResponse, len(items))
	for i := range items {
		responses[i] = ToItemListResponse(&items[i])
	}
	return responses
}

// ToTagResponse converts a domain Tag to TagResponse
func ToTagResponse(tag *catalog.Tag) *TagResponse {
	return &TagResponse{ID: tag.ID, Name: tag.Name}
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *catalog.Supplier) *SupplierResponse {
	return &SupplierResponse{ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone}
}

func categoryNames(categories []catalog.Category) []string {
	names := make([]string, len(categories))
	for i := range categories {
		names[i] = categories[i].Name
	}
	return names
}

func tagNames(tags []catalog.Tag) []string {
	names := make([]string, len(tags))
	for i := range tags {
		names[i] = tags[i].Name
	}
	return names
}
