package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByIDs finds items by a set of IDs
func (r *GormItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Item, error) {
	if len(ids) == 0 {
		return []catalog.Item{}, nil
	}
	var items []catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByName finds an item by exact name, case-insensitive
func (r *GormItemRepository) FindByName(ctx context.Context, name string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Where("LOWER(name) = LOWER(?)", name).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindBySKU finds an item by its SKU
func (r *GormItemRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Where("sku = ?", sku).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns all items matching the filter
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Item, error) {
	var items []catalog.Item
	query := r.db.WithContext(ctx).Model(&catalog.Item{}).
		Preload("Categories").
		Preload("Tags")
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := applyFilter(query, filter).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCategoryIDs returns the deduplicated union of active items linked
// to any of the given categories
func (r *GormItemRepository) FindByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]catalog.Item, error) {
	if len(categoryIDs) == 0 {
		return []catalog.Item{}, nil
	}
	var items []catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Joins("JOIN item_categories ON item_categories.item_id = items.id").
		Where("item_categories.category_id IN ?", categoryIDs).
		Where("items.is_active = ?", true).
		Distinct("items.*").
		Order("items.name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchByName returns active items whose name contains the substring,
// case-insensitive
func (r *GormItemRepository) SearchByName(ctx context.Context, substring string, filter shared.Filter) ([]catalog.Item, error) {
	var items []catalog.Item
	query := r.db.WithContext(ctx).Model(&catalog.Item{}).
		Preload("Categories").
		Preload("Tags").
		Where("LOWER(name) LIKE LOWER(?)", "%"+substring+"%").
		Where("is_active = ?", true)
	if err := applyFilter(query, filter).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListNewest returns the most recently added active items
func (r *GormItemRepository) ListNewest(ctx context.Context, limit int) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.activeItems(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListDiscounted returns active items carrying a discount
func (r *GormItemRepository) ListDiscounted(ctx context.Context, limit int) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.activeItems(ctx).
		Where("discount_price IS NOT NULL AND discount_price > 0").
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListBestSelling returns active items ordered by summed historical order
// quantity, descending
func (r *GormItemRepository) ListBestSelling(ctx context.Context, limit int) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.activeItems(ctx).
		Joins("JOIN order_details ON order_details.item_id = items.id").
		Group("items.id").
		Order("SUM(order_details.quantity) DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListTopRated returns active items ordered by rating, then review count
func (r *GormItemRepository) ListTopRated(ctx context.Context, limit int) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.activeItems(ctx).
		Where("reviews_count > 0").
		Order("rating DESC, reviews_count DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListRandom returns a random selection of active items
func (r *GormItemRepository) ListRandom(ctx context.Context, limit int) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.activeItems(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// IncrementViews atomically bumps the view counter
func (r *GormItemRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Save persists an item together with its category and tag links
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Tags").Save(item).Error; err != nil {
			return err
		}
		if err := tx.Model(item).Association("Categories").Replace(item.Categories); err != nil {
			return err
		}
		return tx.Model(item).Association("Tags").Replace(item.Tags)
	})
}

// Delete removes an item and its category/tag links
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := catalog.Item{BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: shared.BaseEntity{ID: id}}}
		if err := tx.Model(&item).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&catalog.Item{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts items matching the filter
func (r *GormItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Item{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormItemRepository) activeItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Preload("Categories").
		Preload("Tags").
		Where("items.is_active = ?", true)
}
