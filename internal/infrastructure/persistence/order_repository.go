package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, with its details loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByUser returns a page of the user's orders, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var orders []ordering.Order
	query := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Preload("Details").
		Where("user_id = ?", userID)
	if err := applyFilter(query, filter).Find(&orders).Error; err != nil {
		return nil, err
	}

	page := shared.NewPaginated(orders, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Create inserts an order together with its details in one transaction
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Details").Create(order).Error; err != nil {
			return err
		}
		for i := range order.Details {
			order.Details[i].OrderID = order.ID
			if err := tx.Create(&order.Details[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Save updates an order and reconciles its details: removed details are
// deleted, remaining ones are upserted
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Details").Save(order).Error; err != nil {
			return err
		}

		currentDetailIDs := make([]uuid.UUID, len(order.Details))
		for i, detail := range order.Details {
			currentDetailIDs[i] = detail.ID
		}

		if len(currentDetailIDs) > 0 {
			if err := tx.Where("order_id = ? AND id NOT IN ?", order.ID, currentDetailIDs).
				Delete(&ordering.OrderDetail{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&ordering.OrderDetail{}).Error; err != nil {
				return err
			}
		}

		for i := range order.Details {
			order.Details[i].OrderID = order.ID
			if err := tx.Save(&order.Details[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes an order and its details
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).
			Delete(&ordering.OrderDetail{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&ordering.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountByUser counts the orders placed by a user
func (r *GormOrderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
