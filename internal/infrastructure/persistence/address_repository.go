package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByAccount returns all saved addresses for an account
func (r *GormAddressRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]account.DeliveryAddress, error) {
	var addresses []account.DeliveryAddress
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("type ASC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// FindByAccountAndType finds the address of a given type for an account
func (r *GormAddressRepository) FindByAccountAndType(ctx context.Context, accountID uuid.UUID, addressType string) (*account.DeliveryAddress, error) {
	var address account.DeliveryAddress
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND type = ?", accountID, addressType).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// Save creates or updates a saved address
func (r *GormAddressRepository) Save(ctx context.Context, address *account.DeliveryAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

// Delete removes a saved address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&account.DeliveryAddress{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByAccountAndType removes the address of a given type for an account
func (r *GormAddressRepository) DeleteByAccountAndType(ctx context.Context, accountID uuid.UUID, addressType string) error {
	result := r.db.WithContext(ctx).
		Delete(&account.DeliveryAddress{}, "account_id = ? AND type = ?", accountID, addressType)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
