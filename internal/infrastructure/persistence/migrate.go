package persistence

import (
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// Models returns every persisted model, in dependency order
func Models() []interface{} {
	return []interface{}{
		&catalog.Category{},
		&catalog.Supplier{},
		&catalog.Tag{},
		&catalog.Item{},
		&ordering.Order{},
		&ordering.OrderDetail{},
		&account.Account{},
		&account.DeliveryAddress{},
	}
}

// AutoMigrate creates or updates the schema for all models.
// Production deployments run versioned SQL migrations instead; this is
// used for development and tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
