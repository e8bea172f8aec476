package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeliveryAddress() valueobject.Address {
	return valueobject.MustNewAddress("12 Long Street", "Cape Town", "Western Cape",
		valueobject.WithPostalCode("8001"))
}

func seedOrder(t *testing.T, repo *GormOrderRepository, userID uuid.UUID) *ordering.Order {
	t.Helper()

	order, err := ordering.NewOrder(userID, testDeliveryAddress())
	require.NoError(t, err)
	_, err = order.AddDetail(uuid.New(), "Coffee Beans", 2, decimal.NewFromInt(240))
	require.NoError(t, err)
	_, err = order.AddDetail(uuid.New(), "French Press", 1, decimal.NewFromFloat(349.99))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestGormOrderRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	order := seedOrder(t, repo, userID)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, ordering.PaymentStatusPending, found.PaymentStatus)
	require.Len(t, found.Details, 2)
	assert.True(t, found.Total.Equal(decimal.NewFromFloat(589.99)),
		"total %s", found.Total)

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormOrderRepository_SaveReconcilesDetails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, repo, uuid.New())

	removed := order.Details[0].ID
	require.NoError(t, order.RemoveDetail(removed))
	require.NoError(t, order.SetPaymentStatus(ordering.PaymentStatusPaid))
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, ordering.PaymentStatusPaid, found.PaymentStatus)
	require.Len(t, found.Details, 1)
	assert.NotEqual(t, removed, found.Details[0].ID)
	assert.True(t, found.Total.Equal(decimal.NewFromFloat(349.99)))

	var orphans int64
	require.NoError(t, db.Table("order_details").Where("id = ?", removed).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestGormOrderRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	buyer := uuid.New()
	other := uuid.New()
	for i := 0; i < 3; i++ {
		seedOrder(t, repo, buyer)
	}
	seedOrder(t, repo, other)

	filter := shared.DefaultFilter()
	filter.PageSize = 2

	page, err := repo.FindByUser(ctx, buyer, filter)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	for _, order := range page.Items {
		assert.Equal(t, buyer, order.UserID)
		assert.NotEmpty(t, order.Details)
	}
}

func TestGormOrderRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, repo, uuid.New())

	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.FindByID(ctx, order.ID)
	assert.Equal(t, shared.ErrNotFound, err)

	var details int64
	require.NoError(t, db.Table("order_details").Where("order_id = ?", order.ID).Count(&details).Error)
	assert.Zero(t, details)
}

func TestGormOrderRepository_CountByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	buyer := uuid.New()
	seedOrder(t, repo, buyer)
	seedOrder(t, repo, buyer)

	count, err := repo.CountByUser(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
}
