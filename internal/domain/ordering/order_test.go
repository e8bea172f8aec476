package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func testAddress(t *testing.T) valueobject.Address {
	t.Helper()
	addr, err := valueobject.NewAddress("12 Long Street", "Cape Town", "Western Cape",
		valueobject.WithPostalCode("8001"))
	require.NoError(t, err)
	return addr
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order with defaults", func(t *testing.T) {
		userID := uuid.New()
		order, err := NewOrder(userID, testAddress(t))
		require.NoError(t, err)

		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, FulfillmentStatusProcessing, order.FulfillmentStatus)
		assert.True(t, order.Total.IsZero())
		assert.True(t, order.IsEmpty())
		assert.Equal(t, "12 Long Street, Cape Town, Western Cape, 8001, South Africa", order.DeliveryAddress)
	})

	t.Run("fails without user", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil, testAddress(t))
		assert.Error(t, err)
	})

	t.Run("fails with empty address", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), valueobject.EmptyAddress())
		assert.Error(t, err)
	})
}

func TestOrder_AddDetail(t *testing.T) {
	order, err := NewOrder(uuid.New(), testAddress(t))
	require.NoError(t, err)

	t.Run("adds line and recomputes total", func(t *testing.T) {
		_, err := order.AddDetail(uuid.New(), "Coffee Beans 1kg", 2, decimal.NewFromInt(15))
		require.NoError(t, err)
		_, err = order.AddDetail(uuid.New(), "French Press", 1, decimal.NewFromInt(10))
		require.NoError(t, err)

		assert.Len(t, order.Details, 2)
		assert.Equal(t, 3, order.ItemCount())
		assert.True(t, order.Total.Equal(decimal.NewFromInt(25)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.AddDetail(uuid.New(), "Mug", 0, decimal.NewFromInt(5))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.AddDetail(uuid.New(), "Mug", 1, decimal.NewFromInt(-5))
		assert.Error(t, err)
	})

	t.Run("rejects nil item", func(t *testing.T) {
		_, err := order.AddDetail(uuid.Nil, "Mug", 1, decimal.NewFromInt(5))
		assert.Error(t, err)
	})
}

func TestOrder_TotalStaysConsistent(t *testing.T) {
	order, err := NewOrder(uuid.New(), testAddress(t))
	require.NoError(t, err)

	d1, err := order.AddDetail(uuid.New(), "Item A", 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	d2, err := order.AddDetail(uuid.New(), "Item B", 2, decimal.NewFromInt(40))
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.NewFromInt(140)))

	require.NoError(t, order.UpdateDetailPrice(d1.ID, decimal.NewFromInt(80)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(120)))

	require.NoError(t, order.UpdateDetailQuantity(d2.ID, 4))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(160)))
	assert.Equal(t, 4, order.FindDetail(d2.ID).Quantity)

	require.NoError(t, order.RemoveDetail(d1.ID))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(80)))

	require.NoError(t, order.RemoveDetail(d2.ID))
	assert.True(t, order.Total.IsZero())
	assert.True(t, order.IsEmpty())
}

func TestOrder_FrozenLinePrice(t *testing.T) {
	order, err := NewOrder(uuid.New(), testAddress(t))
	require.NoError(t, err)

	// line price snapshotted at order time
	catalogPrice := decimal.NewFromFloat(19.99)
	d, err := order.AddDetail(uuid.New(), "Item", 3, catalogPrice.Mul(decimal.NewFromInt(3)))
	require.NoError(t, err)

	assert.True(t, d.Price.Equal(decimal.NewFromFloat(59.97)))
	assert.True(t, order.Total.Equal(decimal.NewFromFloat(59.97)))
}

func TestOrder_DetailNotFound(t *testing.T) {
	order, err := NewOrder(uuid.New(), testAddress(t))
	require.NoError(t, err)

	assert.Error(t, order.UpdateDetailPrice(uuid.New(), decimal.NewFromInt(1)))
	assert.Error(t, order.UpdateDetailQuantity(uuid.New(), 1))
	assert.Error(t, order.RemoveDetail(uuid.New()))
	assert.Nil(t, order.FindDetail(uuid.New()))
}

func TestOrder_Statuses(t *testing.T) {
	order, err := NewOrder(uuid.New(), testAddress(t))
	require.NoError(t, err)

	require.NoError(t, order.SetPaymentStatus(PaymentStatusPaid))
	assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)

	require.NoError(t, order.SetFulfillmentStatus(FulfillmentStatusShipped))
	assert.Equal(t, FulfillmentStatusShipped, order.FulfillmentStatus)

	assert.Error(t, order.SetPaymentStatus("  "))
	assert.Error(t, order.SetFulfillmentStatus(""))
}
