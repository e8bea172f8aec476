package account

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates account and hashes password", func(t *testing.T) {
		acc, err := NewAccount("Jane.Doe@Example.com", "s3cret-pass")
		require.NoError(t, err)

		assert.Equal(t, "jane.doe@example.com", acc.Email)
		assert.NotEqual(t, "s3cret-pass", acc.PasswordHash)
		assert.True(t, acc.IsActive)
		assert.True(t, acc.CheckPassword("s3cret-pass"))
		assert.False(t, acc.CheckPassword("wrong"))
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewAccount("not-an-email", "s3cret-pass")
		assert.Error(t, err)
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewAccount("jane@example.com", "short")
		assert.Error(t, err)
	})
}

func TestAccount_ChangePassword(t *testing.T) {
	acc, err := NewAccount("jane@example.com", "s3cret-pass")
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		assert.Error(t, acc.ChangePassword("wrong", "new-password"))
	})

	t.Run("rejects short new password", func(t *testing.T) {
		assert.Error(t, acc.ChangePassword("s3cret-pass", "short"))
	})

	t.Run("swaps hash on success", func(t *testing.T) {
		require.NoError(t, acc.ChangePassword("s3cret-pass", "new-password"))
		assert.True(t, acc.CheckPassword("new-password"))
		assert.False(t, acc.CheckPassword("s3cret-pass"))
	})
}

func TestNewDeliveryAddress(t *testing.T) {
	location, err := valueobject.NewAddress("5 Main Road", "Durban", "KwaZulu-Natal",
		valueobject.WithPostalCode("4001"))
	require.NoError(t, err)

	t.Run("creates primary address", func(t *testing.T) {
		addr, err := NewDeliveryAddress(uuid.New(), "Primary", location)
		require.NoError(t, err)

		assert.Equal(t, AddressTypePrimary, addr.Type)
		assert.Equal(t, "KwaZulu-Natal", addr.Province)
		assert.Equal(t, "South Africa", addr.Country)
		assert.Equal(t, "5 Main Road, Durban, KwaZulu-Natal, 4001, South Africa", addr.FullAddress())
	})

	t.Run("round trips through the value object", func(t *testing.T) {
		addr, err := NewDeliveryAddress(uuid.New(), AddressTypeSecondary, location)
		require.NoError(t, err)

		got, err := addr.Location()
		require.NoError(t, err)
		assert.True(t, got.Equals(location))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewDeliveryAddress(uuid.New(), "office", location)
		assert.Error(t, err)
	})

	t.Run("rejects empty address", func(t *testing.T) {
		_, err := NewDeliveryAddress(uuid.New(), AddressTypePrimary, valueobject.EmptyAddress())
		assert.Error(t, err)
	})

	t.Run("rejects missing account", func(t *testing.T) {
		_, err := NewDeliveryAddress(uuid.Nil, AddressTypePrimary, location)
		assert.Error(t, err)
	})
}

func TestDeliveryAddress_Relocate(t *testing.T) {
	first := valueobject.MustNewAddress("5 Main Road", "Durban", "KwaZulu-Natal")
	second := valueobject.MustNewAddress("9 Church Street", "Pretoria", "Gauteng",
		valueobject.WithPostalCode("0002"))

	addr, err := NewDeliveryAddress(uuid.New(), AddressTypePrimary, first)
	require.NoError(t, err)

	require.NoError(t, addr.Relocate(second))
	assert.Equal(t, "Pretoria", addr.City)
	assert.Equal(t, "0002", addr.PostalCode)

	assert.Error(t, addr.Relocate(valueobject.EmptyAddress()))
}
