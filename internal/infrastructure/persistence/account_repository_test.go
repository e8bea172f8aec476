package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAccountRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	acc, err := account.NewAccount("Thandi@Example.com", "s3cret-pass")
	require.NoError(t, err)
	acc.SetName("Thandi", "Nkosi")
	require.NoError(t, repo.Save(ctx, acc))

	t.Run("matches case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "THANDI@example.com")
		require.NoError(t, err)
		assert.Equal(t, acc.ID, found.ID)
		assert.Equal(t, "thandi@example.com", found.Email)
	})

	t.Run("returns not found for unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormAccountRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	acc, err := account.NewAccount("sipho@example.com", "s3cret-pass")
	require.NoError(t, err)
	acc.SetName("Sipho", "Dlamini")
	require.NoError(t, repo.Save(ctx, acc))

	exists, err := repo.ExistsByEmail(ctx, "SIPHO@EXAMPLE.COM")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "lerato@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormAccountRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	accountRepo := NewGormAccountRepository(db)
	addressRepo := NewGormAddressRepository(db)
	ctx := context.Background()

	acc, err := account.NewAccount("zanele@example.com", "s3cret-pass")
	require.NoError(t, err)
	acc.SetName("Zanele", "Mokoena")
	require.NoError(t, accountRepo.Save(ctx, acc))

	location := valueobject.MustNewAddress("5 Main Road", "Durban", "KwaZulu-Natal")
	saved, err := account.NewDeliveryAddress(acc.ID, account.AddressTypePrimary, location)
	require.NoError(t, err)
	require.NoError(t, addressRepo.Save(ctx, saved))

	require.NoError(t, accountRepo.Delete(ctx, acc.ID))

	_, err = accountRepo.FindByID(ctx, acc.ID)
	assert.Equal(t, shared.ErrNotFound, err)

	addresses, err := addressRepo.FindByAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestGormAddressRepository_FindByAccountAndType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	accountID := uuid.New()

	primary, err := account.NewDeliveryAddress(accountID, account.AddressTypePrimary,
		valueobject.MustNewAddress("12 Long Street", "Cape Town", "Western Cape"))
	require.NoError(t, err)
	secondary, err := account.NewDeliveryAddress(accountID, account.AddressTypeSecondary,
		valueobject.MustNewAddress("8 Church Street", "Pretoria", "Gauteng"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, primary))
	require.NoError(t, repo.Save(ctx, secondary))

	found, err := repo.FindByAccountAndType(ctx, accountID, account.AddressTypePrimary)
	require.NoError(t, err)
	assert.Equal(t, primary.ID, found.ID)
	assert.Equal(t, "Cape Town", found.City)

	all, err := repo.FindByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, account.AddressTypePrimary, all[0].Type)

	_, err = repo.FindByAccountAndType(ctx, uuid.New(), account.AddressTypePrimary)
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestGormAddressRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	accountID := uuid.New()
	saved, err := account.NewDeliveryAddress(accountID, account.AddressTypePrimary,
		valueobject.MustNewAddress("3 Beach Road", "Gqeberha", "Eastern Cape"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, saved))

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.Equal(t, shared.ErrNotFound, repo.Delete(ctx, saved.ID))
}

func TestGormAddressRepository_DeleteByAccountAndType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	accountID := uuid.New()
	saved, err := account.NewDeliveryAddress(accountID, account.AddressTypeSecondary,
		valueobject.MustNewAddress("44 Market Street", "Bloemfontein", "Free State"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, saved))

	require.NoError(t, repo.DeleteByAccountAndType(ctx, accountID, account.AddressTypeSecondary))
	assert.Equal(t, shared.ErrNotFound,
		repo.DeleteByAccountAndType(ctx, accountID, account.AddressTypeSecondary))
}
