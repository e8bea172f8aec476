package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	accountapp "github.com/storefront/backend/internal/application/account"
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAddressRepository implements account.AddressRepository for testing
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]account.DeliveryAddress, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.DeliveryAddress), args.Error(1)
}

func (m *MockAddressRepository) FindByAccountAndType(ctx context.Context, accountID uuid.UUID, addressType string) (*account.DeliveryAddress, error) {
	args := m.Called(ctx, accountID, addressType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.DeliveryAddress), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, address *account.DeliveryAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAddressRepository) DeleteByAccountAndType(ctx context.Context, accountID uuid.UUID, addressType string) error {
	args := m.Called(ctx, accountID, addressType)
	return args.Error(0)
}

// authenticatedRouter fakes the JWT middleware by planting the user ID
func authenticatedRouter(userID uuid.UUID) *gin.Engine {
	router := setupTestRouter()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Next()
	})
	return router
}

func TestAddressHandler_Create_Success(t *testing.T) {
	repo := new(MockAddressRepository)
	handler := NewAddressHandler(accountapp.NewAddressService(repo))
	userID := uuid.New()

	repo.On("FindByAccountAndType", mock.Anything, userID, "primary").
		Return(nil, shared.ErrNotFound)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*account.DeliveryAddress")).Return(nil)

	router := authenticatedRouter(userID)
	router.POST("/address", handler.Create)

	w := postJSON(router, "/address", accountapp.CreateAddressRequest{
		Type:       "primary",
		Address:    "12 Long Street",
		City:       "Cape Town",
		Province:   "Western Cape",
		PostalCode: "8001",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestAddressHandler_Create_DuplicateType(t *testing.T) {
	repo := new(MockAddressRepository)
	handler := NewAddressHandler(accountapp.NewAddressService(repo))
	userID := uuid.New()

	existing, err := account.NewDeliveryAddress(userID, account.AddressTypePrimary,
		valueobject.MustNewAddress("12 Long Street", "Cape Town", "Western Cape"))
	require.NoError(t, err)
	repo.On("FindByAccountAndType", mock.Anything, userID, "primary").Return(existing, nil)

	router := authenticatedRouter(userID)
	router.POST("/address", handler.Create)

	w := postJSON(router, "/address", accountapp.CreateAddressRequest{
		Type:     "primary",
		Address:  "99 Kloof Street",
		City:     "Cape Town",
		Province: "Western Cape",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddressHandler_Create_UnknownProvince(t *testing.T) {
	repo := new(MockAddressRepository)
	handler := NewAddressHandler(accountapp.NewAddressService(repo))
	userID := uuid.New()

	router := authenticatedRouter(userID)
	router.POST("/address", handler.Create)

	w := postJSON(router, "/address", accountapp.CreateAddressRequest{
		Type:     "primary",
		Address:  "1 Palace Road",
		City:     "Atlantis",
		Province: "Atlantis",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddressHandler_Delete_OwnerOnly(t *testing.T) {
	repo := new(MockAddressRepository)
	handler := NewAddressHandler(accountapp.NewAddressService(repo))
	owner := uuid.New()
	stranger := uuid.New()

	saved, err := account.NewDeliveryAddress(owner, account.AddressTypePrimary,
		valueobject.MustNewAddress("12 Long Street", "Cape Town", "Western Cape"))
	require.NoError(t, err)

	t.Run("owner can delete", func(t *testing.T) {
		repo.On("FindByAccount", mock.Anything, owner).
			Return([]account.DeliveryAddress{*saved}, nil).Once()
		repo.On("Delete", mock.Anything, saved.ID).Return(nil).Once()

		router := authenticatedRouter(owner)
		router.DELETE("/address/:id", handler.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/address/"+saved.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		repo.On("FindByAccount", mock.Anything, stranger).
			Return([]account.DeliveryAddress{}, nil).Once()

		router := authenticatedRouter(stranger)
		router.DELETE("/address/:id", handler.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/address/"+saved.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAddressHandler_List_Unauthenticated(t *testing.T) {
	handler := NewAddressHandler(accountapp.NewAddressService(new(MockAddressRepository)))

	router := setupTestRouter()
	router.GET("/address", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/address", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
