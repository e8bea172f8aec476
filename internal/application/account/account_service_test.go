package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MockAccountRepository is a mock implementation of account.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssuePair(accountID uuid.UUID, email string) (TokenPair, error) {
	args := m.Called(accountID, email)
	return args.Get(0).(TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) ParseRefresh(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new account", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service := NewAccountService(repo, new(MockTokenIssuer), zap.NewNop())

		repo.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*account.Account")).Return(nil)

		resp, err := service.Register(ctx, RegisterRequest{
			Email:    "jane@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate email leaves existing account untouched", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service := NewAccountService(repo, new(MockTokenIssuer), zap.NewNop())

		repo.On("ExistsByEmail", ctx, "jane@example.com").Return(true, nil)

		_, err := service.Register(ctx, RegisterRequest{
			Email:    "jane@example.com",
			Password: "s3cret-pass",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()

	acc, err := account.NewAccount("jane@example.com", "s3cret-pass")
	require.NoError(t, err)

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		repo := new(MockAccountRepository)
		tokens := new(MockTokenIssuer)
		service := NewAccountService(repo, tokens, zap.NewNop())

		repo.On("FindByEmail", ctx, "jane@example.com").Return(acc, nil)
		repo.On("Save", ctx, acc).Return(nil)
		tokens.On("IssuePair", acc.ID, acc.Email).
			Return(TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

		pair, err := service.Authenticate(ctx, LoginRequest{Email: "jane@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "access", pair.AccessToken)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service := NewAccountService(repo, new(MockTokenIssuer), zap.NewNop())

		repo.On("FindByEmail", ctx, "jane@example.com").Return(acc, nil)

		_, err := service.Authenticate(ctx, LoginRequest{Email: "jane@example.com", Password: "wrong"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service := NewAccountService(repo, new(MockTokenIssuer), zap.NewNop())

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Authenticate(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAccountService_Refresh(t *testing.T) {
	ctx := context.Background()

	acc, err := account.NewAccount("jane@example.com", "s3cret-pass")
	require.NoError(t, err)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		repo := new(MockAccountRepository)
		tokens := new(MockTokenIssuer)
		service := NewAccountService(repo, tokens, zap.NewNop())

		tokens.On("ParseRefresh", "good-token").Return(acc.ID, nil)
		repo.On("FindByID", ctx, acc.ID).Return(acc, nil)
		tokens.On("IssuePair", acc.ID, acc.Email).
			Return(TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		pair, err := service.Refresh(ctx, RefreshRequest{RefreshToken: "good-token"})
		require.NoError(t, err)
		assert.Equal(t, "new-access", pair.AccessToken)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		repo := new(MockAccountRepository)
		tokens := new(MockTokenIssuer)
		service := NewAccountService(repo, tokens, zap.NewNop())

		tokens.On("ParseRefresh", "bad-token").Return(uuid.Nil, shared.ErrUnauthorized)

		_, err := service.Refresh(ctx, RefreshRequest{RefreshToken: "bad-token"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}
