package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer mints and verifies token pairs. Implemented by the jwt
// service in infrastructure/auth.
type TokenIssuer interface {
	// IssuePair mints an access/refresh token pair for an account
	IssuePair(accountID uuid.UUID, email string) (TokenPair, error)

	// ParseRefresh validates a refresh token and returns the account id
	ParseRefresh(token string) (uuid.UUID, error)
}

// AccountService handles registration and authentication
type AccountService struct {
	accountRepo account.AccountRepository
	tokens      TokenIssuer
	logger      *zap.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo account.AccountRepository, tokens TokenIssuer, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a new account. A duplicate email leaves the existing
// account untouched and reports ALREADY_EXISTS.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	acc, err := account.NewAccount(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if req.FirstName != "" || req.LastName != "" {
		acc.SetName(req.FirstName, req.LastName)
	}

	if err := s.accountRepo.Save(ctx, acc); err != nil {
		return nil, err
	}

	s.logger.Info("account registered", zap.String("account_id", acc.ID.String()))

	return ToAccountResponse(acc), nil
}

// Authenticate verifies credentials and issues a token pair. Credential
// failures are indistinguishable from unknown emails.
func (s *AccountService) Authenticate(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	acc, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		return nil, err
	}

	if !acc.IsActive {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}
	if !acc.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	pair, err := s.tokens.IssuePair(acc.ID, acc.Email)
	if err != nil {
		return nil, err
	}

	acc.RecordLogin()
	if err := s.accountRepo.Save(ctx, acc); err != nil {
		s.logger.Warn("failed to record login time",
			zap.String("account_id", acc.ID.String()), zap.Error(err))
	}

	return &pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AccountService) Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error) {
	accountID, err := s.tokens.ParseRefresh(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
		}
		return nil, err
	}
	if !acc.IsActive {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}

	pair, err := s.tokens.IssuePair(acc.ID, acc.Email)
	if err != nil {
		return nil, err
	}

	return &pair, nil
}

// GetByID retrieves an account profile
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*AccountResponse, error) {
	acc, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAccountResponse(acc), nil
}
