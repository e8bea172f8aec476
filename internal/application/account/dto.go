package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/account"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

// LoginRequest represents a token request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair carries an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAddressRequest represents a request to save a delivery address
type CreateAddressRequest struct {
	Type       string `json:"type" binding:"required,oneof=primary secondary"`
	Address    string `json:"address" binding:"required,min=1,max=500"`
	City       string `json:"city" binding:"required,min=1,max=100"`
	Province   string `json:"province" binding:"required,province"`
	PostalCode string `json:"postalCode" binding:"max=10"`
	Country    string `json:"country" binding:"max=100"`
}

// AddressResponse represents a saved address in API responses
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
}

// ToAccountResponse converts a domain Account to AccountResponse
func ToAccountResponse(a *account.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

// ToAddressResponse converts a domain DeliveryAddress to AddressResponse
func ToAddressResponse(d *account.DeliveryAddress) AddressResponse {
	return AddressResponse{
		ID:         d.ID,
		Type:       d.Type,
		Address:    d.Street,
		City:       d.City,
		Province:   d.Province,
		PostalCode: d.PostalCode,
		Country:    d.Country,
	}
}

// ToAddressResponses converts a slice of saved addresses
func ToAddressResponses(addresses []account.DeliveryAddress) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses
}
