package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/account"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// AddressService manages the saved delivery addresses of an account
type AddressService struct {
	addressRepo account.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo account.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// List returns the saved addresses of an account
func (s *AddressService) List(ctx context.Context, accountID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(addresses), nil
}

// Create saves a new address. An account holds at most one address per
// type; a second address of the same type is rejected with ALREADY_EXISTS.
func (s *AddressService) Create(ctx context.Context, accountID uuid.UUID, req CreateAddressRequest) (*AddressResponse, error) {
	existing, err := s.addressRepo.FindByAccountAndType(ctx, accountID, req.Type)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An address of this type already exists")
	}

	opts := []valueobject.AddressOption{valueobject.WithPostalCode(req.PostalCode)}
	if req.Country != "" {
		opts = append(opts, valueobject.WithCountry(req.Country))
	}

	location, err := valueobject.NewAddress(req.Address, req.City, req.Province, opts...)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION", err.Error())
	}

	address, err := account.NewDeliveryAddress(accountID, req.Type, location)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	resp := ToAddressResponse(address)
	return &resp, nil
}

// Delete removes a saved address. Another account's address is
// indistinguishable from a missing one.
func (s *AddressService) Delete(ctx context.Context, accountID, addressID uuid.UUID) error {
	addresses, err := s.addressRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	for i := range addresses {
		if addresses[i].ID == addressID {
			return s.addressRepo.Delete(ctx, addressID)
		}
	}

	return shared.ErrNotFound
}
