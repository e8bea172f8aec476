package valueobject

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultCountry is the default country for delivery addresses
const DefaultCountry = "South Africa"

// Provinces lists the valid South African provinces
var Provinces = []string{
	"Eastern Cape",
	"Free State",
	"Gauteng",
	"KwaZulu-Natal",
	"Limpopo",
	"Mpumalanga",
	"North West",
	"Northern Cape",
	"Western Cape",
}

// IsValidProvince checks if the province is a valid South African province,
// ignoring case and surrounding whitespace
func IsValidProvince(province string) bool {
	province = strings.TrimSpace(province)
	for _, p := range Provinces {
		if strings.EqualFold(p, province) {
			return true
		}
	}
	return false
}

// NormalizeProvince returns the canonical spelling of a province name,
// or the trimmed input unchanged when it is not recognized
func NormalizeProvince(province string) string {
	province = strings.TrimSpace(province)
	for _, p := range Provinces {
		if strings.EqualFold(p, province) {
			return p
		}
	}
	return province
}

// Address is a value object representing a delivery address
// It is immutable - all operations return new Address instances
type Address struct {
	street     string
	city       string
	province   string
	postalCode string
	country    string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithPostalCode sets the postal code for the address
func WithPostalCode(postalCode string) AddressOption {
	return func(a *Address) {
		a.postalCode = strings.TrimSpace(postalCode)
	}
}

// WithCountry sets the country for the address
func WithCountry(country string) AddressOption {
	return func(a *Address) {
		a.country = strings.TrimSpace(country)
	}
}

// NewAddress creates a new Address with the required fields.
// Street, city, and province are required; the postal code is optional and
// the country defaults to South Africa.
func NewAddress(street, city, province string, opts ...AddressOption) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	province = strings.TrimSpace(province)

	if street == "" {
		return Address{}, fmt.Errorf("street address cannot be empty")
	}
	if len(street) > 500 {
		return Address{}, fmt.Errorf("street address cannot exceed 500 characters")
	}
	if city == "" {
		return Address{}, fmt.Errorf("city cannot be empty")
	}
	if len(city) > 100 {
		return Address{}, fmt.Errorf("city cannot exceed 100 characters")
	}
	if province == "" {
		return Address{}, fmt.Errorf("province cannot be empty")
	}
	if !IsValidProvince(province) {
		return Address{}, fmt.Errorf("unknown province: %s", province)
	}

	addr := Address{
		street:   street,
		city:     city,
		province: NormalizeProvince(province),
		country:  DefaultCountry,
	}

	for _, opt := range opts {
		opt(&addr)
	}

	if len(addr.postalCode) > 10 {
		return Address{}, fmt.Errorf("postal code cannot exceed 10 characters")
	}
	if addr.country == "" {
		addr.country = DefaultCountry
	}
	if len(addr.country) > 100 {
		return Address{}, fmt.Errorf("country cannot exceed 100 characters")
	}

	return addr, nil
}

// MustNewAddress creates a new Address, panics on error
func MustNewAddress(street, city, province string, opts ...AddressOption) Address {
	addr, err := NewAddress(street, city, province, opts...)
	if err != nil {
		panic(err)
	}
	return addr
}

// EmptyAddress returns an empty address (for optional address fields)
func EmptyAddress() Address {
	return Address{}
}

// Street returns the street address
func (a Address) Street() string {
	return a.street
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// Province returns the province
func (a Address) Province() string {
	return a.province
}

// PostalCode returns the postal code
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country
func (a Address) Country() string {
	return a.country
}

// IsEmpty returns true if every component of the address is blank
func (a Address) IsEmpty() bool {
	return a.street == "" && a.city == "" && a.province == "" && a.postalCode == ""
}

// FullAddress returns the complete formatted address string.
// Format: Street, City, Province, PostalCode, Country
func (a Address) FullAddress() string {
	if a.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, 5)
	if a.street != "" {
		parts = append(parts, a.street)
	}
	if a.city != "" {
		parts = append(parts, a.city)
	}
	if a.province != "" {
		parts = append(parts, a.province)
	}
	if a.postalCode != "" {
		parts = append(parts, a.postalCode)
	}
	if a.country != "" {
		parts = append(parts, a.country)
	}
	return strings.Join(parts, ", ")
}

// String returns a string representation of the address
func (a Address) String() string {
	return a.FullAddress()
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.province == other.province &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// addressJSON is used for JSON marshaling/unmarshaling
type addressJSON struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Address:    a.street,
		City:       a.city,
		Province:   a.province,
		PostalCode: a.postalCode,
		Country:    a.country,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// An all-blank payload deserializes to EmptyAddress so callers can detect
// and reject it; any partially filled payload is validated in full.
func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if strings.TrimSpace(v.Address) == "" && strings.TrimSpace(v.City) == "" &&
		strings.TrimSpace(v.Province) == "" && strings.TrimSpace(v.PostalCode) == "" {
		*a = EmptyAddress()
		return nil
	}

	opts := []AddressOption{WithPostalCode(v.PostalCode)}
	if v.Country != "" {
		opts = append(opts, WithCountry(v.Country))
	}
	addr, err := NewAddress(v.Address, v.City, v.Province, opts...)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
