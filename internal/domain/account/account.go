package account

import (
	"regexp"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// Account is the customer account aggregate root
type Account struct {
	shared.BaseAggregateRoot
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100)"`
	LastName     string     `gorm:"type:varchar(100)"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new account with a bcrypt-hashed password
func NewAccount(email, password string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	if len(password) < MinPasswordLength {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewDomainError("HASH_FAILED", "Failed to hash password")
	}

	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      string(hash),
		IsActive:          true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after verifying the old password
func (a *Account) ChangePassword(oldPassword, newPassword string) error {
	if !a.CheckPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	if len(newPassword) < MinPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewDomainError("HASH_FAILED", "Failed to hash password")
	}

	a.PasswordHash = string(hash)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// SetName updates the account holder's name
func (a *Account) SetName(firstName, lastName string) {
	a.FirstName = strings.TrimSpace(firstName)
	a.LastName = strings.TrimSpace(lastName)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// RecordLogin stamps the last successful login time
func (a *Account) RecordLogin() {
	now := time.Now()
	a.LastLoginAt = &now
	a.UpdatedAt = now
}

// Deactivate disables the account
func (a *Account) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// Activate re-enables the account
func (a *Account) Activate() {
	a.IsActive = true
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}
