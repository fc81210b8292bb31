package domain

import (
	"strings"
	"time"
)

// Role is the account role carried in tokens and checked by the admin gate.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is the stored account record. At least one of Email/Phone is always
// present (enforced by the schema). PasswordHash and VerificationSecret must
// never cross the service boundary; handlers only ever see Summary().
type User struct {
	ID           string
	Email        string // empty means not set
	Phone        string // empty means not set
	PasswordHash string // bcrypt encoded
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool

	EmailVerifiedAt *time.Time
	PhoneVerifiedAt *time.Time

	// VerificationSecret seeds the TOTP-style email/phone verification codes.
	VerificationSecret string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identifier returns the user's primary identifier, preferring email.
func (u User) Identifier() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Phone
}

// UserSummary is the sanitized view of a user returned by the API.
type UserSummary struct {
	ID              string     `json:"id"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            Role       `json:"role"`
	IsActive        bool       `json:"isActive"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty"`
	PhoneVerifiedAt *time.Time `json:"phoneVerifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Summary strips credential material from the user record.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Email:           u.Email,
		Phone:           u.Phone,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            u.Role,
		IsActive:        u.IsActive,
		EmailVerifiedAt: u.EmailVerifiedAt,
		PhoneVerifiedAt: u.PhoneVerifiedAt,
		CreatedAt:       u.CreatedAt,
	}
}

// IsEmailIdentifier reports whether a login identifier should be treated as
// an email address rather than a phone number.
func IsEmailIdentifier(identifier string) bool {
	return strings.Contains(identifier, "@")
}
