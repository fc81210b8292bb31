package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. The reference deployment uses a long-lived access token
// and a week of refresh validity; both are overridable via configuration.
const (
	DefaultAccessTokenTTL  = 24 * time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Token type values carried in the "typ" claim. Verification pins the
// expected type so a refresh token can never be replayed as an access token.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the token claims shared by access and refresh tokens:
// subject is the user id, email and role ride along so resource handlers
// don't need a user lookup, and sid ties the token to its session row.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user (may be empty for phone-only accounts).
	Email string `json:"email,omitempty"`

	// Role is the account role (CUSTOMER, ADMIN).
	Role string `json:"role,omitempty"`

	// SID is the session ID the token belongs to.
	SID string `json:"sid,omitempty"`

	// TokenType distinguishes access from refresh tokens.
	TokenType string `json:"typ"`
}

// NewAccessClaims builds claims for a short-lived access token.
func NewAccessClaims(subject, email, role, sid, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(subject, email, role, sid, issuer, TokenTypeAccess, ttl, now)
}

// NewRefreshClaims builds claims for a refresh token.
func NewRefreshClaims(subject, email, role, sid, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(subject, email, role, sid, issuer, TokenTypeRefresh, ttl, now)
}

func newClaims(subject, email, role, sid, issuer, typ string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email:     email,
		Role:      role,
		SID:       sid,
		TokenType: typ,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateType checks the "typ" claim against the expected token type.
func (c *Claims) ValidateType(expected string) error {
	if c.TokenType != expected {
		return ErrWrongType
	}
	return nil
}
