package domain

import "time"

// Session models one authenticated device session. The row is keyed by the
// fingerprint of the refresh token that currently owns it; refresh rotation
// revokes this row and writes a successor, so a stolen refresh token dies on
// the first legitimate reuse.
type Session struct {
	ID        string
	UserID    string
	TokenHash string // SHA-256 fingerprint of the refresh token
	DeviceID  string
	UserAgent string
	IP        string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RememberToken is the long-lived "remember me" credential. Single use: a
// restore consumes the row and a replacement token is issued.
type RememberToken struct {
	ID        string
	UserID    string
	TokenHash string
	DeviceID  string
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}
