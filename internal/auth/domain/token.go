package domain

import "time"

// TokenPair is what a successful login or refresh returns: a short-lived
// access JWT and a longer-lived refresh JWT.
type TokenPair struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	TokenType    string        `json:"tokenType"` // always "Bearer"
	ExpiresIn    time.Duration `json:"-"`
}

// LoginResult bundles everything the login and remember-me restore
// endpoints return.
type LoginResult struct {
	Tokens        TokenPair
	User          UserSummary
	RememberToken string // empty unless remember-me was requested
}

// DeviceInfo captures the client device metadata persisted on sessions.
type DeviceInfo struct {
	DeviceID  string
	UserAgent string
	IP        string
}
