// Package authclient is the Go SDK for the lumacart auth service: the wire
// types shared with the server's handlers, a thin REST client, and a
// persistent client-side session helper.
package authclient

import "time"

// TokenPair is the JWT pair returned by login, refresh and remember-me
// restore. ExpiresIn is the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// User is the sanitized account view the API exposes.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"isActive"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty"`
	PhoneVerifiedAt *time.Time `json:"phoneVerifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// SessionResponse is what login and remember-me restore return.
type SessionResponse struct {
	TokenPair

	User          User   `json:"user"`
	RememberToken string `json:"rememberToken,omitempty"`
}

// RegisterRequest creates a new customer account. At least one of Email or
// Phone must be provided.
type RegisterRequest struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LoginRequest authenticates with an email or phone identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Remember   bool   `json:"remember,omitempty"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RememberRequest restores a session from a remember-me token.
type RememberRequest struct {
	RememberToken string `json:"rememberToken"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// VerificationRequest asks for a verification code on a channel
// ("email" or "phone").
type VerificationRequest struct {
	Channel string `json:"channel"`
}

// VerificationConfirmRequest submits a verification code.
type VerificationConfirmRequest struct {
	Channel string `json:"channel"`
	Code    string `json:"code"`
}

// DeletionRequest opens an account deletion request.
type DeletionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// DeletionResponse carries the confirmation token for a pending deletion
// request. The token is shown exactly once.
type DeletionResponse struct {
	ConfirmationToken string    `json:"confirmationToken"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

// DeletionConfirmRequest completes a pending deletion.
type DeletionConfirmRequest struct {
	Token string `json:"token"`
}

// SetActiveRequest is the admin request to enable or disable an account.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthChecks reports per-dependency status on the readiness and health
// endpoints.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is the body of /livez, /readyz and /api/health.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
	Memory  *MemoryStats  `json:"memory,omitempty"`
}

// MemoryStats is the runtime memory snapshot on /api/health.
type MemoryStats struct {
	AllocBytes      uint64 `json:"allocBytes"`
	TotalAllocBytes uint64 `json:"totalAllocBytes"`
	SysBytes        uint64 `json:"sysBytes"`
	NumGC           uint32 `json:"numGC"`
	Goroutines      int    `json:"goroutines"`
}

// ErrorResponse mirrors the uniform error envelope every endpoint returns.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
}
