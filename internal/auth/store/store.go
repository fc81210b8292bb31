package store

import (
	"context"
	"errors"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	RememberTokens() RememberTokens
	DeletionRequests() DeletionRequests

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise committed. Multi-step operations
	// that must be atomic (refresh rotation, account deletion) go through
	// here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store. Nested transactions are not supported.
type Tx interface {
	Users() Users
	Sessions() Sessions
	RememberTokens() RememberTokens
	DeletionRequests() DeletionRequests
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login with an email identifier.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByPhone is used during login with a phone identifier.
	GetUserByPhone(ctx context.Context, phone string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when email or phone is already taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetActive flips the account active flag.
	SetActive(ctx context.Context, userID string, active bool) error

	// MarkEmailVerified stamps email_verified_at.
	MarkEmailVerified(ctx context.Context, userID string, at time.Time) error

	// MarkPhoneVerified stamps phone_verified_at.
	MarkPhoneVerified(ctx context.Context, userID string, at time.Time) error

	// DeleteUser removes the user; sessions and remember tokens cascade.
	DeleteUser(ctx context.Context, userID string) error
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session owning a refresh token
	// fingerprint, revoked or not; callers check Revoked/ExpiresAt.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// RevokeSession flips revoked on a single session.
	RevokeSession(ctx context.Context, sessionID string) error

	// RevokeUserSessions revokes every session of a user except the one
	// given (pass "" to revoke all).
	RevokeUserSessions(ctx context.Context, userID string, exceptSessionID string) error

	// CountActiveSessions returns the number of live sessions for a user.
	CountActiveSessions(ctx context.Context, userID string) (int, error)

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type RememberTokens interface {
	// CreateRememberToken stores a new remember-me token record.
	CreateRememberToken(ctx context.Context, t domain.RememberToken) error

	// GetActiveRememberTokenByHash returns a not-consumed, not-expired token.
	GetActiveRememberTokenByHash(ctx context.Context, hash string) (domain.RememberToken, error)

	// ConsumeRememberToken marks a token used; it can never restore again.
	ConsumeRememberToken(ctx context.Context, tokenID string) error

	// RevokeUserRememberTokens consumes all of a user's tokens (password
	// change, deactivation).
	RevokeUserRememberTokens(ctx context.Context, userID string) error

	// DeleteExpiredRememberTokens is housekeeping.
	DeleteExpiredRememberTokens(ctx context.Context) error
}

type DeletionRequests interface {
	// CreateDeletionRequest writes a new pending request.
	CreateDeletionRequest(ctx context.Context, req domain.AccountDeletionRequest) error

	// GetPendingByTokenHash returns a pending, not-expired request by the
	// confirmation token fingerprint.
	GetPendingByTokenHash(ctx context.Context, hash string) (domain.AccountDeletionRequest, error)

	// GetPendingByUserID returns the user's pending request if any.
	GetPendingByUserID(ctx context.Context, userID string) (domain.AccountDeletionRequest, error)

	// UpdateStatus transitions a request; confirmedAt may be nil.
	UpdateStatus(ctx context.Context, requestID string, status domain.DeletionStatus, confirmedAt *time.Time) error

	// ExpirePendingRequests marks stale pending requests expired and
	// returns how many were affected. Housekeeping.
	ExpirePendingRequests(ctx context.Context, now time.Time) (int64, error)
}
