package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/pkg/cryptox"
	"github.com/lumacart/lumacart/pkg/idx"
	"github.com/lumacart/lumacart/pkg/jwtx"
	"github.com/lumacart/lumacart/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

// MinPasswordLength is the shortest password accepted at registration and
// password change.
const MinPasswordLength = 8

var (
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrAccountDisabled     = errors.New("account_disabled")
	ErrDuplicateIdentifier = errors.New("duplicate_identifier")
	ErrMissingIdentifier   = errors.New("missing_identifier")
	ErrWeakPassword        = errors.New("weak_password")
	ErrInvalidRefresh      = errors.New("invalid_refresh_token")
	ErrInvalidRemember     = errors.New("invalid_remember_token")
	ErrUserNotFound        = errors.New("user_not_found")
)

// AuthService owns the credential and session lifecycle: registration,
// login, refresh rotation, remember-me restore, password change and logout.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string

	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	RememberTTL time.Duration
	BcryptCost  int
}

// RegisterParams carries everything a new account needs. At least one of
// Email or Phone must be set.
type RegisterParams struct {
	Email     string
	Phone     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new customer account. The identifier (email and/or
// phone) must be unused; collisions surface as ErrDuplicateIdentifier.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Email == "" && p.Phone == "" {
		return domain.User{}, ErrMissingIdentifier
	}
	if len(p.Password) < MinPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(p.Password, s.BcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	account := p.Email
	if account == "" {
		account = p.Phone
	}

	// Per-user TOTP secret backing the email/phone verification codes.
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: account,
	})
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:                 idx.New().String(),
		Email:              p.Email,
		Phone:              p.Phone,
		PasswordHash:       hash,
		FirstName:          strings.TrimSpace(p.FirstName),
		LastName:           strings.TrimSpace(p.LastName),
		Role:               domain.RoleCustomer,
		IsActive:           true,
		VerificationSecret: key.Secret(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected, identifier taken",
				slog.String("identifier", cryptox.FingerprintIdentifier(account)))
			return domain.User{}, ErrDuplicateIdentifier
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return u, nil
}

// ValidateUser checks an identifier/password pair and returns the account.
// Identifier resolution: anything containing "@" is an email, otherwise a
// phone number. Unknown identifiers and wrong passwords both come back as
// ErrInvalidCredentials so callers can't probe which accounts exist.
func (s *AuthService) ValidateUser(ctx context.Context, identifier, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	var (
		u   domain.User
		err error
	)
	if domain.IsEmailIdentifier(identifier) {
		u, err = s.Store.Users().GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		u, err = s.Store.Users().GetUserByPhone(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed, unknown identifier",
				slog.String("identifier", cryptox.FingerprintIdentifier(identifier)))
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login failed, password mismatch",
			slog.String("identifier", cryptox.FingerprintIdentifier(identifier)))
		return domain.User{}, ErrInvalidCredentials
	}

	if !u.IsActive {
		l.Info("login rejected, account disabled", slog.String("user_id", u.ID))
		return domain.User{}, ErrAccountDisabled
	}

	return u, nil
}

// Login validates credentials and opens a session. When remember is set a
// single-use remember-me token is minted alongside the JWT pair.
func (s *AuthService) Login(ctx context.Context, identifier, password string, remember bool, dev domain.DeviceInfo) (domain.LoginResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.ValidateUser(ctx, identifier, password)
	if err != nil {
		return domain.LoginResult{}, err
	}

	now := time.Now().UTC()

	var result domain.LoginResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		pair, err := s.openSession(ctx, tx, u, dev, now)
		if err != nil {
			return err
		}
		result.Tokens = pair
		result.User = u.Summary()

		if remember {
			opaque, err := s.mintRememberToken(ctx, tx, u.ID, dev.DeviceID, now)
			if err != nil {
				return err
			}
			result.RememberToken = opaque
		}
		return nil
	})
	if err != nil {
		return domain.LoginResult{}, err
	}

	l.Info("user logged in",
		slog.String("user_id", u.ID),
		slog.Bool("remember", remember),
	)
	return result, nil
}

// Refresh rotates a refresh token: the presented token's session is revoked
// and a fresh session with a new token pair takes its place. A revoked or
// unknown refresh token is rejected; reuse after rotation therefore fails.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, dev domain.DeviceInfo) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidRefresh
	}
	if err := claims.ValidateType(jwtx.TokenTypeRefresh); err != nil {
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	fp := cryptox.FingerprintToken(refreshToken)

	var pair domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		sess, err := tx.Sessions().GetSessionByTokenHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if sess.Revoked || now.After(sess.ExpiresAt) || sess.ID != claims.SID {
			return ErrInvalidRefresh
		}

		u, err := tx.Users().GetUserByID(ctx, sess.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if !u.IsActive {
			return ErrAccountDisabled
		}

		if err := tx.Sessions().RevokeSession(ctx, sess.ID); err != nil {
			return err
		}

		// Device metadata carries over from the old session unless the
		// caller supplied fresher values.
		if dev.DeviceID == "" {
			dev.DeviceID = sess.DeviceID
		}
		if dev.UserAgent == "" {
			dev.UserAgent = sess.UserAgent
		}
		if dev.IP == "" {
			dev.IP = sess.IP
		}

		pair, err = s.openSession(ctx, tx, u, dev, now)
		return err
	})
	if err != nil {
		return domain.TokenPair{}, err
	}

	l.Info("session refreshed", slog.String("user_id", claims.Subject))
	return pair, nil
}

// RestoreSession exchanges a remember-me token for a fresh session. The
// token is single-use: it is consumed and a replacement is issued with the
// new token pair.
func (s *AuthService) RestoreSession(ctx context.Context, rememberToken string, dev domain.DeviceInfo) (domain.LoginResult, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	fp := cryptox.FingerprintToken(rememberToken)

	var result domain.LoginResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rt, err := tx.RememberTokens().GetActiveRememberTokenByHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRemember
			}
			return err
		}

		u, err := tx.Users().GetUserByID(ctx, rt.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRemember
			}
			return err
		}
		if !u.IsActive {
			return ErrAccountDisabled
		}

		if err := tx.RememberTokens().ConsumeRememberToken(ctx, rt.ID); err != nil {
			return err
		}

		if dev.DeviceID == "" {
			dev.DeviceID = rt.DeviceID
		}

		pair, err := s.openSession(ctx, tx, u, dev, now)
		if err != nil {
			return err
		}

		opaque, err := s.mintRememberToken(ctx, tx, u.ID, dev.DeviceID, now)
		if err != nil {
			return err
		}

		result = domain.LoginResult{
			Tokens:        pair,
			User:          u.Summary(),
			RememberToken: opaque,
		}
		return nil
	})
	if err != nil {
		return domain.LoginResult{}, err
	}

	l.Info("session restored from remember token", slog.String("user_id", result.User.ID))
	return result, nil
}

// ChangePassword verifies the current password, rehashes, and revokes every
// other session plus all remember tokens. The calling session stays alive so
// the user isn't logged out of the device they changed the password on.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, sessionID string) error {
	l := slogx.FromContext(ctx)

	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, u.PasswordHash); err != nil {
		l.Info("password change rejected, current password mismatch", slog.String("user_id", userID))
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return err
		}
		if err := tx.Sessions().RevokeUserSessions(ctx, userID, sessionID); err != nil {
			return err
		}
		return tx.RememberTokens().RevokeUserRememberTokens(ctx, userID)
	})
	if err != nil {
		return err
	}

	l.Info("password changed", slog.String("user_id", userID))
	return nil
}

// Logout revokes the session the access token belongs to. Revoking a
// session that is already gone is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	err := s.Store.Sessions().RevokeSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// openSession creates a session row and signs the matching token pair. The
// session id doubles as the "sid" claim on both tokens, and the refresh
// token's fingerprint is what the row is later looked up by.
func (s *AuthService) openSession(ctx context.Context, tx store.Tx, u domain.User, dev domain.DeviceInfo, now time.Time) (domain.TokenPair, error) {
	sessionID := idx.New().String()

	refreshClaims := jwtx.NewRefreshClaims(u.ID, u.Email, string(u.Role), sessionID, s.Issuer, s.RefreshTTL, now)
	refreshToken, err := s.Signer.Sign(refreshClaims)
	if err != nil {
		return domain.TokenPair{}, err
	}

	accessClaims := jwtx.NewAccessClaims(u.ID, u.Email, string(u.Role), sessionID, s.Issuer, s.AccessTTL, now)
	accessToken, err := s.Signer.Sign(accessClaims)
	if err != nil {
		return domain.TokenPair{}, err
	}

	sess := domain.Session{
		ID:        sessionID,
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(refreshToken),
		DeviceID:  dev.DeviceID,
		UserAgent: dev.UserAgent,
		IP:        dev.IP,
		ExpiresAt: now.Add(s.RefreshTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.AccessTTL,
	}, nil
}

// mintRememberToken creates a single-use opaque token and stores its
// fingerprint. The opaque value is returned exactly once.
func (s *AuthService) mintRememberToken(ctx context.Context, tx store.Tx, userID, deviceID string, now time.Time) (string, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	rt := domain.RememberToken{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(opaque),
		DeviceID:  deviceID,
		ExpiresAt: now.Add(s.RememberTTL),
		CreatedAt: now,
	}
	if err := tx.RememberTokens().CreateRememberToken(ctx, rt); err != nil {
		return "", err
	}
	return opaque, nil
}
