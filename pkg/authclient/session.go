package authclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// refreshBuffer refreshes the access token this long before actual expiry.
const refreshBuffer = 30 * time.Second

// Session is an authenticated session with automatic token refresh and
// optional persistence through a TokenStore. All methods are safe for
// concurrent use.
type Session struct {
	client *Client
	store  TokenStore // nil means in-memory only

	// refreshMu serializes token rotation: refresh tokens are single-use on
	// the server, so concurrent callers must not race to redeem the same one.
	refreshMu sync.Mutex

	mu            sync.RWMutex
	accessToken   string
	refreshToken  string
	rememberToken string
	deviceID      string
	user          User
	expiresAt     time.Time
}

// NewSession creates an unauthenticated session. The store may be nil for
// in-memory sessions; when set, Restore can resume a previous run's session.
func NewSession(client *Client, store TokenStore) *Session {
	return &Session{
		client:   client,
		store:    store,
		deviceID: uuid.NewString(),
	}
}

// Login authenticates and persists the session state.
func (s *Session) Login(ctx context.Context, identifier, password string, remember bool) (*User, error) {
	s.mu.RLock()
	deviceID := s.deviceID
	s.mu.RUnlock()

	resp, err := s.client.Login(ctx, LoginRequest{
		Identifier: identifier,
		Password:   password,
		Remember:   remember,
	}, deviceID)
	if err != nil {
		return nil, err
	}

	s.adopt(resp)
	return &resp.User, nil
}

// Register creates an account and logs straight in with the same
// credentials.
func (s *Session) Register(ctx context.Context, req RegisterRequest, remember bool) (*User, error) {
	if _, err := s.client.Register(ctx, req); err != nil {
		return nil, err
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Phone
	}
	return s.Login(ctx, identifier, req.Password, remember)
}

// Restore resumes a persisted session: a still-valid token pair is used as
// is, an expired one is refreshed, and failing that the remember-me token is
// redeemed. Returns ErrNoSavedSession when nothing usable was stored.
func (s *Session) Restore(ctx context.Context) (*User, error) {
	if s.store == nil {
		return nil, ErrNoSavedSession
	}

	data, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if data.DeviceID != "" {
		s.deviceID = data.DeviceID
	}
	s.mu.Unlock()

	if time.Now().Before(data.ExpiresAt) {
		s.mu.Lock()
		s.accessToken = data.AccessToken
		s.refreshToken = data.RefreshToken
		s.rememberToken = data.RememberToken
		s.user = data.User
		s.expiresAt = data.ExpiresAt
		s.mu.Unlock()
		return &data.User, nil
	}

	if pair, err := s.client.Refresh(ctx, data.RefreshToken, data.DeviceID); err == nil {
		s.mu.Lock()
		s.accessToken = pair.AccessToken
		s.refreshToken = pair.RefreshToken
		s.rememberToken = data.RememberToken
		s.user = data.User
		s.expiresAt = expiryFrom(pair.ExpiresIn)
		s.mu.Unlock()
		s.persist()
		return &data.User, nil
	}

	if data.RememberToken == "" {
		_ = s.store.Clear()
		return nil, ErrNoSavedSession
	}

	resp, err := s.client.Remember(ctx, data.RememberToken, data.DeviceID)
	if err != nil {
		_ = s.store.Clear()
		return nil, fmt.Errorf("authclient: session restore failed: %w", err)
	}

	s.adopt(resp)
	u := resp.User
	return &u, nil
}

// Logout revokes the server session and clears persisted state.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.accessToken
	s.accessToken = ""
	s.refreshToken = ""
	s.rememberToken = ""
	s.user = User{}
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if s.store != nil {
		_ = s.store.Clear()
	}

	if token == "" {
		return nil
	}
	return s.client.Logout(ctx, token)
}

// Profile fetches the current account from the server.
func (s *Session) Profile(ctx context.Context) (*User, error) {
	token, err := s.validToken(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.client.Profile(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = *u
	s.mu.Unlock()
	s.persist()

	return u, nil
}

// ChangePassword rotates the password. The server keeps this session alive
// and kills every other one.
func (s *Session) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	token, err := s.validToken(ctx)
	if err != nil {
		return err
	}

	err = s.client.ChangePassword(ctx, token, ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return err
	}

	// Server-side remember tokens were revoked; drop ours too.
	s.mu.Lock()
	s.rememberToken = ""
	s.mu.Unlock()
	s.persist()
	return nil
}

// User returns the cached account from the last login/profile fetch.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// AccessToken returns the current access token without refresh.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// DeviceID returns the stable device identifier sent with every request.
func (s *Session) DeviceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceID
}

// validToken returns a live access token, rotating the refresh token when
// the current one is stale.
func (s *Session) validToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Another goroutine may have rotated while we waited for the lock; its
	// fresh pair is ours to use.
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	refreshToken := s.refreshToken
	deviceID := s.deviceID
	s.mu.RUnlock()

	if refreshToken == "" {
		return "", errors.New("authclient: not authenticated")
	}

	pair, err := s.client.Refresh(ctx, refreshToken, deviceID)
	if err != nil {
		return "", fmt.Errorf("authclient: token refresh failed: %w", err)
	}

	s.mu.Lock()
	s.accessToken = pair.AccessToken
	s.refreshToken = pair.RefreshToken
	s.expiresAt = expiryFrom(pair.ExpiresIn)
	token := s.accessToken
	s.mu.Unlock()

	s.persist()
	return token, nil
}

// adopt replaces the session state with a fresh login/restore response.
func (s *Session) adopt(resp *SessionResponse) {
	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	if resp.RememberToken != "" {
		s.rememberToken = resp.RememberToken
	}
	s.user = resp.User
	s.expiresAt = expiryFrom(resp.ExpiresIn)
	s.mu.Unlock()

	s.persist()
}

// persist writes the current state to the token store, if any.
func (s *Session) persist() {
	if s.store == nil {
		return
	}

	s.mu.RLock()
	data := AuthData{
		AccessToken:   s.accessToken,
		RefreshToken:  s.refreshToken,
		RememberToken: s.rememberToken,
		DeviceID:      s.deviceID,
		User:          s.user,
		ExpiresAt:     s.expiresAt,
	}
	s.mu.RUnlock()

	_ = s.store.Save(data)
}

func expiryFrom(expiresIn int64) time.Time {
	return time.Now().Add(time.Duration(expiresIn)*time.Second - refreshBuffer)
}
