package authclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeAuthServer is a minimal stand-in for the auth service that tracks
// issued tokens.
type fakeAuthServer struct {
	mux *http.ServeMux

	loginCalls   atomic.Int64
	refreshCalls atomic.Int64

	validRefresh atomic.Value // string
}

func newFakeAuthServer() *fakeAuthServer {
	f := &fakeAuthServer{mux: http.NewServeMux()}
	f.validRefresh.Store("")

	f.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.loginCalls.Add(1)

		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "correct-horse" {
			writeEnvelope(w, r, http.StatusUnauthorized, "invalid credentials")
			return
		}

		f.validRefresh.Store("refresh-1")
		resp := SessionResponse{
			TokenPair: TokenPair{
				AccessToken:  "access-1",
				RefreshToken: "refresh-1",
				TokenType:    "Bearer",
				ExpiresIn:    3600,
			},
			User: User{ID: "user-1", Email: "rey@example.com"},
		}
		if req.Remember {
			resp.RememberToken = "remember-1"
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	f.mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)

		var req RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != f.validRefresh.Load().(string) {
			writeEnvelope(w, r, http.StatusUnauthorized, "invalid refresh token")
			return
		}

		f.validRefresh.Store("refresh-2")
		_ = json.NewEncoder(w).Encode(TokenPair{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			TokenType:    "Bearer",
			ExpiresIn:    3600,
		})
	})

	f.mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeEnvelope(w, r, http.StatusUnauthorized, "missing bearer token")
			return
		}
		_ = json.NewEncoder(w).Encode(User{ID: "user-1", Email: "rey@example.com"})
	})

	f.mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "logged out"})
	})

	return f
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		StatusCode: code,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Method:     r.Method,
		Message:    msg,
	})
}

func TestSessionLoginAndProfile(t *testing.T) {
	ctx := context.Background()

	fake := newFakeAuthServer()
	srv := httptest.NewServer(fake.mux)
	t.Cleanup(srv.Close)

	sess := NewSession(NewClient(srv.URL), nil)

	t.Run("bad password surfaces APIError", func(t *testing.T) {
		_, err := sess.Login(ctx, "rey@example.com", "wrong", false)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "invalid credentials", apiErr.Message)
	})

	u, err := sess.Login(ctx, "rey@example.com", "correct-horse", false)
	require.NoError(t, err)
	require.Equal(t, "user-1", u.ID)
	require.NotEmpty(t, sess.DeviceID())

	t.Run("profile reuses the live token without refreshing", func(t *testing.T) {
		before := fake.refreshCalls.Load()
		_, err := sess.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, before, fake.refreshCalls.Load())
	})
}

func TestSessionAutoRefresh(t *testing.T) {
	ctx := context.Background()

	fake := newFakeAuthServer()
	srv := httptest.NewServer(fake.mux)
	t.Cleanup(srv.Close)

	sess := NewSession(NewClient(srv.URL), nil)
	_, err := sess.Login(ctx, "rey@example.com", "correct-horse", false)
	require.NoError(t, err)

	// Force expiry so the next call has to refresh.
	sess.mu.Lock()
	sess.expiresAt = time.Now().Add(-time.Minute)
	sess.mu.Unlock()

	_, err = sess.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), fake.refreshCalls.Load())
	require.Equal(t, "access-2", sess.AccessToken())
}

// TestSessionConcurrentRefresh verifies stale-token callers share a single
// rotation: the server's refresh tokens are single-use, so a second refresh
// with the same token would 401 and fail one caller spuriously.
func TestSessionConcurrentRefresh(t *testing.T) {
	ctx := context.Background()

	fake := newFakeAuthServer()
	srv := httptest.NewServer(fake.mux)
	t.Cleanup(srv.Close)

	sess := NewSession(NewClient(srv.URL), nil)
	_, err := sess.Login(ctx, "rey@example.com", "correct-horse", false)
	require.NoError(t, err)

	sess.mu.Lock()
	sess.expiresAt = time.Now().Add(-time.Minute)
	sess.mu.Unlock()

	const callers = 8
	errs := make([]error, callers)

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := range callers {
		go func() {
			defer wg.Done()
			_, errs[i] = sess.Profile(ctx)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	require.Equal(t, int64(1), fake.refreshCalls.Load(), "rotation must happen exactly once")
	require.Equal(t, "access-2", sess.AccessToken())
}

func TestSessionPersistAndRestore(t *testing.T) {
	ctx := context.Background()

	fake := newFakeAuthServer()
	srv := httptest.NewServer(fake.mux)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "session.db")

	store, err := OpenBoltStore(path)
	require.NoError(t, err)

	sess := NewSession(NewClient(srv.URL), store)
	_, err = sess.Login(ctx, "rey@example.com", "correct-horse", true)
	require.NoError(t, err)
	deviceID := sess.DeviceID()
	require.NoError(t, store.Close())

	// A second "process run" restores from disk.
	store2, err := OpenBoltStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store2.Close() })

	restored := NewSession(NewClient(srv.URL), store2)
	u, err := restored.Restore(ctx)
	require.NoError(t, err)
	require.Equal(t, "user-1", u.ID)
	require.Equal(t, deviceID, restored.DeviceID(), "device id survives restarts")

	t.Run("logout clears the store", func(t *testing.T) {
		require.NoError(t, restored.Logout(ctx))
		_, err := store2.Load()
		require.ErrorIs(t, err, ErrNoSavedSession)

		_, err = NewSession(NewClient(srv.URL), store2).Restore(ctx)
		require.ErrorIs(t, err, ErrNoSavedSession)
	})
}
