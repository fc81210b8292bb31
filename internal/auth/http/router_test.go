package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/internal/auth/store/drivers/sqlite"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "lumacart-test")
	require.NoError(t, err)

	r := NewRouter(codec, "test", []string{"*"}, st, slog.New(slog.DiscardHandler))
	r.AuthService = &service.AuthService{
		Store:       st,
		Signer:      codec,
		Verifier:    codec,
		Issuer:      "lumacart-test",
		AccessTTL:   time.Hour,
		RefreshTTL:  24 * time.Hour,
		RememberTTL: 48 * time.Hour,
		BcryptCost:  4, // minimum cost keeps the suite fast
	}
	r.AccountService = &service.AccountService{Store: st, DeletionTTL: time.Hour}
	r.VerificationService = &service.VerificationService{Store: st}
	r.UserService = &service.UserService{Store: st}
	r.ApplyRoutes()

	return r, st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// TestDeactivatedAccountIsUnauthorized pins the status code for deactivated
// accounts: login and refresh both answer 401, and the body is identical to a
// plain bad-credentials failure so callers cannot tell a disabled account
// from a wrong password.
func TestDeactivatedAccountIsUnauthorized(t *testing.T) {
	r, st := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", authclient.RegisterRequest{
		Email:    "frida@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	u := decodeBody[authclient.User](t, rec)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", authclient.LoginRequest{
		Identifier: "frida@example.com",
		Password:   "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	session := decodeBody[authclient.SessionResponse](t, rec)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", authclient.LoginRequest{
		Identifier: "frida@example.com",
		Password:   "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	badCreds := decodeBody[authclient.ErrorResponse](t, rec)

	// Flip the flag directly so the live session survives and the refresh
	// path exercises the active check rather than session revocation.
	require.NoError(t, st.Users().SetActive(t.Context(), u.ID, false))

	t.Run("login with correct password answers 401", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/auth/login", authclient.LoginRequest{
			Identifier: "frida@example.com",
			Password:   "correct-horse",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		envelope := decodeBody[authclient.ErrorResponse](t, rec)
		require.Equal(t, badCreds.Message, envelope.Message, "disabled account must be indistinguishable from bad credentials")
	})

	t.Run("refresh with a live token answers 401", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/auth/refresh", authclient.RefreshRequest{
			RefreshToken: session.RefreshToken,
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
