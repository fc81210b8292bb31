package auth_test

import (
	"net/http"
	"testing"

	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/stretchr/testify/require"
)

// TestRefreshRotation verifies a refresh token yields a new pair and is
// burned in the process.
func TestRefreshRotation(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)
	resp := loginUser(t, client, email, false)

	pair, err := client.Refresh(t.Context(), resp.RefreshToken, "")
	require.NoError(t, err)
	assertTokenPair(t, pair)
	require.NotEqual(t, resp.RefreshToken, pair.RefreshToken, "Refresh token should rotate")
	require.NotEqual(t, resp.AccessToken, pair.AccessToken, "Access token should rotate")

	t.Run("old refresh token is rejected after rotation", func(t *testing.T) {
		_, err := client.Refresh(t.Context(), resp.RefreshToken, "")
		assertAPIError(t, err, http.StatusUnauthorized, "Replay of rotated refresh token")
	})

	t.Run("rotated pair keeps working", func(t *testing.T) {
		profile, err := client.Profile(t.Context(), pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, email, profile.Email)
	})
}

// TestRefreshRejectsAccessToken verifies the token type claim is enforced:
// an access token cannot be used on the refresh endpoint.
func TestRefreshRejectsAccessToken(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)
	resp := loginUser(t, client, email, false)

	_, err := client.Refresh(t.Context(), resp.AccessToken, "")
	assertAPIError(t, err, http.StatusUnauthorized, "Access token on refresh endpoint")
}

// TestLogoutRevokesSession verifies logout kills the refresh token while the
// already-issued access token keeps its remaining JWT lifetime.
func TestLogoutRevokesSession(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)
	resp := loginUser(t, client, email, false)

	require.NoError(t, client.Logout(t.Context(), resp.AccessToken))

	_, err := client.Refresh(t.Context(), resp.RefreshToken, "")
	assertAPIError(t, err, http.StatusUnauthorized, "Refresh after logout")

	t.Run("logout is idempotent", func(t *testing.T) {
		require.NoError(t, client.Logout(t.Context(), resp.AccessToken))
	})
}
