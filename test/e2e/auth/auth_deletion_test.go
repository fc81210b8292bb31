package auth_test

import (
	"net/http"
	"testing"

	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/stretchr/testify/require"
)

// TestAccountDeletionFlow walks the two-step deletion: request a
// confirmation token, confirm it, and verify the account is gone.
func TestAccountDeletionFlow(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)
	resp := loginUser(t, client, email, true)

	deletion, err := client.RequestDeletion(t.Context(), resp.AccessToken, "moving on")
	require.NoError(t, err)
	require.NotEmpty(t, deletion.ConfirmationToken)
	require.False(t, deletion.ExpiresAt.IsZero(), "Deletion request should carry an expiry")

	t.Run("second request while one is pending conflicts", func(t *testing.T) {
		_, err := client.RequestDeletion(t.Context(), resp.AccessToken, "")
		assertAPIError(t, err, http.StatusConflict, "Duplicate deletion request")
	})

	// Confirmation is unauthenticated; the token is the credential.
	require.NoError(t, client.ConfirmDeletion(t.Context(), deletion.ConfirmationToken))

	t.Run("account is gone", func(t *testing.T) {
		_, err := client.Login(t.Context(), authclient.LoginRequest{
			Identifier: email,
			Password:   testPassword,
		}, "")
		assertAPIError(t, err, http.StatusUnauthorized, "Login after deletion")
	})

	t.Run("sessions died with the account", func(t *testing.T) {
		_, err := client.Refresh(t.Context(), resp.RefreshToken, "")
		assertAPIError(t, err, http.StatusUnauthorized, "Refresh after deletion")

		_, err = client.Remember(t.Context(), resp.RememberToken, "")
		assertAPIError(t, err, http.StatusUnauthorized, "Remember after deletion")
	})

	t.Run("token is single use", func(t *testing.T) {
		err := client.ConfirmDeletion(t.Context(), deletion.ConfirmationToken)
		assertAPIError(t, err, http.StatusUnauthorized, "Replay of deletion token")
	})
}

// TestAccountDeletionCancel verifies a pending request can be withdrawn and
// the confirmation token dies with it.
func TestAccountDeletionCancel(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)
	resp := loginUser(t, client, email, false)

	deletion, err := client.RequestDeletion(t.Context(), resp.AccessToken, "")
	require.NoError(t, err)

	require.NoError(t, client.CancelDeletion(t.Context(), resp.AccessToken))

	t.Run("cancelled token cannot confirm", func(t *testing.T) {
		err := client.ConfirmDeletion(t.Context(), deletion.ConfirmationToken)
		assertAPIError(t, err, http.StatusUnauthorized, "Confirm after cancel")
	})

	t.Run("cancel without a pending request is a 404", func(t *testing.T) {
		err := client.CancelDeletion(t.Context(), resp.AccessToken)
		assertAPIError(t, err, http.StatusNotFound, "Cancel with nothing pending")
	})

	t.Run("account still works", func(t *testing.T) {
		profile, err := client.Profile(t.Context(), resp.AccessToken)
		require.NoError(t, err)
		require.Equal(t, email, profile.Email)
	})
}
