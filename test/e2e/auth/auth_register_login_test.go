package auth_test

import (
	"net/http"
	"testing"

	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLogin exercises the happy path: register, log in, fetch the
// profile with the issued access token.
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)

	resp := loginUser(t, client, email, false)
	require.Equal(t, email, resp.User.Email)
	require.Equal(t, "CUSTOMER", resp.User.Role, "New accounts default to the customer role")
	require.True(t, resp.User.IsActive)
	require.Empty(t, resp.RememberToken, "No remember token without remember=true")

	profile, err := client.Profile(t.Context(), resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, profile.ID)
	require.Nil(t, profile.EmailVerifiedAt, "Email starts unverified")
}

// TestRegisterDuplicateEmail verifies the unique identifier constraint
// surfaces as a bad request, not a 500.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)

	_, err := client.Register(t.Context(), authclient.RegisterRequest{
		Email:    email,
		Password: testPassword,
	})
	assertAPIError(t, err, http.StatusBadRequest, "Duplicate registration")
}

// TestRegisterValidation covers the request validation failures.
func TestRegisterValidation(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)

	t.Run("missing identifier", func(t *testing.T) {
		_, err := client.Register(t.Context(), authclient.RegisterRequest{
			Password: testPassword,
		})
		assertAPIError(t, err, http.StatusBadRequest, "Registration without email or phone")
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := client.Register(t.Context(), authclient.RegisterRequest{
			Email:    uniqueEmail("weak"),
			Password: "short",
		})
		assertAPIError(t, err, http.StatusBadRequest, "Registration with short password")
	})
}

// TestLoginWrongPassword verifies failed logins return the uniform error
// envelope with a 401 and no hint about which part was wrong.
func TestLoginWrongPassword(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)

	_, err := client.Login(t.Context(), authclient.LoginRequest{
		Identifier: email,
		Password:   "not-the-password",
	}, "")
	apiErr := assertAPIError(t, err, http.StatusUnauthorized, "Login with wrong password")
	require.Equal(t, "/api/auth/login", apiErr.Path)
	require.Equal(t, http.MethodPost, apiErr.Method)

	t.Run("unknown identifier gets the same answer", func(t *testing.T) {
		_, err := client.Login(t.Context(), authclient.LoginRequest{
			Identifier: uniqueEmail("ghost"),
			Password:   testPassword,
		}, "")
		ghostErr := assertAPIError(t, err, http.StatusUnauthorized, "Login with unknown identifier")
		require.Equal(t, apiErr.Message, ghostErr.Message, "Wrong password and unknown user should be indistinguishable")
	})
}

// TestProfileRequiresToken verifies the protected route rejects missing and
// garbage bearer tokens.
func TestProfileRequiresToken(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)

	_, err := client.Profile(t.Context(), "")
	assertAPIError(t, err, http.StatusUnauthorized, "Profile without token")

	_, err = client.Profile(t.Context(), "not-a-jwt")
	assertAPIError(t, err, http.StatusUnauthorized, "Profile with garbage token")
}
