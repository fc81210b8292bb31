package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lumacart/lumacart/pkg/authclient"
)

// TestLoginRateLimit verifies the strict per-IP limit on the login endpoint
// kicks in under the production defaults.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupAuthContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)
	email := registerUser(t, client)

	// The strict class allows a small burst per minute; hammer past it with
	// bad credentials and expect a 429 before the attempts run out.
	for i := 0; i < 30; i++ {
		_, err := client.Login(t.Context(), authclient.LoginRequest{
			Identifier: email,
			Password:   "wrong-password",
		}, "")

		var apiErr *authclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			t.Logf("Rate limited after %d attempts", i+1)
			return
		}
	}

	t.Fatal("Expected a 429 from the login endpoint under default rate limits")
}
