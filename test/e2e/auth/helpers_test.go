package auth_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for auth service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "lumacart-auth-test:latest"

	// Must be at least 32 bytes for HS256.
	testJWTSecret = "e2e-test-secret-0123456789abcdef0123456789"

	testPassword = "Sup3rSecret!"
)

var userSeq atomic.Int64

// uniqueEmail returns a fresh email address so tests can share a container
// without colliding on the unique identifier constraint.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), userSeq.Add(1))
}

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"AUTH_JWT_SECRET":    testJWTSecret,
		"AUTH_DATABASE_FILE": "/tmp/auth.db",
		"AUTH_ISSUER":        "lumacart-auth-test",
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
	}
}

// setupAuthContainer starts the auth service in a container and returns the
// base URL. Rate limits are relaxed so rapid test requests don't trip the
// strict production limits; rate limiting itself is covered by
// setupAuthContainerWithDefaultRateLimits.
func setupAuthContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupAuthContainerWithDefaultRateLimits starts the auth service with the
// production rate limit defaults, for tests that exercise rate limiting.
func setupAuthContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser creates a fresh customer account and returns its email.
func registerUser(t *testing.T, client *authclient.Client) string {
	t.Helper()

	email := uniqueEmail("customer")
	u, err := client.Register(t.Context(), authclient.RegisterRequest{
		Email:     email,
		Password:  testPassword,
		FirstName: "Test",
		LastName:  "Customer",
	})
	require.NoError(t, err, "Registration should succeed")
	require.NotEmpty(t, u.ID, "Registered user should have an ID")

	return email
}

// loginUser authenticates and returns the opened session response.
func loginUser(t *testing.T, client *authclient.Client, email string, remember bool) *authclient.SessionResponse {
	t.Helper()

	resp, err := client.Login(t.Context(), authclient.LoginRequest{
		Identifier: email,
		Password:   testPassword,
		Remember:   remember,
	}, "")
	require.NoError(t, err, "Login should succeed")
	assertTokenPair(t, &resp.TokenPair)

	return resp
}

// assertTokenPair verifies a token response has all required fields.
func assertTokenPair(t *testing.T, pair *authclient.TokenPair) {
	t.Helper()
	require.NotNil(t, pair)
	require.NotEmpty(t, pair.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, pair.RefreshToken, "Refresh token should not be empty")
	require.Equal(t, "Bearer", pair.TokenType, "Token type should be Bearer")
	require.Positive(t, pair.ExpiresIn, "ExpiresIn should be set")
}

// assertAPIError verifies an error is the service's error envelope with the
// given status code and checks the envelope's echo fields are populated.
func assertAPIError(t *testing.T, err error, statusCode int, context string) *authclient.APIError {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *authclient.APIError
	require.ErrorAs(t, err, &apiErr, "%s - error should carry the error envelope, got: %v", context, err)
	require.Equal(t, statusCode, apiErr.StatusCode, "%s - unexpected status code", context)
	require.NotEmpty(t, apiErr.Message, "%s - envelope should carry a message", context)
	require.NotEmpty(t, apiErr.Path, "%s - envelope should echo the request path", context)
	require.NotEmpty(t, apiErr.Method, "%s - envelope should echo the request method", context)

	return apiErr
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *authclient.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// getStatus does a raw GET and returns the HTTP status code.
func getStatus(t *testing.T, url string) int {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}
