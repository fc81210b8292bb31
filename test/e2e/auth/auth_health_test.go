package auth_test

import (
	"net/http"
	"testing"

	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness probe responds outside the /api
// prefix.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	require.Equal(t, http.StatusOK, getStatus(t, baseURL+"/livez"))

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness probe checks the database.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	require.Equal(t, http.StatusOK, getStatus(t, baseURL+"/readyz"))

	t.Logf("Readyz endpoint is healthy")
}

// TestHealthEndpoint verifies the detailed health report under /api.
func TestHealthEndpoint(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authclient.NewClient(baseURL)

	health, err := client.Health(t.Context())
	assertHealthy(t, health, err)

	require.NotEmpty(t, health.Version, "Health report should carry the build version")
	require.NotEmpty(t, health.Uptime, "Health report should carry uptime")
	require.NotNil(t, health.Checks, "Health report should carry dependency checks")
	require.Equal(t, "ok", health.Checks.Database, "Database check should pass")
	require.NotNil(t, health.Memory, "Health report should carry memory stats")
	require.Positive(t, health.Memory.Goroutines, "Goroutine count should be reported")
}
