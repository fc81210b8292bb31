package http

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

// dbProbeTimeout bounds the database ping so a wedged database can't stall
// the health endpoint.
const dbProbeTimeout = 5 * time.Second

// HealthHandler godoc
//
//	@Summary		Detailed health report
//	@Description	Returns service status, uptime, version, a database probe result and a
//	@Description	runtime memory snapshot. Meant for dashboards rather than orchestration;
//	@Description	the probes use /livez and /readyz.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authclient.HealthResponse	"status, uptime, version, checks, memory"
//	@Failure		503	{object}	authclient.HealthResponse	"database unreachable"
//	@Router			/api/health [get].
func HealthHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authclient.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(r.Context(), dbProbeTimeout)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		response := authclient.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
			Memory: &authclient.MemoryStats{
				AllocBytes:      mem.Alloc,
				TotalAllocBytes: mem.TotalAlloc,
				SysBytes:        mem.Sys,
				NumGC:           mem.NumGC,
				Goroutines:      runtime.NumGoroutine(),
			},
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
