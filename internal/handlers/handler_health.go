package handlers

import (
	"context"
	"net/http"
	"time"

	"jobportal-auth/internal/middlewares"
)

const healthCheckTimeout = 2 * time.Second

// HandlerHealth reports 503 when the flow session store or the database
// behind it cannot be reached.
func HandlerHealth(ctx *middlewares.AppContext) {
	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := ctx.FlowSession.Ping(pingCtx); err != nil {
		ctx.Logger.Warn("Health check failed", "component", "flow_sessions", "error", err)
		ctx.SetJSONStatus(http.StatusServiceUnavailable, "unavailable")
		return
	}

	if ctx.Storage != nil {
		if err := ctx.Storage.Ping(pingCtx); err != nil {
			ctx.Logger.Warn("Health check failed", "component", "database", "error", err)
			ctx.SetJSONStatus(http.StatusServiceUnavailable, "unavailable")
			return
		}
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
