package auth

import (
	"time"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/metrics"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"
	"jobportal-auth/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

const horizonTolerance = time.Minute

// RefreshAccessToken exchanges the access token embedded in tok for a new one. It returns tok
// itself when there is nothing to refresh or the refresh failed, and a refreshed copy
// otherwise. The new token is assumed valid for the configured refresh horizon.
func RefreshAccessToken(ctx *middlewares.AppContext, tok *session.Token) *session.Token {
	if tok == nil || tok.Subject == "" {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return tok
	}

	resp, err := ctx.Identity.RefreshToken(ctx, models.RefreshTokenRequest{ID: tok.Subject})
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeError).Inc()
		ctx.Logger.Error("Error refreshing access token", "user_id", tok.Subject, "error", err)
		return tok
	}

	if resp == nil || !resp.Success || resp.Data == nil {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeRejected).Inc()
		var message string
		if resp != nil {
			message = resp.Message
		}
		ctx.Logger.Warn("Access token refresh rejected", "user_id", tok.Subject, "message", message)
		return tok
	}

	horizon := refreshHorizon(ctx.Config)
	now := time.Now()

	refreshed := tok.Clone()
	refreshed.AccessToken = resp.Data.NewToken
	refreshed.AccessTokenExpires = now.Add(horizon).UnixMilli()

	logHorizonMismatch(ctx, resp.Data.NewToken, now.Add(horizon))

	metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return refreshed
}

func refreshHorizon(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Auth.RefreshHorizon <= 0 {
		return config.DefaultAuthConfig.RefreshHorizon
	}
	return cfg.Auth.RefreshHorizon
}

// logHorizonMismatch reports when the identity API grants a token whose own exp claim
// disagrees with the assumed expiry. Opaque tokens are ignored.
func logHorizonMismatch(ctx *middlewares.AppContext, rawToken string, assumed time.Time) {
	parsed, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{})
	if err != nil {
		return
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	diff := exp.Time.Sub(assumed)
	if diff < -horizonTolerance || diff > horizonTolerance {
		ctx.Logger.Info("Access token expiry differs from refresh horizon",
			"remote_expires_at", exp.Time.UTC(),
			"assumed_expires_at", assumed.UTC(),
			"difference", diff.Round(time.Second).String())
	}
}
