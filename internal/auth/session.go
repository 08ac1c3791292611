package auth

import (
	"errors"
	"fmt"
	"time"

	"jobportal-auth/internal/metrics"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"
	"jobportal-auth/internal/session"
)

// IssueSession writes a fresh session cookie for user.
func IssueSession(ctx *middlewares.AppContext, user *models.User) (*session.Token, error) {
	if user == nil {
		return nil, fmt.Errorf("cannot issue session without a user")
	}

	tok := session.NewToken(user, time.Now(), refreshHorizon(ctx.Config))
	if err := writeSession(ctx, tok); err != nil {
		return nil, err
	}

	metrics.SessionsIssued.Inc()
	return tok, nil
}

func writeSession(ctx *middlewares.AppContext, tok *session.Token) error {
	raw, err := ctx.Sessions.Encode(tok)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ctx.Cookies.Write(ctx.Response, ctx.Cookies.SessionToken(), raw, ctx.Sessions.MaxAge())
	return nil
}

// LoadSession decodes the session cookie of the current request. An expired access token is
// refreshed and the cookie re-issued; a failed refresh keeps the old token.
func LoadSession(ctx *middlewares.AppContext) (*session.Token, error) {
	raw := ctx.Cookies.Read(ctx.Request, ctx.Cookies.SessionToken())

	tok, err := ctx.Sessions.Decode(raw)
	if err != nil {
		return nil, err
	}

	if !tok.AccessTokenExpired(time.Now()) {
		return tok, nil
	}

	refreshed := RefreshAccessToken(ctx, tok)
	if refreshed == tok {
		return tok, nil
	}

	if err := writeSession(ctx, refreshed); err != nil {
		ctx.Logger.Warn("Failed to re-issue refreshed session", "user_id", refreshed.Subject, "error", err)
	}

	return refreshed, nil
}

// GetSafeSession returns the current session, or nil when there is none or it cannot be
// read. It never fails.
func GetSafeSession(ctx *middlewares.AppContext) *models.Session {
	tok, err := LoadSession(ctx)
	if err == nil {
		return tok.Session()
	}

	switch {
	case errors.Is(err, session.ErrNoSession):
		metrics.SessionDecodeFailures.WithLabelValues(metrics.DecodeFailureNoSession).Inc()
		return nil
	case errors.Is(err, session.ErrDecryptionFailed):
		// sessions sealed under a previous secret
		metrics.SessionDecodeFailures.WithLabelValues(metrics.DecodeFailureDecryption).Inc()
		return nil
	case errors.Is(err, session.ErrExpired):
		metrics.SessionDecodeFailures.WithLabelValues(metrics.DecodeFailureExpired).Inc()
	default:
		metrics.SessionDecodeFailures.WithLabelValues(metrics.DecodeFailureMalformed).Inc()
	}

	if ctx.Config != nil && ctx.Config.IsDevelopment() {
		ctx.Logger.Warn("Error getting session", "error", err)
	}

	return nil
}

func ClearSession(ctx *middlewares.AppContext) {
	ctx.Cookies.Clear(ctx.Response, ctx.Cookies.SessionToken())
}
