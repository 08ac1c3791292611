package handlers

import (
	"errors"
	"net/http"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"
)

type credentialAuthenticator func(*middlewares.AppContext, *auth.Credentials) (*models.User, error)

// credentialLogin reads the submitted credentials, checks the CSRF token and signs the user in
// through authenticate.
func credentialLogin(authenticate credentialAuthenticator) middlewares.AppHandler {
	return func(ctx *middlewares.AppContext) {
		creds, err := auth.CredentialsFromRequest(ctx.Request)
		if err != nil {
			ctx.Logger.Debug("Failed to read credentials", "error", err)
			ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
			return
		}

		if !auth.VerifyCSRFToken(ctx, creds.CSRFToken) {
			ctx.Logger.Warn("CSRF token missing or invalid", "path", ctx.Request.URL.Path)
			ctx.SetJSONError(http.StatusForbidden, "invalid csrf token")
			return
		}

		user, err := authenticate(ctx, creds)
		if err != nil {
			if errors.Is(err, auth.ErrRemoteUnavailable) {
				ctx.Logger.Warn("Identity service unavailable during login", "error", err)
			}
			ctx.SetJSONError(http.StatusUnauthorized, "authentication failed")
			return
		}

		tok, err := auth.IssueSession(ctx, user)
		if err != nil {
			ctx.Logger.Error("Failed to issue session", "user_id", user.ID, "error", err)
			ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		ctx.Logger.Info("User successfully authenticated",
			"user_id", user.ID,
			"username", user.UserName,
			"email", RedactEmail(user.Email),
		)

		ctx.WriteJSON(http.StatusOK, LoginResponse{
			URL:     safeCallbackURL(ctx.Config.Auth.BaseURL, creds.CallbackURL),
			Session: tok.Session(),
		})
	}
}

var (
	POSTCredentialsCallbackHandler = credentialLogin(auth.AuthenticateUser)
	POSTTokenCallbackHandler       = credentialLogin(auth.AuthenticateToken)
	POSTOTPCallbackHandler         = credentialLogin(auth.ChangePasswordWithOTP)
	POSTResetPasswordHandler       = credentialLogin(auth.ResetPassword)
)
