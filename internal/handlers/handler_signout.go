package handlers

import (
	"net/http"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/middlewares"
)

func POSTSignOutHandler(ctx *middlewares.AppContext) {
	creds, err := auth.CredentialsFromRequest(ctx.Request)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if !auth.VerifyCSRFToken(ctx, creds.CSRFToken) {
		ctx.Logger.Warn("CSRF token missing or invalid", "path", ctx.Request.URL.Path)
		ctx.SetJSONError(http.StatusForbidden, "invalid csrf token")
		return
	}

	sess := auth.GetSafeSession(ctx)

	auth.ClearSession(ctx)
	ctx.Cookies.Clear(ctx.Response, ctx.Cookies.CallbackURL())

	if ctx.FlowSession != nil {
		if err := ctx.FlowSession.Destroy(ctx); err != nil {
			ctx.Logger.Warn("Failed to destroy flow session", "error", err)
		}
	}

	if sess != nil {
		ctx.Logger.Info("User logged out", "user_id", sess.User.ID, "username", sess.User.UserName)
	}

	ctx.WriteJSON(http.StatusOK, SignOutResponse{URL: safeCallbackURL(ctx.Config.Auth.BaseURL, creds.CallbackURL)})
}
