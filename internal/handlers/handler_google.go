package handlers

import (
	"errors"
	"net/http"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/cookies"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"
)

func GETGoogleLoginHandler(ctx *middlewares.AppContext) {
	if ctx.OAuthProvider == nil {
		ctx.SetJSONError(http.StatusNotFound, "provider not configured")
		return
	}

	query := ctx.Request.URL.Query()

	if userType := query.Get("userType"); userType != "" {
		ctx.Jar().Set(cookies.UserType, userType)
	}

	callbackURL := safeCallbackURL(ctx.Config.Auth.BaseURL, query.Get("callbackUrl"))
	ctx.Cookies.Write(ctx.Response, ctx.Cookies.CallbackURL(), callbackURL, cookies.TransientLifetime)

	authURL, err := ctx.OAuthProvider.StartLogin(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to start login", "provider", ctx.OAuthProvider.Name(), "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Debug("Redirecting to OAuth provider", "url", authURL)

	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":       "redirect_required",
		"redirect_url": authURL,
	})
}

func GETGoogleCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OAuthProvider == nil {
		redirectToError(ctx, auth.ErrorCodeConfiguration)
		return
	}

	profile, accessToken, err := ctx.OAuthProvider.HandleCallback(ctx)
	if err != nil {
		code := auth.ErrorCodeOAuthCallback
		var oidcErr *auth.OIDCError
		if errors.As(err, &oidcErr) {
			code = oidcErr.Code
		}
		ctx.Logger.Warn("OAuth callback failed", "provider", ctx.OAuthProvider.Name(), "error", err)
		redirectToError(ctx, code)
		return
	}

	user, ok := auth.LinkSocialLogin(ctx, profile, accessToken)
	if !ok {
		redirectToError(ctx, auth.ErrorCodeAccessDenied)
		return
	}

	if user == nil {
		userType, _ := ctx.Jar().Get(cookies.UserType)
		user = userFromProfile(profile, userType)
	}

	if _, err := auth.IssueSession(ctx, user); err != nil {
		ctx.Logger.Error("Failed to issue session", "email", RedactEmail(profile.Email), "error", err)
		redirectToError(ctx, auth.ErrorCodeOAuthCallback)
		return
	}

	ctx.Jar().Delete(cookies.UserType)

	callbackURL := ctx.Cookies.Read(ctx.Request, ctx.Cookies.CallbackURL())
	ctx.Cookies.Clear(ctx.Response, ctx.Cookies.CallbackURL())

	ctx.Logger.Info("User successfully authenticated",
		"provider", ctx.OAuthProvider.Name(),
		"email", RedactEmail(profile.Email),
	)

	ctx.Redirect(safeCallbackURL(ctx.Config.Auth.BaseURL, callbackURL), http.StatusFound)
}

// userFromProfile is used when the identity API accepted the link but returned no account.
func userFromProfile(profile *models.SocialProfile, userType string) *models.User {
	firstName, lastName := auth.DivideName(profile.Name)
	return &models.User{
		ID:        profile.Email,
		Email:     profile.Email,
		FirstName: firstName,
		LastName:  lastName,
		Photo:     profile.Picture,
		Type:      userType,
	}
}
