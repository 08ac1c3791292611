package handlers

import (
	"net/http"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/middlewares"
)

// GETSessionHandler returns the current session, or an empty object when logged out.
func GETSessionHandler(ctx *middlewares.AppContext) {
	sess := auth.GetSafeSession(ctx)
	if sess == nil {
		ctx.WriteJSON(http.StatusOK, struct{}{})
		return
	}

	ctx.WriteJSON(http.StatusOK, sess)
}

func GETProvidersHandler(ctx *middlewares.AppContext) {
	base := ctx.Config.Auth.BaseURL

	providers := map[string]ProviderInfo{}
	for _, id := range []string{"credentials", "token", "otp"} {
		providers[id] = ProviderInfo{
			ID:          id,
			Name:        id,
			Type:        "credentials",
			SignInURL:   base + "/api/auth/callback/" + id,
			CallbackURL: base + "/api/auth/callback/" + id,
		}
	}

	if ctx.OAuthProvider != nil {
		name := ctx.OAuthProvider.Name()
		providers[name] = ProviderInfo{
			ID:          name,
			Name:        name,
			Type:        "oauth",
			SignInURL:   base + "/api/auth/signin/" + name,
			CallbackURL: base + "/api/auth/callback/" + name,
		}
	}

	ctx.WriteJSON(http.StatusOK, providers)
}
