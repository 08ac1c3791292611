package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/cookies"
	"jobportal-auth/internal/storage"
)

type AppContext struct {
	context.Context
	Config        *config.Config
	Logger        *slog.Logger
	Cookies       *cookies.Policy
	Sessions      SessionCodec
	FlowSession   FlowSessionProvider
	OAuthProvider OAuthProvider
	Identity      IdentityClient
	// Storage is nil unless flow sessions are kept in postgres.
	Storage storage.StorageProvider

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:       r.Context(),
				Config:        baseCtx.Config,
				Logger:        baseCtx.Logger,
				Cookies:       baseCtx.Cookies,
				Sessions:      baseCtx.Sessions,
				FlowSession:   baseCtx.FlowSession,
				OAuthProvider: baseCtx.OAuthProvider,
				Identity:      baseCtx.Identity,
				Storage:       baseCtx.Storage,
				Request:       r,
				Response:      w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

// Jar exposes the transient, script-readable cookies of the current request.
func (ctx *AppContext) Jar() *cookies.Jar {
	return cookies.NewJar(ctx.Cookies, ctx.Request, ctx.Response)
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, policy *cookies.Policy, codec SessionCodec, flowSession FlowSessionProvider, oauthProvider OAuthProvider, identity IdentityClient, db storage.StorageProvider) *AppContext {
	return &AppContext{
		Context:       ctx,
		Config:        cfg,
		Logger:        logger,
		Cookies:       policy,
		Sessions:      codec,
		FlowSession:   flowSession,
		OAuthProvider: oauthProvider,
		Identity:      identity,
		Storage:       db,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
