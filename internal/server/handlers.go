package server

import (
	"time"

	"jobportal-auth/internal/handlers"
	"jobportal-auth/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter wires the public API. The flow session middleware must wrap the app context
// middleware so that handlers see the loaded flow session through AppContext.
func setupRouter(ctx *middlewares.AppContext, flowSessions middlewares.FlowSessionProvider) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(flowSessions.LoadAndSave)
	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/csrf", ctx.HandlerFunc(handlers.GETCSRFHandler))
			r.Get("/session", ctx.HandlerFunc(handlers.GETSessionHandler))
			r.Get("/providers", ctx.HandlerFunc(handlers.GETProvidersHandler))

			r.Post("/callback/credentials", ctx.HandlerFunc(handlers.POSTCredentialsCallbackHandler))
			r.Post("/callback/token", ctx.HandlerFunc(handlers.POSTTokenCallbackHandler))
			r.Post("/callback/otp", ctx.HandlerFunc(handlers.POSTOTPCallbackHandler))
			r.Post("/reset-password", ctx.HandlerFunc(handlers.POSTResetPasswordHandler))

			r.Get("/signin/google", ctx.HandlerFunc(handlers.GETGoogleLoginHandler))
			r.Get("/callback/google", ctx.HandlerFunc(handlers.GETGoogleCallbackHandler))

			r.Post("/signout", ctx.HandlerFunc(handlers.POSTSignOutHandler))
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/auth-gate", ctx.HandlerFunc(handlers.GETAuthGateHandler))
			r.Get("/me/{id}", ctx.HandlerFunc(handlers.GETProfileViewHandler))
			r.Get("/chrome", ctx.HandlerFunc(handlers.GETChromeHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
