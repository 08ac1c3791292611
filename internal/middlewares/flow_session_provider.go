package middlewares

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=flow_session_provider.go -destination=../mocks/flow_session.go -package=mocks

// FlowSessionProvider keeps the short-lived state of an in-flight OAuth redirect.
type FlowSessionProvider interface {
	SetOauthState(ctx *AppContext, state string)
	GetOauthState(ctx *AppContext) string
	ClearOauthState(ctx *AppContext)
	SetOauthNonce(ctx *AppContext, nonce string)
	GetOauthNonce(ctx *AppContext) string
	ClearOauthNonce(ctx *AppContext)
	SetOauthCodeVerifier(ctx *AppContext, verifier string)
	GetOauthCodeVerifier(ctx *AppContext) string
	ClearOauthCodeVerifier(ctx *AppContext)
	Destroy(ctx *AppContext) error

	// Ping reports whether the backing session store is reachable.
	Ping(ctx context.Context) error

	LoadAndSave(next http.Handler) http.Handler
}
