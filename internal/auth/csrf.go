package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"jobportal-auth/internal/middlewares"
)

// IssueCSRFToken returns the double-submit token of the current browser, creating and
// storing a new one when the cookie is absent or was not signed with our secret.
func IssueCSRFToken(ctx *middlewares.AppContext) string {
	if token, ok := csrfTokenFromCookie(ctx); ok {
		return token
	}

	b := make([]byte, csrfTokenBytes)
	_, _ = rand.Read(b)
	token := hex.EncodeToString(b)

	ctx.Cookies.Write(ctx.Response, ctx.Cookies.CSRFToken(), token+"|"+csrfHash(token, ctx.Config.Auth.Secret), 0)
	return token
}

// VerifyCSRFToken reports whether submitted matches the token bound to the CSRF cookie.
func VerifyCSRFToken(ctx *middlewares.AppContext, submitted string) bool {
	if submitted == "" {
		return false
	}

	token, ok := csrfTokenFromCookie(ctx)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) == 1
}

func csrfTokenFromCookie(ctx *middlewares.AppContext) (string, bool) {
	value := ctx.Cookies.Read(ctx.Request, ctx.Cookies.CSRFToken())
	token, hash, found := strings.Cut(value, "|")
	if !found || token == "" {
		return "", false
	}

	expected := csrfHash(token, ctx.Config.Auth.Secret)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(expected)) != 1 {
		return "", false
	}

	return token, true
}

func csrfHash(token, secret string) string {
	sum := sha256.Sum256([]byte(token + secret))
	return hex.EncodeToString(sum[:])
}
