package handlers

import (
	"net/url"
	"strings"

	"jobportal-auth/internal/middlewares"
)

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// safeCallbackURL keeps relative paths and absolute URLs on the same origin as baseURL.
// Anything else falls back to "/".
func safeCallbackURL(baseURL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "/"
	}

	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, "/\\") {
		return raw
	}

	target, err := url.Parse(raw)
	if err != nil {
		return "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return "/"
	}

	if target.Scheme == base.Scheme && target.Host == base.Host {
		return raw
	}

	return "/"
}

func redirectToError(ctx *middlewares.AppContext, code string) {
	ctx.Redirect(ctx.Config.Auth.Pages.Error+"?error="+url.QueryEscape(code), 302)
}
