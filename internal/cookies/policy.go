package cookies

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	PrefixSecure = "__Secure-"
	PrefixHost   = "__Host-"

	baseSessionToken = "next-auth.session-token"
	baseCallbackURL  = "next-auth.callback-url"
	baseCSRFToken    = "next-auth.csrf-token"
)

// Spec is the name and attribute set of one cookie.
type Spec struct {
	Name     string
	HttpOnly bool
	SameSite http.SameSite
	Path     string
	Secure   bool
}

// Policy decides cookie naming and flags for the deployment. It is computed once at
// startup and is safe for concurrent use.
type Policy struct {
	IsHTTPS  bool
	BaseURL  string
	flowName string
}

// Resolve computes the policy. An explicit override wins; otherwise the base URL must start
// with https://. An unset base URL resolves to plain HTTP naming, since prefixed cookies
// are rejected outright by browsers on HTTP and would break login.
func Resolve(logger *slog.Logger, baseURL string, override *bool, environment string) *Policy {
	isHTTPS := false
	source := "base_url"

	switch {
	case override != nil:
		isHTTPS = *override
		source = "override"
	case baseURL != "":
		isHTTPS = strings.HasPrefix(baseURL, "https://")
	default:
		source = "default"
	}

	if logger != nil {
		logger.Info("Resolved cookie policy",
			"base_url", baseURL,
			"is_https", isHTTPS,
			"source", source,
			"environment", environment,
		)
	}

	return &Policy{IsHTTPS: isHTTPS, BaseURL: baseURL, flowName: "next-auth.flow"}
}

// WithFlowName overrides the base name of the OAuth flow cookie.
func (p *Policy) WithFlowName(name string) *Policy {
	if name != "" {
		p.flowName = name
	}
	return p
}

func (p *Policy) spec(base, securePrefix string) Spec {
	name := base
	if p.IsHTTPS {
		name = securePrefix + base
	}
	return Spec{
		Name:     name,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		Secure:   p.IsHTTPS,
	}
}

func (p *Policy) SessionToken() Spec {
	return p.spec(baseSessionToken, PrefixSecure)
}

func (p *Policy) CallbackURL() Spec {
	return p.spec(baseCallbackURL, PrefixSecure)
}

func (p *Policy) CSRFToken() Spec {
	return p.spec(baseCSRFToken, PrefixHost)
}

func (p *Policy) Flow() Spec {
	return p.spec(p.flowName, PrefixSecure)
}

// Names lists every HttpOnly cookie the policy emits.
func (p *Policy) Names() []string {
	return []string{p.SessionToken().Name, p.CallbackURL().Name, p.CSRFToken().Name, p.Flow().Name}
}

// Cookie builds an *http.Cookie for spec. maxAge <= 0 produces a session cookie.
func (s Spec) Cookie(value string, maxAge time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     s.Path,
		HttpOnly: s.HttpOnly,
		SameSite: s.SameSite,
		Secure:   s.Secure,
	}

	// __Host- cookies must be Secure, Path=/ and must not carry a Domain.
	if strings.HasPrefix(s.Name, PrefixHost) {
		c.Path = "/"
		c.Domain = ""
		c.Secure = true
	}
	if strings.HasPrefix(s.Name, PrefixSecure) {
		c.Secure = true
	}

	if maxAge > 0 {
		c.MaxAge = int(maxAge.Seconds())
		c.Expires = time.Now().Add(maxAge)
	}

	return c
}

func (p *Policy) Write(w http.ResponseWriter, s Spec, value string, maxAge time.Duration) {
	http.SetCookie(w, s.Cookie(value, maxAge))
}

func (p *Policy) Clear(w http.ResponseWriter, s Spec) {
	c := s.Cookie("", 0)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// Read returns the value of the cookie described by s, or "" when absent.
func (p *Policy) Read(r *http.Request, s Spec) string {
	c, err := r.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return c.Value
}
