package cookies

import (
	"net/http"
	"net/url"
	"time"
)

// Transient cookies hand state between the OAuth redirect and callback steps and surface
// results to the client UI, so they are readable from script. Values are percent-encoded
// the way decodeURIComponent expects: spaces are %20, never '+'.
const (
	UserType  = "userType"
	User      = "user"
	UserError = "user-error"

	TransientLifetime = 10 * time.Minute
)

// Jar reads and writes named string values for a single request/response pair.
type Jar struct {
	policy *Policy
	r      *http.Request
	w      http.ResponseWriter
}

func NewJar(policy *Policy, r *http.Request, w http.ResponseWriter) *Jar {
	return &Jar{policy: policy, r: r, w: w}
}

func (j *Jar) spec(name string) Spec {
	return Spec{
		Name:     name,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		Secure:   j.policy != nil && j.policy.IsHTTPS,
	}
}

// Get returns the decoded value of name and whether it was present.
func (j *Jar) Get(name string) (string, bool) {
	if j.r == nil {
		return "", false
	}

	c, err := j.r.Cookie(name)
	if err != nil {
		return "", false
	}

	value, err := url.PathUnescape(c.Value)
	if err != nil {
		return c.Value, true
	}

	return value, true
}

func (j *Jar) Set(name, value string) {
	if j.w == nil {
		return
	}
	http.SetCookie(j.w, j.spec(name).Cookie(url.PathEscape(value), TransientLifetime))
}

func (j *Jar) Delete(name string) {
	if j.w == nil {
		return
	}
	c := j.spec(name).Cookie("", 0)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(j.w, c)
}
