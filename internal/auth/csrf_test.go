package auth

import (
	"net/http"
	"strings"
	"testing"

	"jobportal-auth/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFToken_IssueAndVerify(t *testing.T) {
	issue := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/csrf")
	defer issue.Finish()

	token := IssueCSRFToken(issue.AppContext)
	require.Len(t, token, 2*csrfTokenBytes)

	cookie := issue.ResponseCookie("next-auth.csrf-token")
	require.NotNil(t, cookie)
	assert.True(t, strings.HasPrefix(cookie.Value, token+"|"))
	assert.True(t, cookie.HttpOnly)

	verify := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/callback/credentials")
	verify.WithCookie(cookie)
	defer verify.Finish()

	assert.True(t, VerifyCSRFToken(verify.AppContext, token))
	assert.False(t, VerifyCSRFToken(verify.AppContext, "not-the-token"))
	assert.False(t, VerifyCSRFToken(verify.AppContext, ""))
	assert.Equal(t, token, IssueCSRFToken(verify.AppContext), "an existing valid cookie is reused")
}

func TestCSRFToken_ForgedCookieRejected(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/callback/credentials")
	tc.WithCookie(&http.Cookie{Name: "next-auth.csrf-token", Value: "attacker|deadbeef"})
	defer tc.Finish()

	assert.False(t, VerifyCSRFToken(tc.AppContext, "attacker"))
}

func TestCSRFToken_HostPrefixOnHTTPS(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/csrf")
	tc.WithHTTPS()
	defer tc.Finish()

	IssueCSRFToken(tc.AppContext)

	cookie := tc.ResponseCookie("__Host-next-auth.csrf-token")
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.Empty(t, cookie.Domain)
}
