package handlers

import (
	"net/http"
	"testing"

	"jobportal-auth/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGETSessionHandler_LoggedOut(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	defer tc.Finish()

	tc.CallHandler(GETSessionHandler)

	tc.AssertStatus(t, http.StatusOK)
	assert.Empty(t, tc.GetJSONResponse(t))
	tc.AssertNoLogs(t)
}

func TestGETSessionHandler_ReturnsSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	defer tc.Finish()
	tc.WithSession(t, testToken())

	tc.CallHandler(GETSessionHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONObject(t, "user", map[string]interface{}{
		"id":        "42",
		"userName":  "jdoe",
		"companyId": "7",
	})
	tc.AssertJSONString(t, "accessToken", "access-1")
}

func TestGETSessionHandler_UnreadableCookieIsLoggedOut(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	defer tc.Finish()
	tc.WithCookie(&http.Cookie{Name: "next-auth.session-token", Value: "garbage"})

	tc.CallHandler(GETSessionHandler)

	tc.AssertStatus(t, http.StatusOK)
	assert.Empty(t, tc.GetJSONResponse(t))
}

func TestGETProvidersHandler(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/providers")
	defer tc.Finish()

	tc.MockOAuth.EXPECT().Name().Return("google").AnyTimes()

	tc.CallHandler(GETProvidersHandler)

	response := tc.GetJSONResponse(t)
	require.Contains(t, response, "credentials")
	require.Contains(t, response, "google")

	google := response["google"].(map[string]interface{})
	assert.Equal(t, "oauth", google["type"])
	assert.Equal(t, "http://localhost:3000/api/auth/signin/google", google["signinUrl"])
}

func TestGETProvidersHandler_WithoutGoogle(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/providers")
	defer tc.Finish()
	tc.WithoutOAuthProvider()

	tc.CallHandler(GETProvidersHandler)

	response := tc.GetJSONResponse(t)
	assert.Len(t, response, 3)
	assert.NotContains(t, response, "google")
}
