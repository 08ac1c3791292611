package auth

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func testGoogleProvider() *GoogleProvider {
	return &GoogleProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.example.com/o/oauth2/auth",
				TokenURL: "https://accounts.example.com/token",
			},
			Scopes:      []string{"openid", "profile", "email"},
			RedirectURL: "http://localhost:3000" + googleCallbackPath,
		},
	}
}

func TestGoogleProvider_StartLogin(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/signin/google")
	defer tc.Finish()

	var state, nonce, verifier string
	tc.MockFlowSession.EXPECT().SetOauthState(tc.AppContext, gomock.Any()).
		Do(func(_ *middlewares.AppContext, v string) { state = v }).Times(1)
	tc.MockFlowSession.EXPECT().SetOauthNonce(tc.AppContext, gomock.Any()).
		Do(func(_ *middlewares.AppContext, v string) { nonce = v }).Times(1)
	tc.MockFlowSession.EXPECT().SetOauthCodeVerifier(tc.AppContext, gomock.Any()).
		Do(func(_ *middlewares.AppContext, v string) { verifier = v }).Times(1)

	authURL, err := testGoogleProvider().StartLogin(tc.AppContext)
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	q := parsed.Query()

	assert.Equal(t, "accounts.example.com", parsed.Host)
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, nonce, q.Get("nonce"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, oauth2.S256ChallengeFromVerifier(verifier), q.Get("code_challenge"))
	assert.Equal(t, "http://localhost:3000/api/auth/callback/google", q.Get("redirect_uri"))
	assert.NotEmpty(t, state)
	assert.NotEqual(t, state, nonce)
}

func TestGoogleProvider_HandleCallbackErrors(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		storedState string
		expectState bool
		wantCode    string
		wantMessage string
	}{
		{
			name:        "provider denied access",
			query:       "?error=access_denied",
			wantCode:    ErrorCodeAccessDenied,
			wantMessage: "access_denied",
		},
		{
			name:        "provider error",
			query:       "?error=server_error&error_description=boom",
			wantCode:    ErrorCodeOAuthCallback,
			wantMessage: "boom",
		},
		{
			name:        "no state in session",
			query:       "?state=abc&code=xyz",
			expectState: true,
			wantCode:    ErrorCodeOAuthCallback,
			wantMessage: "no oauth state found in session",
		},
		{
			name:        "state mismatch",
			query:       "?state=abc&code=xyz",
			storedState: "different",
			expectState: true,
			wantCode:    ErrorCodeOAuthCallback,
			wantMessage: "invalid state parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback/google"+tt.query)
			defer tc.Finish()

			if tt.expectState {
				tc.MockFlowSession.EXPECT().GetOauthState(tc.AppContext).Return(tt.storedState).Times(1)
			}

			profile, token, err := testGoogleProvider().HandleCallback(tc.AppContext)

			assert.Nil(t, profile)
			assert.Empty(t, token)

			var oidcErr *OIDCError
			require.True(t, errors.As(err, &oidcErr))
			assert.Equal(t, tt.wantCode, oidcErr.Code)
			assert.Contains(t, oidcErr.Message, tt.wantMessage)
		})
	}
}

func TestGoogleProvider_HandleCallbackMissingCode(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/callback/google?state=abc")
	defer tc.Finish()

	tc.MockFlowSession.EXPECT().GetOauthState(tc.AppContext).Return("abc").Times(1)
	tc.MockFlowSession.EXPECT().ClearOauthState(tc.AppContext).Times(1)

	_, _, err := testGoogleProvider().HandleCallback(tc.AppContext)

	var oidcErr *OIDCError
	require.True(t, errors.As(err, &oidcErr))
	assert.Equal(t, "no authorization code received", oidcErr.Message)
}

func TestGetPreferredValue(t *testing.T) {
	assert.Equal(t, "b", getPreferredValue("", "b", "c"))
	assert.Equal(t, "", getPreferredValue("", ""))
}
