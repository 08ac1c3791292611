package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/mocks"
	"jobportal-auth/internal/models"
	"jobportal-auth/internal/session"
	"jobportal-auth/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validToken() *session.Token {
	return &session.Token{
		Subject:            "42",
		Name:               "John Doe",
		UserName:           "jdoe",
		CompanyID:          "7",
		AccessToken:        "access-1",
		AccessTokenExpires: time.Now().Add(10 * time.Minute).UnixMilli(),
	}
}

func TestGetSafeSession_NoCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	defer tc.Finish()

	assert.Nil(t, GetSafeSession(tc.AppContext))
	tc.AssertNoLogs(t)
}

func TestGetSafeSession_Valid(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	tc.WithSession(t, validToken())
	defer tc.Finish()

	s := GetSafeSession(tc.AppContext)

	require.NotNil(t, s)
	assert.Equal(t, "42", s.User.ID)
	assert.Equal(t, "jdoe", s.User.UserName)
	assert.Equal(t, "7", s.User.CompanyID)
	assert.Equal(t, "access-1", s.AccessToken)
	assert.Nil(t, tc.ResponseCookie(tc.AppContext.Cookies.SessionToken().Name), "a valid session is not re-issued")
}

func TestGetSafeSession_RotatedSecretIsSilentInProduction(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	defer tc.Finish()

	oldCodec, err := session.NewCodec("a-previous-secret-that-was-rotated-away", time.Hour)
	require.NoError(t, err)
	raw, err := oldCodec.Encode(validToken())
	require.NoError(t, err)
	tc.WithCookie(&http.Cookie{Name: tc.AppContext.Cookies.SessionToken().Name, Value: raw})

	assert.Nil(t, GetSafeSession(tc.AppContext))
	tc.AssertNoLogs(t)
}

func TestGetSafeSession_RotatedSecretIsSilentInDevelopment(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	tc.WithEnvironment(config.EnvironmentDevelopment)
	defer tc.Finish()

	oldCodec, err := session.NewCodec("a-previous-secret-that-was-rotated-away", time.Hour)
	require.NoError(t, err)
	raw, err := oldCodec.Encode(validToken())
	require.NoError(t, err)
	tc.WithCookie(&http.Cookie{Name: tc.AppContext.Cookies.SessionToken().Name, Value: raw})

	assert.Nil(t, GetSafeSession(tc.AppContext))
	tc.AssertNoLogs(t)
}

func TestGetSafeSession_MalformedLoggedOnlyInDevelopment(t *testing.T) {
	for _, env := range []string{config.EnvironmentProduction, config.EnvironmentDevelopment} {
		t.Run(env, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
			tc.WithEnvironment(env)
			tc.WithCookie(&http.Cookie{Name: tc.AppContext.Cookies.SessionToken().Name, Value: "garbage"})
			defer tc.Finish()

			assert.Nil(t, GetSafeSession(tc.AppContext))

			if env == config.EnvironmentDevelopment {
				tc.AssertLogsContainMessage(t, slog.LevelWarn, "Error getting session")
			} else {
				tc.AssertNoLogs(t)
			}
		})
	}
}

func TestGetSafeSession_RefreshesExpiredAccessToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	tc.WithSession(t, expiredToken())
	defer tc.Finish()

	tc.MockIdentity.EXPECT().
		RefreshToken(gomock.Any(), models.RefreshTokenRequest{ID: "42"}).
		Return(&models.Response[models.RefreshedToken]{Success: true, Data: &models.RefreshedToken{NewToken: "fresh"}}, nil).
		Times(1)

	s := GetSafeSession(tc.AppContext)

	require.NotNil(t, s)
	assert.Equal(t, "fresh", s.AccessToken)

	reissued := tc.ResponseCookie(tc.AppContext.Cookies.SessionToken().Name)
	require.NotNil(t, reissued)
	decoded, err := tc.Codec.Decode(reissued.Value)
	require.NoError(t, err)
	assert.Equal(t, "fresh", decoded.AccessToken)
	assert.True(t, reissued.HttpOnly)
}

func TestGetSafeSession_FailedRefreshKeepsSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	tc.WithSession(t, expiredToken())
	defer tc.Finish()

	tc.MockIdentity.EXPECT().
		RefreshToken(gomock.Any(), gomock.Any()).
		Return(&models.Response[models.RefreshedToken]{Success: false}, nil).
		Times(1)

	s := GetSafeSession(tc.AppContext)

	require.NotNil(t, s)
	assert.Equal(t, "stale", s.AccessToken)
	assert.Nil(t, tc.ResponseCookie(tc.AppContext.Cookies.SessionToken().Name))
}

func TestIssueSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/callback/credentials")
	tc.WithHTTPS()
	defer tc.Finish()

	tok, err := IssueSession(tc.AppContext, testUser())
	require.NoError(t, err)
	assert.Equal(t, "42", tok.Subject)

	c := tc.ResponseCookie("__Secure-next-auth.session-token")
	require.NotNil(t, c)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), c.MaxAge)

	decoded, err := tc.Codec.Decode(c.Value)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", decoded.UserName)

	_, err = IssueSession(tc.AppContext, nil)
	assert.Error(t, err)
}

func TestClearSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/signout")
	defer tc.Finish()

	ClearSession(tc.AppContext)

	c := tc.ResponseCookie("next-auth.session-token")
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
}

func TestIssueSession_EncodeFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/callback/credentials")
	defer tc.Finish()

	codec := mocks.NewMockSessionCodec(tc.MockController)
	codec.EXPECT().Encode(gomock.Any()).Return("", errors.New("key unavailable"))
	tc.AppContext.Sessions = codec

	tok, err := IssueSession(tc.AppContext, &models.User{ID: "42"})

	assert.Nil(t, tok)
	assert.ErrorContains(t, err, "failed to encode session")
	assert.Nil(t, tc.ResponseCookie("next-auth.session-token"))
}

func TestIssueSession_NilUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/api/auth/callback/credentials")
	defer tc.Finish()

	_, err := IssueSession(tc.AppContext, nil)
	assert.Error(t, err)
}

func TestGetSafeSession_UnknownDecodeErrorLoggedInDevelopment(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/session")
	defer tc.Finish()
	tc.WithEnvironment(config.EnvironmentDevelopment)

	codec := mocks.NewMockSessionCodec(tc.MockController)
	codec.EXPECT().Decode(gomock.Any()).Return(nil, errors.New("unexpected"))
	tc.AppContext.Sessions = codec

	assert.Nil(t, GetSafeSession(tc.AppContext))
	tc.AssertLogsContainMessage(t, slog.LevelWarn, "Error getting session")
}
