package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"jobportal-auth/internal/models"
	"jobportal-auth/internal/session"
	"jobportal-auth/internal/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expiredToken() *session.Token {
	return &session.Token{
		Subject:            "42",
		UserName:           "jdoe",
		CompanyID:          "7",
		AccessToken:        "stale",
		AccessTokenExpires: time.Now().Add(-time.Minute).UnixMilli(),
	}
}

func TestRefreshAccessToken_NoSubjectReturnsSameToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
	defer tc.Finish()

	tok := &session.Token{AccessToken: "anonymous"}

	assert.Same(t, tok, RefreshAccessToken(tc.AppContext, tok))
	assert.Nil(t, RefreshAccessToken(tc.AppContext, nil))
}

func TestRefreshAccessToken_SuccessUsesFixedHorizon(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
	defer tc.Finish()

	tc.MockIdentity.EXPECT().
		RefreshToken(gomock.Any(), models.RefreshTokenRequest{ID: "42"}).
		Return(&models.Response[models.RefreshedToken]{Success: true, Data: &models.RefreshedToken{NewToken: "fresh"}}, nil).
		Times(1)

	tok := expiredToken()
	refreshed := RefreshAccessToken(tc.AppContext, tok)

	require.NotSame(t, tok, refreshed)
	assert.Equal(t, "fresh", refreshed.AccessToken)
	assert.InDelta(t, time.Now().Add(15*time.Minute).UnixMilli(), refreshed.AccessTokenExpires, float64(5*time.Second/time.Millisecond))
	assert.Equal(t, "jdoe", refreshed.UserName)
	assert.Equal(t, "stale", tok.AccessToken, "original token must not be mutated")
}

func TestRefreshAccessToken_FailureKeepsOriginal(t *testing.T) {
	tests := []struct {
		name string
		resp *models.Response[models.RefreshedToken]
		err  error
		log  slog.Level
		msg  string
	}{
		{name: "transport error", err: errors.New("boom"), log: slog.LevelError, msg: "Error refreshing access token"},
		{name: "rejected", resp: &models.Response[models.RefreshedToken]{Success: false, Message: "expired"}, log: slog.LevelWarn, msg: "Access token refresh rejected"},
		{name: "no payload", resp: &models.Response[models.RefreshedToken]{Success: true}, log: slog.LevelWarn, msg: "Access token refresh rejected"},
		{name: "nil response", log: slog.LevelWarn, msg: "Access token refresh rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
			defer tc.Finish()

			tc.MockIdentity.EXPECT().RefreshToken(gomock.Any(), gomock.Any()).Return(tt.resp, tt.err).Times(1)

			tok := expiredToken()
			assert.Same(t, tok, RefreshAccessToken(tc.AppContext, tok))
			tc.AssertLogsContainMessage(t, tt.log, tt.msg)
		})
	}
}

func TestRefreshAccessToken_LogsRemoteExpiryMismatch(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
	defer tc.Finish()

	remote, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("identity-api-key"))
	require.NoError(t, err)

	tc.MockIdentity.EXPECT().
		RefreshToken(gomock.Any(), gomock.Any()).
		Return(&models.Response[models.RefreshedToken]{Success: true, Data: &models.RefreshedToken{NewToken: remote}}, nil).
		Times(1)

	refreshed := RefreshAccessToken(tc.AppContext, expiredToken())

	assert.Equal(t, remote, refreshed.AccessToken)
	tc.AssertLogsContainMessage(t, slog.LevelInfo, "Access token expiry differs from refresh horizon")
}

func TestRefreshAccessToken_ConfiguredHorizon(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/")
	defer tc.Finish()
	tc.AppContext.Config.Auth.RefreshHorizon = 5 * time.Minute

	tc.MockIdentity.EXPECT().
		RefreshToken(gomock.Any(), gomock.Any()).
		Return(&models.Response[models.RefreshedToken]{Success: true, Data: &models.RefreshedToken{NewToken: "opaque"}}, nil).
		Times(1)

	refreshed := RefreshAccessToken(tc.AppContext, expiredToken())

	assert.InDelta(t, time.Now().Add(5*time.Minute).UnixMilli(), refreshed.AccessTokenExpires, float64(5*time.Second/time.Millisecond))
	tc.AssertLogCount(t, slog.LevelInfo, 0)
}
