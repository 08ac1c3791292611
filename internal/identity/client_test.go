package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(config.IdentityConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger)
}

func TestClient_SignIn_Success(t *testing.T) {
	var received models.SignInRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, signInPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"1","userName":"ada","email":"ada@example.com","token":"tok"}}`))
	})

	resp, err := client.SignIn(context.Background(), models.SignInRequest{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", received.Email)
	assert.Equal(t, "pw", received.Password)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "ada", resp.Data.UserName)
	assert.Equal(t, "tok", resp.Data.AccessToken)
}

func TestClient_RejectionIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"taken"}`))
	})

	resp, err := client.LinkSocialAccount(context.Background(), models.SocialLoginRequest{Email: "a@b.c"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "taken", resp.Message)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.RefreshToken(context.Background(), models.RefreshTokenRequest{ID: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, refreshTokenPath, statusErr.Endpoint)
}

func TestClient_RejectionEnvelopeOnErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "conflict", status: http.StatusConflict},
		{name: "bad request", status: http.StatusBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"success":false,"message":"Email already taken"}`))
			})

			resp, err := client.LinkSocialAccount(context.Background(), models.SocialLoginRequest{Email: "a@b.c"})
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.False(t, resp.Success)
			assert.Equal(t, "Email already taken", resp.Message)
		})
	}
}

func TestClient_ErrorStatusWithoutEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "json without success field", body: `{"error":"conflict"}`},
		{name: "success true on error status", body: `{"success":true,"message":"odd"}`},
		{name: "html", body: "<html>bad gateway</html>"},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.SignIn(context.Background(), models.SignInRequest{Email: "a@b.c"})
			assert.Nil(t, resp)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
			assert.Equal(t, tt.body, statusErr.Body)
		})
	}
}

func TestClient_StatusErrorBodyIsTruncated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(bytes.Repeat([]byte("x"), 4096))
	})

	_, err := client.SignIn(context.Background(), models.SignInRequest{})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Len(t, statusErr.Body, 1024)
}

func TestClient_RefreshToken_DecodesNewToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.RefreshTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user-7", req.ID)
		_, _ = w.Write([]byte(`{"success":true,"data":{"newToken":"fresh"}}`))
	})

	resp, err := client.RefreshToken(context.Background(), models.RefreshTokenRequest{ID: "user-7"})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "fresh", resp.Data.NewToken)
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.VerifyUser(context.Background(), models.VerifyUserRequest{Token: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_TransportError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(config.IdentityConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, logger)

	_, err := client.ForgetPassword(context.Background(), models.ForgetPasswordRequest{Email: "a@b.c", OTP: "1234"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ResetPassword(ctx, models.ResetPasswordRequest{Token: "t", NewPassword: "n"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
