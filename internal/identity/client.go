package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/metrics"
	"jobportal-auth/internal/models"
)

const (
	signInPath         = "/api/auth/signin"
	verifyUserPath     = "/api/auth/verify-user"
	forgetPasswordPath = "/api/auth/forget-password"
	resetPasswordPath  = "/api/users/reset-password"
	gmailLoginPath     = "/api/auth/gmail-login"
	refreshTokenPath   = "/api/auth/refresh-token"
)

const (
	maxErrorBodySize   = 64 << 10
	maxStatusErrorBody = 1024
)

var ErrUnexpectedStatus = errors.New("unexpected status from identity api")

// StatusError carries the HTTP status of a non-2xx identity API response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.IdentityConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *Client) SignIn(ctx context.Context, req models.SignInRequest) (*models.Response[models.User], error) {
	return post[models.User](ctx, c, signInPath, req)
}

func (c *Client) VerifyUser(ctx context.Context, req models.VerifyUserRequest) (*models.Response[models.User], error) {
	return post[models.User](ctx, c, verifyUserPath, req)
}

func (c *Client) ForgetPassword(ctx context.Context, req models.ForgetPasswordRequest) (*models.Response[models.User], error) {
	return post[models.User](ctx, c, forgetPasswordPath, req)
}

func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.Response[models.User], error) {
	return post[models.User](ctx, c, resetPasswordPath, req)
}

// LinkSocialAccount signs in, or registers, the owner of an external provider profile.
func (c *Client) LinkSocialAccount(ctx context.Context, req models.SocialLoginRequest) (*models.Response[models.User], error) {
	return post[models.User](ctx, c, gmailLoginPath, req)
}

func (c *Client) RefreshToken(ctx context.Context, req models.RefreshTokenRequest) (*models.Response[models.RefreshedToken], error) {
	return post[models.RefreshedToken](ctx, c, refreshTokenPath, req)
}

func post[T any](ctx context.Context, c *Client, path string, payload any) (*models.Response[T], error) {
	start := time.Now()
	defer func() {
		metrics.IdentityRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.do(ctx, path, payload)
	if err != nil {
		metrics.IdentityRequestErrors.WithLabelValues(path).Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if envelope, ok := rejectionEnvelope[T](body); ok {
			c.logger.Debug("identity api rejected request", "endpoint", path, "status", resp.StatusCode, "message", envelope.Message)
			return envelope, nil
		}

		metrics.IdentityRequestErrors.WithLabelValues(path).Inc()
		if len(body) > maxStatusErrorBody {
			body = body[:maxStatusErrorBody]
		}
		return nil, &StatusError{Endpoint: path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope models.Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.IdentityRequestErrors.WithLabelValues(path).Inc()
		return nil, fmt.Errorf("%s: failed to decode response: %w", path, err)
	}

	if !envelope.Success {
		c.logger.Debug("identity api rejected request", "endpoint", path, "message", envelope.Message)
	}

	return &envelope, nil
}

// rejectionEnvelope reports whether a non-2xx body is a well-formed
// {"success": false, ...} envelope. The identity API answers business
// rejections such as a duplicate email with 4xx statuses and a message.
func rejectionEnvelope[T any](body []byte) (*models.Response[T], bool) {
	var head struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(body, &head); err != nil || head.Success == nil || *head.Success {
		return nil, false
	}

	var envelope models.Response[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}
	return &envelope, true
}

func (c *Client) do(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", path, err)
	}

	return resp, nil
}
