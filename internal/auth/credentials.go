package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobportal-auth/internal/metrics"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"
)

// Credentials is the optional-field input of every credential based login flow.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	OTP         string `json:"otp"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
	CSRFToken   string `json:"csrfToken"`
	CallbackURL string `json:"callbackUrl"`
}

type credentialFlow string

const (
	flowPassword credentialFlow = metrics.LoginMethodCredentials
	flowToken    credentialFlow = metrics.LoginMethodToken
	flowOTP      credentialFlow = metrics.LoginMethodOTP
	flowReset    credentialFlow = metrics.LoginMethodReset
)

func (c *Credentials) validateFor(flow credentialFlow) error {
	if c == nil {
		return ErrMissingCredentials
	}

	var missing []string
	switch flow {
	case flowPassword:
		missing = appendIfEmpty(missing, "email", c.Email)
		missing = appendIfEmpty(missing, "password", c.Password)
	case flowOTP:
		missing = appendIfEmpty(missing, "email", c.Email)
		missing = appendIfEmpty(missing, "otp", c.OTP)
	case flowReset:
		missing = appendIfEmpty(missing, "token", c.Token)
		missing = appendIfEmpty(missing, "newPassword", c.NewPassword)
	case flowToken:
		if c.Token == "" && c.Email == "" && c.Password == "" {
			missing = append(missing, "token")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}

func appendIfEmpty(missing []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(missing, field)
	}
	return missing
}

// CredentialsFromRequest reads credentials from a JSON or form encoded body and fills any
// field still empty from the query string.
func CredentialsFromRequest(r *http.Request) (*Credentials, error) {
	creds := &Credentials{}

	if r.Body != nil && r.Body != http.NoBody {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			if err := json.NewDecoder(r.Body).Decode(creds); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to decode credentials: %w", err)
			}
		} else if err := r.ParseForm(); err == nil {
			fillFromValues(creds, r.PostForm.Get)
		}
	}

	fillFromValues(creds, r.URL.Query().Get)

	return creds, nil
}

func fillFromValues(creds *Credentials, get func(string) string) {
	fields := []struct {
		key string
		dst *string
	}{
		{"email", &creds.Email},
		{"password", &creds.Password},
		{"otp", &creds.OTP},
		{"token", &creds.Token},
		{"newPassword", &creds.NewPassword},
		{"csrfToken", &creds.CSRFToken},
		{"callbackUrl", &creds.CallbackURL},
	}

	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = get(f.key)
		}
	}
}

// AuthenticateUser signs a user in with email and password.
func AuthenticateUser(ctx *middlewares.AppContext, creds *Credentials) (*models.User, error) {
	if err := creds.validateFor(flowPassword); err != nil {
		metrics.LoginAttempts.WithLabelValues(string(flowPassword), metrics.OutcomeMissingData).Inc()
		return nil, err
	}

	resp, err := ctx.Identity.SignIn(ctx, models.SignInRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})

	return userFromResponse(ctx, flowPassword, resp, err)
}

// AuthenticateToken verifies a token or one-time password login. When creds is nil the
// values are read from the current request.
func AuthenticateToken(ctx *middlewares.AppContext, creds *Credentials) (*models.User, error) {
	if creds == nil {
		fromRequest, err := CredentialsFromRequest(ctx.Request)
		if err != nil {
			metrics.LoginAttempts.WithLabelValues(string(flowToken), metrics.OutcomeMissingData).Inc()
			return nil, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
		}
		creds = fromRequest
	}

	if err := creds.validateFor(flowToken); err != nil {
		metrics.LoginAttempts.WithLabelValues(string(flowToken), metrics.OutcomeMissingData).Inc()
		return nil, err
	}

	resp, err := ctx.Identity.VerifyUser(ctx, models.VerifyUserRequest{
		Token:    creds.Token,
		Email:    creds.Email,
		Password: creds.Password,
	})

	return userFromResponse(ctx, flowToken, resp, err)
}

// ChangePasswordWithOTP sets a new password after proving ownership of the email with a
// one-time password, and signs the user in.
func ChangePasswordWithOTP(ctx *middlewares.AppContext, creds *Credentials) (*models.User, error) {
	if err := creds.validateFor(flowOTP); err != nil {
		metrics.LoginAttempts.WithLabelValues(string(flowOTP), metrics.OutcomeMissingData).Inc()
		return nil, err
	}

	resp, err := ctx.Identity.ForgetPassword(ctx, models.ForgetPasswordRequest{
		Email:       creds.Email,
		NewPassword: creds.Password,
		OTP:         creds.OTP,
	})

	return userFromResponse(ctx, flowOTP, resp, err)
}

func ResetPassword(ctx *middlewares.AppContext, creds *Credentials) (*models.User, error) {
	if err := creds.validateFor(flowReset); err != nil {
		metrics.LoginAttempts.WithLabelValues(string(flowReset), metrics.OutcomeMissingData).Inc()
		return nil, err
	}

	resp, err := ctx.Identity.ResetPassword(ctx, models.ResetPasswordRequest{
		Token:       creds.Token,
		NewPassword: creds.NewPassword,
	})

	return userFromResponse(ctx, flowReset, resp, err)
}

func userFromResponse(ctx *middlewares.AppContext, flow credentialFlow, resp *models.Response[models.User], err error) (*models.User, error) {
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(string(flow), metrics.OutcomeError).Inc()
		ctx.Logger.Error("Authentication error", "flow", string(flow), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	if resp == nil || !resp.Success || resp.Data == nil {
		metrics.LoginAttempts.WithLabelValues(string(flow), metrics.OutcomeRejected).Inc()
		message := ""
		if resp != nil {
			message = resp.Message
		}
		ctx.Logger.Debug("Authentication rejected", "flow", string(flow), "message", message)
		return nil, ErrRemoteRejected
	}

	metrics.LoginAttempts.WithLabelValues(string(flow), metrics.OutcomeSuccess).Inc()
	return resp.Data, nil
}
