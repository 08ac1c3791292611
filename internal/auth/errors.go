package auth

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrRemoteRejected     = errors.New("identity api rejected the request")
	ErrRemoteUnavailable  = errors.New("identity api call failed")
	ErrProviderDisabled   = errors.New("oauth provider is not configured")
)

// OIDCError describes a failed OAuth callback. Code is the value surfaced to the sign-in
// page as ?error=.
type OIDCError struct {
	Code    string
	Message string
}

func (e *OIDCError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	ErrorCodeOAuthCallback = "OAuthCallback"
	ErrorCodeAccessDenied  = "AccessDenied"
	ErrorCodeConfiguration = "Configuration"
)
