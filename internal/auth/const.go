package auth

type SessionKey string

var (
	SessionKeyOauthState        SessionKey = "oauth_state"
	SessionKeyOauthNonce        SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier SessionKey = "oauth_code_verifier"
)

const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

const csrfTokenBytes = 32
