package metrics

const Namespace = "jobportal_auth"

const (
	LoginMethodCredentials = "credentials"
	LoginMethodToken       = "token"
	LoginMethodOTP         = "otp"
	LoginMethodReset       = "reset_password"
	LoginMethodGoogle      = "google"
)

const (
	OutcomeSuccess     = "success"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
	OutcomeMissingData = "missing_input"
	OutcomeSkipped     = "skipped"
)

const (
	DecodeFailureNoSession  = "no_session"
	DecodeFailureDecryption = "decryption_failed"
	DecodeFailureMalformed  = "malformed"
	DecodeFailureExpired    = "expired"
)
