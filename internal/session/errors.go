package session

import "errors"

var (
	// ErrNoSession means the request carried no session cookie at all.
	ErrNoSession = errors.New("no session")

	// ErrDecryptionFailed means the cookie was encrypted under a different key, which is
	// the expected result of rotating the auth secret.
	ErrDecryptionFailed = errors.New("session decryption failed")

	ErrMalformed = errors.New("malformed session token")
	ErrExpired   = errors.New("session expired")
)
