package session

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	keyInfo = "NextAuth.js Generated Encryption Key"
	keySize = 32
)

// Codec encrypts session tokens as compact JWE (dir + A256GCM) under a key derived from
// the auth secret.
type Codec struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

func NewCodec(secret string, maxAge time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}

	key, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}

	return &Codec{key: key, maxAge: maxAge, now: time.Now}, nil
}

func deriveKey(secret string) ([]byte, error) {
	key := make([]byte, keySize)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}
	return key, nil
}

func (c *Codec) MaxAge() time.Duration {
	return c.maxAge
}

// Encode stamps iat/exp/jti on a copy of tok and returns the encrypted form.
func (c *Codec) Encode(tok *Token) (string, error) {
	if tok == nil {
		return "", fmt.Errorf("cannot encode nil token")
	}

	now := c.now()
	claims := tok.Clone()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(c.maxAge).Unix()
	claims.ID = uuid.New().String()

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session token: %w", err)
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: c.key},
		(&jose.EncrypterOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create encrypter: %w", err)
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt session token: %w", err)
	}

	return object.CompactSerialize()
}

// Decode decrypts and validates raw. Failures are classified as ErrNoSession,
// ErrDecryptionFailed, ErrMalformed or ErrExpired.
func (c *Codec) Decode(raw string) (*Token, error) {
	if raw == "" {
		return nil, ErrNoSession
	}

	object, err := jose.ParseEncrypted(raw, []jose.KeyAlgorithm{jose.DIRECT}, []jose.ContentEncryption{jose.A256GCM})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	payload, err := object.Decrypt(c.key)
	if err != nil {
		if errors.Is(err, jose.ErrCryptoFailure) {
			return nil, ErrDecryptionFailed
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var tok Token
	if err := json.Unmarshal(payload, &tok); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if tok.ExpiresAt != 0 && !c.now().Before(time.Unix(tok.ExpiresAt, 0)) {
		return nil, ErrExpired
	}

	return &tok, nil
}
