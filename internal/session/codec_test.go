package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"jobportal-auth/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	rotatedSecret = "fedcba9876543210fedcba9876543210"
)

func newTestCodec(t *testing.T, secret string) *Codec {
	t.Helper()
	c, err := NewCodec(secret, 30*24*time.Hour)
	require.NoError(t, err)
	return c
}

func testToken() *Token {
	return &Token{
		Subject:            "user-1",
		Name:               "Ada Lovelace",
		Email:              "ada@example.com",
		UserName:           "ada",
		CompanyID:          "company-9",
		AccessToken:        "access-abc",
		AccessTokenExpires: time.Now().Add(15 * time.Minute).UnixMilli(),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t, testSecret)

	raw, err := c.Encode(testToken())
	require.NoError(t, err)
	assert.Equal(t, 5, len(strings.Split(raw, ".")), "compact JWE has five parts")

	decoded, err := c.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "user-1", decoded.Subject)
	assert.Equal(t, "ada", decoded.UserName)
	assert.Equal(t, "company-9", decoded.CompanyID)
	assert.Equal(t, "access-abc", decoded.AccessToken)
	assert.NotEmpty(t, decoded.ID)
	assert.InDelta(t, time.Now().Add(30*24*time.Hour).Unix(), decoded.ExpiresAt, 5)
}

func TestCodec_EncodeDoesNotMutateInput(t *testing.T) {
	c := newTestCodec(t, testSecret)
	tok := testToken()

	_, err := c.Encode(tok)
	require.NoError(t, err)

	assert.Zero(t, tok.IssuedAt)
	assert.Zero(t, tok.ExpiresAt)
	assert.Empty(t, tok.ID)
}

func TestCodec_RotatedSecretIsDecryptionFailure(t *testing.T) {
	raw, err := newTestCodec(t, testSecret).Encode(testToken())
	require.NoError(t, err)

	_, err = newTestCodec(t, rotatedSecret).Decode(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecryptionFailed))
}

func TestCodec_DecodeClassification(t *testing.T) {
	c := newTestCodec(t, testSecret)

	_, err := c.Decode("")
	assert.True(t, errors.Is(err, ErrNoSession))

	_, err = c.Decode("not-a-jwe")
	assert.True(t, errors.Is(err, ErrMalformed))

	expired := newTestCodec(t, testSecret)
	expired.now = func() time.Time { return time.Now().Add(-31 * 24 * time.Hour) }
	raw, err := expired.Encode(testToken())
	require.NoError(t, err)

	_, err = c.Decode(raw)
	assert.True(t, errors.Is(err, ErrExpired))
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec("", time.Hour)
	assert.Error(t, err)
}

func TestNewToken_FromUser(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &models.User{
		ID:          "42",
		UserName:    "jdoe",
		Email:       "j@doe.com",
		FirstName:   "John",
		LastName:    "Doe",
		CompanyID:   "7",
		Type:        "employer",
		AccessToken: "tok",
	}

	tok := NewToken(user, now, 15*time.Minute)

	assert.Equal(t, "42", tok.Subject)
	assert.Equal(t, "John Doe", tok.Name)
	assert.Equal(t, "employer", tok.UserType)
	assert.Equal(t, now.Add(15*time.Minute).UnixMilli(), tok.AccessTokenExpires)
	assert.False(t, tok.AccessTokenExpired(now))
	assert.True(t, tok.AccessTokenExpired(now.Add(15*time.Minute)))
}

func TestToken_Session(t *testing.T) {
	tok := testToken()
	tok.ExpiresAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Unix()

	s := tok.Session()
	assert.Equal(t, "user-1", s.User.ID)
	assert.Equal(t, "ada", s.User.UserName)
	assert.Equal(t, "company-9", s.User.CompanyID)
	assert.Equal(t, "access-abc", s.AccessToken)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), s.Expires)
}
