package session

import (
	"time"

	"jobportal-auth/internal/models"
)

// Token is the claim set carried inside the encrypted session cookie.
type Token struct {
	Subject            string `json:"sub,omitempty"`
	Name               string `json:"name,omitempty"`
	Email              string `json:"email,omitempty"`
	Picture            string `json:"picture,omitempty"`
	UserName           string `json:"userName,omitempty"`
	CompanyID          string `json:"companyId,omitempty"`
	UserType           string `json:"userType,omitempty"`
	AccessToken        string `json:"accessToken,omitempty"`
	AccessTokenExpires int64  `json:"accessTokenExpires,omitempty"` // unix milliseconds
	IssuedAt           int64  `json:"iat,omitempty"`
	ExpiresAt          int64  `json:"exp,omitempty"`
	ID                 string `json:"jti,omitempty"`
}

// NewToken builds the initial token for a freshly authenticated user. The access token is
// considered valid for horizon from now.
func NewToken(user *models.User, now time.Time, horizon time.Duration) *Token {
	return &Token{
		Subject:            user.ID,
		Name:               user.DisplayName(),
		Email:              user.Email,
		Picture:            user.Photo,
		UserName:           user.UserName,
		CompanyID:          user.CompanyID,
		UserType:           user.Type,
		AccessToken:        user.AccessToken,
		AccessTokenExpires: now.Add(horizon).UnixMilli(),
	}
}

func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// AccessTokenExpired reports whether the embedded access token needs a refresh. Tokens
// without a recorded expiry never expire.
func (t *Token) AccessTokenExpired(now time.Time) bool {
	if t.AccessTokenExpires == 0 {
		return false
	}
	return now.UnixMilli() >= t.AccessTokenExpires
}

func (t *Token) Expires() time.Time {
	return time.Unix(t.ExpiresAt, 0)
}

// Session projects the token onto the public session shape.
func (t *Token) Session() *models.Session {
	return &models.Session{
		User: models.SessionUser{
			ID:        t.Subject,
			UserName:  t.UserName,
			Name:      t.Name,
			Email:     t.Email,
			Image:     t.Picture,
			CompanyID: t.CompanyID,
			Type:      t.UserType,
		},
		AccessToken: t.AccessToken,
		Expires:     t.Expires().UTC(),
	}
}
