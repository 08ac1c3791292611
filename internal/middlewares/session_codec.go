package middlewares

import (
	"time"

	"jobportal-auth/internal/session"
)

//go:generate mockgen -source=session_codec.go -destination=../mocks/session_codec.go -package=mocks

type SessionCodec interface {
	Encode(tok *session.Token) (string, error)
	Decode(raw string) (*session.Token, error)
	MaxAge() time.Duration
}
