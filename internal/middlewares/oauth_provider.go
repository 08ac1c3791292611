package middlewares

import (
	"jobportal-auth/internal/models"
)

//go:generate mockgen -source=oauth_provider.go -destination=../mocks/oauth.go -package=mocks

type OAuthProvider interface {
	Name() string
	StartLogin(ctx *AppContext) (string, error)
	HandleCallback(ctx *AppContext) (profile *models.SocialProfile, accessToken string, err error)
}
