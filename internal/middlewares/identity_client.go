package middlewares

import (
	"context"

	"jobportal-auth/internal/models"
)

//go:generate mockgen -source=identity_client.go -destination=../mocks/identity.go -package=mocks

// IdentityClient talks to the remote identity API. A non-nil error means the call did not
// produce an envelope; a rejected call is a response with Success false.
type IdentityClient interface {
	SignIn(ctx context.Context, req models.SignInRequest) (*models.Response[models.User], error)
	VerifyUser(ctx context.Context, req models.VerifyUserRequest) (*models.Response[models.User], error)
	ForgetPassword(ctx context.Context, req models.ForgetPasswordRequest) (*models.Response[models.User], error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.Response[models.User], error)
	LinkSocialAccount(ctx context.Context, req models.SocialLoginRequest) (*models.Response[models.User], error)
	RefreshToken(ctx context.Context, req models.RefreshTokenRequest) (*models.Response[models.RefreshedToken], error)
}
