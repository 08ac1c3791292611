package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const googleCallbackPath = "/api/auth/callback/google"

// NewGoogleProvider discovers the issuer and prepares the authorization code flow. The
// redirect URL is derived from the resolved base URL.
func NewGoogleProvider(ctx context.Context, cfg config.GoogleConfig, baseURL string) (*GoogleProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  baseURL + googleCallbackPath,
	}

	return &GoogleProvider{
		provider:     provider,
		oauth2Config: oauth2Config,
		verifier:     provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

type GoogleProvider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
	verifier     *oidc.IDTokenVerifier
}

func (g *GoogleProvider) Name() string {
	return ProviderGoogle
}

func generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.RawURLEncoding.EncodeToString(b)
}

func (g *GoogleProvider) StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := generateRandString(32)
	nonce := generateRandString(32)
	codeVerifier := oauth2.GenerateVerifier()

	ctx.FlowSession.SetOauthState(ctx, state)
	ctx.FlowSession.SetOauthNonce(ctx, nonce)
	ctx.FlowSession.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := g.oauth2Config.AuthCodeURL(state,
		oidc.Nonce(nonce),
		oauth2.SetAuthURLParam("prompt", "select_account"),
		oauth2.S256ChallengeOption(codeVerifier),
	)

	return authURL, nil
}

func (g *GoogleProvider) HandleCallback(ctx *middlewares.AppContext) (*models.SocialProfile, string, error) {
	query := ctx.Request.URL.Query()

	if errorParam := query.Get("error"); errorParam != "" {
		code := ErrorCodeOAuthCallback
		if errorParam == "access_denied" {
			code = ErrorCodeAccessDenied
		}
		return nil, "", &OIDCError{Code: code, Message: errorParam + ": " + query.Get("error_description")}
	}

	storedState := ctx.FlowSession.GetOauthState(ctx)
	if storedState == "" {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: "no oauth state found in session"}
	}

	if query.Get("state") != storedState {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: "invalid state parameter"}
	}

	ctx.FlowSession.ClearOauthState(ctx)

	code := query.Get("code")
	if code == "" {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: "no authorization code received"}
	}

	verifierCode := ctx.FlowSession.GetOauthCodeVerifier(ctx)
	ctx.FlowSession.ClearOauthCodeVerifier(ctx)

	token, err := g.oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(verifierCode))
	if err != nil {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: fmt.Sprintf("failed to exchange code for token: %v", err)}
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: "no id_token found in oauth2 token"}
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: fmt.Sprintf("failed to verify ID Token: %v", err)}
	}

	storedNonce := ctx.FlowSession.GetOauthNonce(ctx)
	if storedNonce == "" || idToken.Nonce != storedNonce {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: "nonce in ID Token is invalid"}
	}
	ctx.FlowSession.ClearOauthNonce(ctx)

	profile, err := profileFromIDToken(idToken)
	if err != nil {
		return nil, "", &OIDCError{Code: ErrorCodeOAuthCallback, Message: fmt.Sprintf("failed to extract profile from ID Token: %v", err)}
	}

	if profile.Name == "" || profile.Picture == "" {
		if enriched, err := g.fetchUserInfo(ctx, token, profile); err != nil {
			ctx.Logger.Warn("Failed to fetch user info, using ID token data only", "error", err)
		} else {
			profile = enriched
		}
	}

	return profile, token.AccessToken, nil
}

type profileClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func profileFromIDToken(idToken *oidc.IDToken) (*models.SocialProfile, error) {
	var claims profileClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("id token carries no email claim")
	}

	return &models.SocialProfile{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// fetchUserInfo fills missing profile fields from the UserInfo endpoint.
func (g *GoogleProvider) fetchUserInfo(ctx context.Context, token *oauth2.Token, base *models.SocialProfile) (*models.SocialProfile, error) {
	userInfo, err := g.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	var claims profileClaims
	if err := userInfo.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse user info claims: %w", err)
	}

	return &models.SocialProfile{
		Email:   getPreferredValue(base.Email, claims.Email),
		Name:    getPreferredValue(base.Name, claims.Name),
		Picture: getPreferredValue(base.Picture, claims.Picture),
	}, nil
}

// getPreferredValue returns the first non-empty string from the provided values
func getPreferredValue(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
