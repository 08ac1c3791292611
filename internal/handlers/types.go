package handlers

import (
	"jobportal-auth/internal/models"
)

type CSRFResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// ProviderInfo describes one sign-in method offered to the client.
type ProviderInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	SignInURL   string `json:"signinUrl"`
	CallbackURL string `json:"callbackUrl"`
}

// LoginResponse is returned by every credential callback that signed a user in.
type LoginResponse struct {
	URL     string          `json:"url"`
	Session *models.Session `json:"session"`
}

type SignOutResponse struct {
	URL string `json:"url"`
}

type AuthGateResponse struct {
	Redirect *string `json:"redirect"`
}

// ProfileViewResponse tells the profile page which variant to render.
type ProfileViewResponse struct {
	View      string `json:"view"`
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId,omitempty"`
}

const (
	ProfileViewPrivate = "private"
	ProfileViewPublic  = "public"
)

type ChromeResponse struct {
	User *models.SessionUser `json:"user"`
}
