package models

// Response is the envelope every identity API endpoint answers with.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyUserRequest struct {
	Token    string `json:"token,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type ForgetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
	OTP         string `json:"otp"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type SocialLoginRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Picture     string `json:"picture,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	UserType    string `json:"userType,omitempty"`
}

type RefreshTokenRequest struct {
	ID string `json:"id"`
}

type RefreshedToken struct {
	NewToken string `json:"newToken"`
}

// SocialProfile is the subset of an external provider's profile forwarded on social login.
type SocialProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
