package auth

import (
	"encoding/json"
	"strings"

	"jobportal-auth/internal/cookies"
	"jobportal-auth/internal/metrics"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/models"
)

// DivideName splits a display name into first name and the remaining words. Missing parts
// fall back to the full name.
func DivideName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	parts := strings.Fields(name)

	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return name, name
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// HandleSocialLogin links an external provider profile to a portal account. It reports
// whether the sign-in may continue.
func HandleSocialLogin(ctx *middlewares.AppContext, profile *models.SocialProfile, providerAccessToken string) bool {
	_, ok := LinkSocialLogin(ctx, profile, providerAccessToken)
	return ok
}

// LinkSocialLogin is HandleSocialLogin returning the linked account as well. The outcome is
// also published to the client through the user and user-error cookies.
func LinkSocialLogin(ctx *middlewares.AppContext, profile *models.SocialProfile, providerAccessToken string) (*models.User, bool) {
	if profile == nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodGoogle, metrics.OutcomeMissingData).Inc()
		return nil, false
	}

	jar := ctx.Jar()
	userType, _ := jar.Get(cookies.UserType)
	firstName, lastName := DivideName(profile.Name)

	resp, err := ctx.Identity.LinkSocialAccount(ctx, models.SocialLoginRequest{
		Email:       profile.Email,
		FirstName:   firstName,
		LastName:    lastName,
		Picture:     profile.Picture,
		AccessToken: providerAccessToken,
		UserType:    userType,
	})
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodGoogle, metrics.OutcomeError).Inc()
		ctx.Logger.Error("Social login error", "error", err)
		return nil, false
	}

	if resp == nil || !resp.Success {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodGoogle, metrics.OutcomeRejected).Inc()
		var reason string
		if resp != nil {
			reason = resp.Message
		}
		message, _ := json.Marshal(reason)
		jar.Set(cookies.UserError, string(message))
		ctx.Logger.Info("Social login rejected", "email", profile.Email, "message", reason)
		return nil, false
	}

	userData, err := json.Marshal(resp.Data)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodGoogle, metrics.OutcomeError).Inc()
		ctx.Logger.Error("Social login error", "error", err)
		return nil, false
	}
	jar.Set(cookies.User, string(userData))

	metrics.LoginAttempts.WithLabelValues(metrics.LoginMethodGoogle, metrics.OutcomeSuccess).Inc()
	return resp.Data, true
}
