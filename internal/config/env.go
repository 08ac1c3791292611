package config

import (
	"os"
	"strings"
)

var (
	EnvAuthURL               = "NEXTAUTH_URL"
	EnvAuthSecret            = "NEXTAUTH_SECRET"
	EnvUseSecureCookies      = "NEXTAUTH_USE_SECURE_COOKIES"
	EnvNodeEnv               = "NODE_ENV"
	EnvPublicServerBase      = "NEXT_PUBLIC_SERVER_BASE"
	EnvVercelURL             = "VERCEL_URL"
	EnvIdentityURL           = "JOBPORTAL_IDENTITY_URL"
	EnvGoogleClientID        = "JOBPORTAL_GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret    = "JOBPORTAL_GOOGLE_CLIENT_SECRET"
	EnvRedisPassword         = "JOBPORTAL_REDIS_PASSWORD"
	EnvRedisSentinelPassword = "JOBPORTAL_REDIS_SENTINEL_PASSWORD"
	EnvStorageDSN            = "JOBPORTAL_STORAGE_DSN"
)

const (
	defaultProductionBaseURL  = "https://jobacademy.net"
	defaultDevelopmentBaseURL = "http://localhost:3000"
)

// Environment is a snapshot of the process environment taken once at startup.
type Environment map[string]string

// EnvironmentFromOS captures every variable the service reads.
func EnvironmentFromOS() Environment {
	env := Environment{}
	for _, key := range []string{
		EnvAuthURL, EnvAuthSecret, EnvUseSecureCookies, EnvNodeEnv, EnvPublicServerBase,
		EnvVercelURL, EnvIdentityURL, EnvGoogleClientID, EnvGoogleClientSecret,
		EnvRedisPassword, EnvRedisSentinelPassword, EnvStorageDSN,
	} {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}
	return env
}

func (e Environment) Get(key string) string {
	return strings.TrimSpace(e[key])
}

// ResolveBaseURL derives the effective callback base URL. An explicit NEXTAUTH_URL always
// wins, then the configured value, then a Vercel deployment host, then the public server
// base, then a per-environment default.
func ResolveBaseURL(env Environment, configured, environment string) string {
	if u := env.Get(EnvAuthURL); u != "" {
		return u
	}

	if u := strings.TrimSpace(configured); u != "" {
		return u
	}

	if host := env.Get(EnvVercelURL); host != "" {
		return "https://" + host
	}

	if u := env.Get(EnvPublicServerBase); u != "" {
		return u
	}

	if environment == EnvironmentProduction {
		return defaultProductionBaseURL
	}

	return defaultDevelopmentBaseURL
}

// ParseSecureOverride returns nil when raw is empty or not a recognised boolean.
func ParseSecureOverride(raw string) *bool {
	var v bool
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		v = true
	case "false", "0", "no", "off":
		v = false
	default:
		return nil
	}
	return &v
}
