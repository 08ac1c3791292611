package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Auth     AuthConfig     `yaml:"auth"`
	Identity IdentityConfig `yaml:"identity"`
	Google   *GoogleConfig  `yaml:"google"`
	Sessions SessionConfig  `yaml:"sessions"`
	Redis    *RedisConfig   `yaml:"redis"`
	Storage  *StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	Environment string             `yaml:"environment"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:        8080,
	Environment: EnvironmentDevelopment,
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentTest        = "test"
)

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins:   []string{"http://localhost:3000"},
	AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders:   []string{"*"},
	AllowCredentials: true,
	MaxAgeSeconds:    300,
}

// AuthConfig holds the session/cookie settings. BaseURL and UseSecureCookies are
// resolved once at load time and never change afterwards.
type AuthConfig struct {
	BaseURL          string        `yaml:"base_url"`
	Secret           string        `yaml:"secret"`
	UseSecureCookies *bool         `yaml:"use_secure_cookies"`
	SessionMaxAge    time.Duration `yaml:"session_max_age"`
	RefreshHorizon   time.Duration `yaml:"refresh_horizon"`
	Pages            PagesConfig   `yaml:"pages"`
}

type PagesConfig struct {
	SignIn        string `yaml:"sign_in"`
	Error         string `yaml:"error"`
	VerifyRequest string `yaml:"verify_request"`
}

const MinSecretLength = 32

var DefaultAuthConfig = AuthConfig{
	SessionMaxAge:  30 * 24 * time.Hour,
	RefreshHorizon: 15 * time.Minute,
	Pages: PagesConfig{
		SignIn:        "/auth/signin",
		Error:         "/auth/signin",
		VerifyRequest: "/auth/verify",
	},
}

type IdentityConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

var DefaultIdentityConfig = IdentityConfig{
	Timeout: 10 * time.Second,
}

type GoogleConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultGoogleConfig = GoogleConfig{
	IssuerURL: "https://accounts.google.com",
	Scopes:    []string{"openid", "profile", "email"},
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FlowLifetime time.Duration `yaml:"flow_lifetime"`
	FlowName     string        `yaml:"flow_name"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FlowLifetime: 15 * time.Minute,
	FlowName:     "next-auth.flow",
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

type StorageConfig struct {
	DSN string `yaml:"dsn"`
}
