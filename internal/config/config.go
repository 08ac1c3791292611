package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingSecret = errors.New("auth secret is not set")
	ErrShortSecret   = fmt.Errorf("auth secret must be at least %d characters", MinSecretLength)
)

// LoadConfig reads the YAML file at configPath (optional), applies environment overrides
// from the process environment and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithEnvironment(configPath, EnvironmentFromOS())
}

func LoadConfigWithEnvironment(configPath string, env Environment) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvironmentOverrides(&config, env)

	if err := validateConfig(&config, env); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func applyEnvironmentOverrides(config *Config, env Environment) {
	if nodeEnv := env.Get(EnvNodeEnv); nodeEnv != "" {
		config.Server.Environment = nodeEnv
	}

	if secret := env.Get(EnvAuthSecret); secret != "" {
		config.Auth.Secret = secret
	}

	if override := ParseSecureOverride(env.Get(EnvUseSecureCookies)); override != nil {
		config.Auth.UseSecureCookies = override
	}

	if identityURL := env.Get(EnvIdentityURL); identityURL != "" {
		config.Identity.BaseURL = identityURL
	}

	if clientID := env.Get(EnvGoogleClientID); clientID != "" {
		if config.Google == nil {
			config.Google = &GoogleConfig{}
		}
		config.Google.ClientID = clientID
	}

	if clientSecret := env.Get(EnvGoogleClientSecret); clientSecret != "" {
		if config.Google == nil {
			config.Google = &GoogleConfig{}
		}
		config.Google.ClientSecret = clientSecret
	}

	if redisPassword := env.Get(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if sentinelPassword := env.Get(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}

	if dsn := env.Get(EnvStorageDSN); dsn != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.DSN = dsn
	}
}

func validateConfig(config *Config, env Environment) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthConfig(env)
	if err != nil {
		return err
	}

	err = config.validateIdentityConfig()
	if err != nil {
		return err
	}

	err = config.validateGoogleConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	switch config.Sessions.Store {
	case "redis":
		err = config.validateRedisConfig()
	case "postgres":
		err = config.validateStorageConfig()
	}
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.Environment == "" {
		c.Server.Environment = DefaultServerConfig.Environment
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateAuthConfig(env Environment) error {
	if c.Auth.Secret == "" {
		return ErrMissingSecret
	}

	if len(c.Auth.Secret) < MinSecretLength {
		return ErrShortSecret
	}

	c.Auth.BaseURL = ResolveBaseURL(env, c.Auth.BaseURL, c.Server.Environment)
	if err := validateURL(c.Auth.BaseURL, "auth.base_url"); err != nil {
		return err
	}

	if c.Auth.SessionMaxAge <= 0 {
		c.Auth.SessionMaxAge = DefaultAuthConfig.SessionMaxAge
	}

	if c.Auth.RefreshHorizon <= 0 {
		c.Auth.RefreshHorizon = DefaultAuthConfig.RefreshHorizon
	}

	if c.Auth.Pages.SignIn == "" {
		c.Auth.Pages.SignIn = DefaultAuthConfig.Pages.SignIn
	}
	if c.Auth.Pages.Error == "" {
		c.Auth.Pages.Error = DefaultAuthConfig.Pages.Error
	}
	if c.Auth.Pages.VerifyRequest == "" {
		c.Auth.Pages.VerifyRequest = DefaultAuthConfig.Pages.VerifyRequest
	}

	return nil
}

func (c *Config) validateIdentityConfig() error {
	if err := validateURL(c.Identity.BaseURL, "identity.base_url"); err != nil {
		return err
	}

	c.Identity.BaseURL = strings.TrimRight(c.Identity.BaseURL, "/")

	if c.Identity.Timeout <= 0 {
		c.Identity.Timeout = DefaultIdentityConfig.Timeout
	}

	return nil
}

func (c *Config) validateGoogleConfig() error {
	if c.Google == nil {
		return nil
	}

	if c.Google.ClientID == "" {
		return fmt.Errorf("google.client_id is required when google login is configured")
	}

	if c.Google.ClientSecret == "" {
		return fmt.Errorf("google.client_secret is required when google login is configured")
	}

	if c.Google.IssuerURL == "" {
		c.Google.IssuerURL = DefaultGoogleConfig.IssuerURL
	}

	if err := validateURL(c.Google.IssuerURL, "google.issuer_url"); err != nil {
		return err
	}

	if len(c.Google.Scopes) == 0 {
		c.Google.Scopes = DefaultGoogleConfig.Scopes
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis", "postgres":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory', 'redis' or 'postgres'", c.Sessions.Store)
		}
	}

	if c.Sessions.FlowLifetime <= 0 {
		c.Sessions.FlowLifetime = DefaultSessionConfig.FlowLifetime
	}

	if c.Sessions.FlowName == "" {
		c.Sessions.FlowName = DefaultSessionConfig.FlowName
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis configuration is required to use the redis session store")
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	} else {
		if c.Redis.Address == "" {
			return fmt.Errorf("redis address is required")
		}

		if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
			return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
		}
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex < 0 || c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index must be between 0 and %d, got %d", maxRedisDB, c.Redis.SessionIndex)
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage == nil || c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required to use the postgres session store")
	}

	return nil
}

// IsProduction reports whether the service runs with NODE_ENV=production semantics.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvironmentProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvironmentDevelopment
}
