// Package config resolves service configuration from defaults, an
// optional YAML file, and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultSigningKey is the insecure fallback used when JWT_SECRET is
// unset. Deployments must override it; main logs a warning when the
// fallback is active.
const DefaultSigningKey = "your-secret-key"

// Config is the resolved service configuration.
type Config struct {
	ListenAddr string     `yaml:"listen_addr"`
	DSN        string     `yaml:"dsn"`
	LogLevel   string     `yaml:"log_level"`
	Debug      bool       `yaml:"debug"`
	Auth       AuthConfig `yaml:"auth"`
	Admin      AdminSeed  `yaml:"admin"`
}

// AuthConfig holds the token settings.
type AuthConfig struct {
	SigningKey      string `yaml:"signing_key"`
	TokenExpiration int    `yaml:"token_expiration"`
}

// AdminSeed optionally bootstraps an administrator account on startup.
// Empty username disables seeding.
type AdminSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load resolves the configuration. The file named by STOCKROOM_CONFIG
// is read when set; environment variables win over the file.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr: ":3000",
		DSN:        "file:stockroom.db?cache=shared",
		LogLevel:   "info",
	}

	if path := os.Getenv("STOCKROOM_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("STOCKROOM_DEBUG"); v != "" {
		c.Debug = v == "1" || v == "true"
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.SigningKey = v
	}
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			c.Auth.TokenExpiration = hours
		}
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		c.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
}

// GetSigningKey returns the configured key or the insecure default.
func (c *Config) GetSigningKey() string {
	if c.Auth.SigningKey == "" {
		return DefaultSigningKey
	}
	return c.Auth.SigningKey
}

// GetTokenExpiration returns the token lifetime in hours, 1 by default.
func (c *Config) GetTokenExpiration() int {
	if c.Auth.TokenExpiration == 0 {
		return 1
	}
	return c.Auth.TokenExpiration
}

// UsingDefaultSigningKey reports whether the insecure fallback key is
// in effect.
func (c *Config) UsingDefaultSigningKey() bool {
	return c.Auth.SigningKey == ""
}
