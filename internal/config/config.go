package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/auth"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Unmatched GET handling.
const (
	UnmatchedRedirect = "redirect"
	UnmatchedLogin    = "login"
)

// TeamPrefix is the environment variable prefix for per-team identifiers.
// TEAM_ID_251=1251 registers the suffix "251" with codeword "1251".
const TeamPrefix = "TEAM_ID_"

// Config holds the configuration for the gate service.
// Variables are read without a prefix so existing deployments keep their names.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP Configuration
	Host     string `envconfig:"HOST" default:"0.0.0.0"`
	HTTPPort int    `envconfig:"PORT" default:"3000"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	StaticDir          string   `envconfig:"STATIC_DIR" default:""`
	UnmatchedMode      string   `envconfig:"UNMATCHED_MODE" default:"redirect"`

	// Credentials
	AgentCodeword string `envconfig:"AGENT_CODEWORD" default:""`
	AgentID       string `envconfig:"AGENT_ID" default:""`
	TeamID        string `envconfig:"TEAM_ID" default:""`

	// Teams maps TEAM_ID_<suffix> suffixes to their values.
	Teams map[string]string `ignored:"true"`
}

// LoadDotEnv loads variables from the given files (".env" when none are given)
// without overriding variables already present in the environment.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	cfg.Teams = TeamsFromEnviron(os.Environ())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	creds := cfg.Credentials()
	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Int("teams", creds.Teams()).
		Int("allowlist", creds.Len()).
		Bool("agent_id_present", creds.HasAgentID()).
		Bool("fallback_codeword_present", creds.HasFallback()).
		Str("unmatched_mode", cfg.UnmatchedMode).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:        EnvTesting,
		LogLevel:           "debug",
		Host:               "127.0.0.1",
		HTTPPort:           3000,
		CORSAllowedOrigins: []string{"*"},
		UnmatchedMode:      UnmatchedRedirect,
		Teams:              map[string]string{},
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.HTTPPort)
	}
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	switch c.UnmatchedMode {
	case UnmatchedRedirect, UnmatchedLogin:
	default:
		return fmt.Errorf("unsupported UNMATCHED_MODE: %s", c.UnmatchedMode)
	}
	return nil
}

// TeamsFromEnviron collects TEAM_ID_<suffix>=<value> pairs from a KEY=VALUE list.
// Suffix and value are trimmed; pairs with an empty side are skipped.
func TeamsFromEnviron(environ []string) map[string]string {
	teams := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, TeamPrefix) {
			continue
		}
		suffix := strings.TrimSpace(strings.TrimPrefix(key, TeamPrefix))
		value = strings.TrimSpace(value)
		if suffix == "" || value == "" {
			continue
		}
		teams[suffix] = value
	}
	return teams
}

// Credentials returns the immutable credential snapshot for this config.
func (c *Config) Credentials() *auth.Credentials {
	return auth.NewCredentials(c.Teams, c.AgentID, c.AgentCodeword, c.TeamID)
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}
