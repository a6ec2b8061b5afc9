package github

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds GitHub API connection settings. The token is the process-wide
// fallback; a request-scoped token carried in the context takes precedence.
type Config struct {
	// Token is the fallback access token used when a request carries none.
	Token string `envconfig:"GITHUB_TOKEN"`

	// BaseURL is the API origin. Override for GitHub Enterprise or tests.
	BaseURL string `envconfig:"GITHUB_API_URL" default:"https://api.github.com"`

	// Timeout for API requests.
	Timeout time.Duration `envconfig:"GITHUB_TIMEOUT" default:"30s"`

	// UserAgent identifies the client to the API.
	UserAgent string `envconfig:"GITHUB_USER_AGENT"`
}

// DefaultUserAgent is sent when no custom user agent is configured.
const DefaultUserAgent = "my-github-mcp-server/1.0 (github.com/amotarao/my-github-mcp-server)"

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &cfg, nil
}

// HasToken returns true if a fallback token is configured.
func (c *Config) HasToken() bool {
	return c.Token != ""
}
