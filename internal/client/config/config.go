package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/neumodiag/internal/logging"
)

// DefaultAPIBaseURL is used when neither the environment nor a config file
// names the service.
const DefaultAPIBaseURL = "http://localhost:8080"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: base URL of the authentication service.
//   - HomeDir: explicit directory for session files; empty means "resolve".
//   - LogLevel: minimum level written to stderr.
//   - SpinnerInterval: progress indicator tick while a request is in flight.
//   - MinSpinnerDuration: minimum time the indicator stays on screen.
type Config struct {
	APIBaseURL         string
	HomeDir            string
	LogLevel           string
	SpinnerInterval    time.Duration
	MinSpinnerDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.HomeDir = ""
	c.LogLevel = "warn"
	c.SpinnerInterval = 80 * time.Millisecond
	c.MinSpinnerDuration = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the TOML file (if any) and the environment. Later sources take precedence
// over earlier ones. The result is validated.
func LoadConfig() (*Config, error) {
	return load(osEnv{})
}

func load(env environment) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseTOML(cfg, env.Getenv(EnvConfig)); err != nil {
		return nil, err
	}
	parseEnv(cfg, env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that c can be used to build the client.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("%w: api base url %q: %w", ErrInvalidConfig, c.APIBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api base url %q must be an absolute http(s) URL", ErrInvalidConfig, c.APIBaseURL)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.SpinnerInterval <= 0 {
		return fmt.Errorf("%w: spinner interval must be positive, got %s", ErrInvalidConfig, c.SpinnerInterval)
	}
	if c.MinSpinnerDuration < 0 {
		return fmt.Errorf("%w: min spinner duration must not be negative, got %s", ErrInvalidConfig, c.MinSpinnerDuration)
	}
	return nil
}
