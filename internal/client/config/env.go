package config

import "os"

// Environment variable names.
const (
	EnvAPIBaseURL = "API_GATEWAY_URL"
	EnvHome       = "NEUMODIAG_HOME"
	EnvLogLevel   = "NEUMODIAG_LOG_LEVEL"
	EnvConfig     = "NEUMODIAG_CONFIG"
)

// environment is the subset of os used for lookups; tests pass a map.
type environment interface {
	Getenv(key string) string
}

type osEnv struct{}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }

type mapEnv map[string]string

func (m mapEnv) Getenv(key string) string { return m[key] }

// parseEnv overlays non-empty environment values onto cfg.
func parseEnv(cfg *Config, env environment) {
	if v := env.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := env.Getenv(EnvHome); v != "" {
		cfg.HomeDir = v
	}
	if v := env.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
