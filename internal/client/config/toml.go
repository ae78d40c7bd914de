package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is a DTO used exclusively for TOML decoding. Durations are
// kept as strings and parsed afterwards so errors can name the key.
type fileConfig struct {
	APIBaseURL         string `toml:"api_base_url"`
	HomeDir            string `toml:"home_dir"`
	LogLevel           string `toml:"log_level"`
	SpinnerInterval    string `toml:"spinner_interval"`
	MinSpinnerDuration string `toml:"min_spinner_duration"`
}

// parseTOML overlays cfg with the values set in the file at path. An empty
// path is a no-op. Keys absent from the file leave cfg untouched; unknown
// keys are an error so typos do not go unnoticed.
func parseTOML(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	if md.IsDefined("api_base_url") {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if md.IsDefined("home_dir") {
		cfg.HomeDir = fc.HomeDir
	}
	if md.IsDefined("log_level") {
		cfg.LogLevel = fc.LogLevel
	}
	if md.IsDefined("spinner_interval") {
		d, err := time.ParseDuration(fc.SpinnerInterval)
		if err != nil {
			return fmt.Errorf("%w: spinner_interval: %w", ErrInvalidConfig, err)
		}
		cfg.SpinnerInterval = d
	}
	if md.IsDefined("min_spinner_duration") {
		d, err := time.ParseDuration(fc.MinSpinnerDuration)
		if err != nil {
			return fmt.Errorf("%w: min_spinner_duration: %w", ErrInvalidConfig, err)
		}
		cfg.MinSpinnerDuration = d
	}
	return nil
}
