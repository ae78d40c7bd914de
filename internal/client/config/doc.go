// Package config loads runtime configuration for the NeumoDiagnostics CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional TOML file whose path is given by NEUMODIAG_CONFIG (see parseTOML).
//  3. Environment variables (see parseEnv), which override earlier values.
//
// The CLI takes no command-line flags.
//
// Environment
//
//	API_GATEWAY_URL       base URL of the authentication service
//	NEUMODIAG_HOME        directory holding the saved session files
//	NEUMODIAG_LOG_LEVEL   debug | info | warn | error
//	NEUMODIAG_CONFIG      path to a TOML config file
//
// # TOML schema
//
// Durations are Go duration strings. Unknown keys are rejected:
//
//	api_base_url         = "http://localhost:8080"
//	home_dir             = "/home/ana/.neumodiag"
//	log_level            = "warn"
//	spinner_interval     = "80ms"
//	min_spinner_duration = "1.5s"
//
// Home directory
//
// Where the session files live is decided once by ResolveHome, which is pure
// over its HomeInputs so it can be tested without touching the real
// filesystem layout. See ResolveHome for the search order.
package config
