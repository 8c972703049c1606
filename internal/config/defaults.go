// Package config provides internal configuration loading and processing.
package config

import "github.com/smykla-skalski/hookgate/pkg/config"

// defaultsToMap returns the default configuration as a nested map for the
// koanf confmap provider. Defaults reproduce the stock hook behavior: both
// interceptors on, info-level file logging.
func defaultsToMap() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"file":  "",
			"debug": true,
			"trace": false,
		},
		"interceptors": map[string]any{
			"removal_guard": map[string]any{
				"enabled": true,
			},
			"echo_tagger": map[string]any{
				"enabled": true,
			},
		},
	}
}

// DefaultConfig returns the default configuration as a typed struct, used
// by the init command to render the starter config file.
func DefaultConfig() *config.Config {
	enabled := true
	debug := true
	trace := false

	return &config.Config{
		Logging: &config.LoggingConfig{
			Debug: &debug,
			Trace: &trace,
		},
		Interceptors: &config.InterceptorsConfig{
			RemovalGuard: &config.RemovalGuardConfig{
				Enabled: &enabled,
			},
			EchoTagger: &config.EchoTaggerConfig{
				Enabled: &enabled,
			},
		},
	}
}
