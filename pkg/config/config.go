// Package config provides configuration schema types for hookgate.
//
// All toggles are pointer-typed so an unset field is distinguishable from an
// explicit false, and every getter is nil-safe with a default matching the
// stock hook behavior.
package config

// Config is the root configuration structure.
type Config struct {
	// Logging configures the invocation log file.
	Logging *LoggingConfig `json:"logging,omitempty" koanf:"logging" toml:"logging"`

	// Interceptors configures the built-in interceptors.
	Interceptors *InterceptorsConfig `json:"interceptors,omitempty" koanf:"interceptors" toml:"interceptors"`
}

// GetLogging returns the logging config, creating it if absent.
func (c *Config) GetLogging() *LoggingConfig {
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}

	return c.Logging
}

// GetInterceptors returns the interceptors config, creating it if absent.
func (c *Config) GetInterceptors() *InterceptorsConfig {
	if c.Interceptors == nil {
		c.Interceptors = &InterceptorsConfig{}
	}

	return c.Interceptors
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	// File is the log file path. Empty means ~/.hookgate/hookgate.log.
	File string `json:"file,omitempty" koanf:"file" toml:"file"`

	// Debug enables info-level logging.
	// Default: true
	Debug *bool `json:"debug,omitempty" koanf:"debug" toml:"debug"`

	// Trace enables debug-level logging.
	// Default: false
	Trace *bool `json:"trace,omitempty" koanf:"trace" toml:"trace"`
}

// IsDebug returns whether debug logging is enabled.
func (l *LoggingConfig) IsDebug() bool {
	if l == nil || l.Debug == nil {
		return true
	}

	return *l.Debug
}

// IsTrace returns whether trace logging is enabled.
func (l *LoggingConfig) IsTrace() bool {
	if l == nil || l.Trace == nil {
		return false
	}

	return *l.Trace
}

// GetFile returns the configured log file path, empty when unset.
func (l *LoggingConfig) GetFile() string {
	if l == nil {
		return ""
	}

	return l.File
}

// InterceptorsConfig contains per-interceptor settings.
type InterceptorsConfig struct {
	// RemovalGuard configures the rm -rf block interceptor.
	RemovalGuard *RemovalGuardConfig `json:"removal_guard,omitempty" koanf:"removal_guard" toml:"removal_guard"`

	// EchoTagger configures the echo mutation interceptor.
	EchoTagger *EchoTaggerConfig `json:"echo_tagger,omitempty" koanf:"echo_tagger" toml:"echo_tagger"`
}

// GetRemovalGuard returns the removal guard config, creating it if absent.
func (i *InterceptorsConfig) GetRemovalGuard() *RemovalGuardConfig {
	if i.RemovalGuard == nil {
		i.RemovalGuard = &RemovalGuardConfig{}
	}

	return i.RemovalGuard
}

// GetEchoTagger returns the echo tagger config, creating it if absent.
func (i *InterceptorsConfig) GetEchoTagger() *EchoTaggerConfig {
	if i.EchoTagger == nil {
		i.EchoTagger = &EchoTaggerConfig{}
	}

	return i.EchoTagger
}

// RemovalGuardConfig configures the rm -rf block interceptor.
type RemovalGuardConfig struct {
	// Enabled controls whether the interceptor is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`
}

// IsEnabled returns whether the removal guard is enabled.
func (r *RemovalGuardConfig) IsEnabled() bool {
	if r == nil || r.Enabled == nil {
		return true
	}

	return *r.Enabled
}

// EchoTaggerConfig configures the echo mutation interceptor.
type EchoTaggerConfig struct {
	// Enabled controls whether the interceptor is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`
}

// IsEnabled returns whether the echo tagger is enabled.
func (e *EchoTaggerConfig) IsEnabled() bool {
	if e == nil || e.Enabled == nil {
		return true
	}

	return *e.Enabled
}
