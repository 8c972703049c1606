package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/maps"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/hookgate/pkg/config"
)

// ErrInvalidTOML is returned when a config file cannot be parsed.
var ErrInvalidTOML = errors.New("invalid TOML")

const (
	// GlobalConfigDir is the directory under $HOME holding global config.
	GlobalConfigDir = ".hookgate"

	// GlobalConfigFile is the global configuration file name.
	GlobalConfigFile = "config.toml"

	// ProjectConfigDir is the per-project configuration directory.
	ProjectConfigDir = ".hookgate"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "hookgate.toml"

	// EnvPrefix is the prefix for configuration environment variables.
	EnvPrefix = "HOOKGATE_"
)

// KoanfLoader loads configuration from all sources using koanf.
// Precedence, lowest to highest:
//  1. Defaults
//  2. Global config (~/.hookgate/config.toml)
//  3. Project config (.hookgate/config.toml or hookgate.toml)
//  4. Environment variables (HOOKGATE_*)
//  5. CLI flags
type KoanfLoader struct {
	k       *koanf.Koanf
	homeDir string
	workDir string
}

// NewKoanfLoader creates a KoanfLoader with the default directories.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(homeDir, workDir), nil
}

// NewKoanfLoaderWithDirs creates a KoanfLoader with custom directories
// (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
	}
}

// Load loads configuration from all sources with precedence. The flags map
// uses dotted config paths as keys (e.g. "logging.trace").
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	// Fresh koanf instance so repeated loads do not accumulate state.
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	globalPath := l.GlobalConfigPath()
	if err := l.loadTOMLFile(globalPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		if err := l.loadTOMLFile(projectPath); err != nil {
			return nil, errors.Wrap(err, "failed to load project config")
		}
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		flagConfig := maps.Unflatten(flags, ".")
		if err := l.k.Load(confmap.Provider(flagConfig, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config

	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// GlobalConfigPath returns the global config file path.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// findProjectConfig returns the first existing project config path, or "".
func (l *KoanfLoader) findProjectConfig() string {
	candidates := []string{
		filepath.Join(l.workDir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}

// loadTOMLFile loads one TOML file into the koanf state.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}

		return errors.CombineErrors(ErrInvalidTOML, err)
	}

	return nil
}

// envTransform maps environment variable names to config paths.
// HOOKGATE_INTERCEPTORS_REMOVAL_GUARD_ENABLED does not round-trip through a
// plain underscore-to-dot mapping, so multi-word leaf names use double
// underscores: HOOKGATE_LOGGING_TRACE → logging.trace,
// HOOKGATE_INTERCEPTORS_REMOVAL__GUARD_ENABLED → interceptors.removal_guard.enabled.
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "__", "-")
	key = strings.ReplaceAll(key, "_", ".")
	key = strings.ReplaceAll(key, "-", "_")

	return key, value
}
