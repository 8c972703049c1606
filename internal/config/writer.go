package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileMode is the file mode for configuration files.
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories.
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when the target config file already exists
// and force was not requested.
var ErrConfigExists = errors.New("config file already exists")

// Writer renders and writes starter configuration files.
type Writer struct {
	homeDir string
	workDir string
}

// NewWriter creates a Writer with the default directories.
func NewWriter() (*Writer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewWriterWithDirs(homeDir, workDir), nil
}

// NewWriterWithDirs creates a Writer with custom directories (for testing).
func NewWriterWithDirs(homeDir, workDir string) *Writer {
	return &Writer{
		homeDir: homeDir,
		workDir: workDir,
	}
}

// WriteDefault writes the default configuration as TOML and returns the
// written path. Global targets ~/.hookgate/config.toml, otherwise the
// project .hookgate/config.toml is written.
func (w *Writer) WriteDefault(global, force bool) (string, error) {
	var path string
	if global {
		path = filepath.Join(w.homeDir, GlobalConfigDir, GlobalConfigFile)
	} else {
		path = filepath.Join(w.workDir, ProjectConfigDir, ProjectConfigFile)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.Wrapf(ErrConfigExists, "%s", path)
		}
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), ConfigDirMode); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	if err := os.WriteFile(path, data, ConfigFileMode); err != nil {
		return "", errors.Wrap(err, "failed to write config file")
	}

	return path, nil
}
