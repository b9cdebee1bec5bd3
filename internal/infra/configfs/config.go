package configfs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ignaskar/pngcoder/internal/domain"
)

// ConfigFile is the marker file that makes a directory a pngcoder workspace.
const ConfigFile = "pngcoder.yaml"

// LoadConfig loads pngcoder.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfs.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfs.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Pngcoder.Backup.Enabled != nil {
		cfg.Backup.Enabled = *y.Pngcoder.Backup.Enabled
	}
	if y.Pngcoder.Journal.Enabled != nil {
		cfg.Journal.Enabled = *y.Pngcoder.Journal.Enabled
	}
	if y.Pngcoder.Journal.Dir != "" {
		cfg.Journal.Dir = y.Pngcoder.Journal.Dir
	}
	if y.Pngcoder.Output.Format != "" {
		cfg.Output.Format = y.Pngcoder.Output.Format
	}

	return cfg, nil
}

type yamlConfig struct {
	Pngcoder struct {
		Backup struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"backup"`

		Journal struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
		} `yaml:"journal"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`
	} `yaml:"pngcoder"`
}
