package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for mdlint. All
// fields are pointers so the CLI can tell "unset" from a zero value when
// layering CLI > local > global.
type FileConfig struct {
	Check       *string `yaml:"check"`
	ExcludeDirs *string `yaml:"exclude_dirs"` // comma-separated
	Include     *string `yaml:"include"`
	Exclude     *string `yaml:"exclude"`
	MaxBytes    *int64  `yaml:"max_bytes"`
	ListFiles   *bool   `yaml:"list_files"`
	NoColor     *bool   `yaml:"no_color"`
	Baseline    *string `yaml:"baseline"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .mdlint.yml/.yaml and mdlint.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".mdlint.yml", ".mdlint.yaml", "mdlint.yml", "mdlint.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "mdlint", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
