// Package config loads user defaults from a YAML file.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkoesters/xdg/basedir"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/imgresize/internal/consts"
	"github.com/srlehn/imgresize/internal/errors"
)

// Config represents the user configuration
type Config struct {
	CacheDir  string `yaml:"cache_dir"`
	Resampler string `yaml:"resampler"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
}

// DefaultPath is $XDG_CONFIG_HOME/imgresize/config.yaml.
func DefaultPath() string {
	return filepath.Join(basedir.ConfigHome, consts.LibraryName, `config.yaml`)
}

// Load reads the configuration file at path.
// An empty path loads DefaultPath() and tolerates its absence.
func Load(path string) (*Config, error) {
	optional := len(path) == 0
	if optional {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.New(err)
	}
	return Parse(data)
}

// Parse decodes YAML, unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf(`parse config: %w`, err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	cfg.CacheDir = expandHome(cfg.CacheDir)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

// Level parses LogLevel, empty means info.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c == nil || len(c.LogLevel) == 0 {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Errorf(`log_level: %w`, err)
	}
	return lvl, nil
}

func expandHome(p string) string {
	if p == `~` || strings.HasPrefix(p, `~/`) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, `~`))
		}
	}
	return p
}
