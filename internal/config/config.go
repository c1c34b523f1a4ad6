// Package config loads the dashboard's YAML settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme    = "deep-sea"
	DefaultGreeting = "Hello!"

	appDir       = "tada"
	configFile   = "config.yaml"
	dataFileName = "storage.json"
)

// Config holds user settings. Zero fields fall back to defaults in Load.
type Config struct {
	DataFile string `yaml:"data_file"`
	Theme    string `yaml:"theme"`
	Greeting string `yaml:"greeting"`
	Hour12   bool   `yaml:"hour12"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		DataFile: defaultDataFile(),
		Theme:    DefaultTheme,
		Greeting: DefaultGreeting,
	}
}

// Path resolves the config file location: $TADA_CONFIG, then
// <UserConfigDir>/tada/config.yaml.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv("TADA_CONFIG")); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// Load reads path (or the default location when path is empty). A missing
// file yields Default. TADA_DATA and TADA_THEME override the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("TADA_DATA")); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_THEME")); v != "" {
		cfg.Theme = v
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.DataFile) == "" {
		c.DataFile = defaultDataFile()
	}
	c.DataFile = expandHome(c.DataFile)
	c.LogFile = expandHome(c.LogFile)
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = DefaultTheme
	}
	if c.Greeting == "" {
		c.Greeting = DefaultGreeting
	}
}

func defaultDataFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDir, dataFileName)
	}
	return dataFileName
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
