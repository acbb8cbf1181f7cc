package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/bekirdag/sheetfm/internal/sheet"
)

const configFileName = "ui.yaml"

type uiConfig struct {
	Theme       string            `yaml:"theme,omitempty"`
	OpenCommand string            `yaml:"open_command,omitempty"`
	LogLimit    int               `yaml:"log_limit,omitempty"`
	StartLeft   string            `yaml:"start_left,omitempty"`
	StartRight  string            `yaml:"start_right,omitempty"`
	Bindings    map[string]string `yaml:"bindings,omitempty"`
}

func defaultOpenCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

func (c *uiConfig) applyDefaults() {
	if c.Theme == "" {
		c.Theme = markdownThemeAuto.String()
	}
	if c.OpenCommand == "" {
		c.OpenCommand = defaultOpenCommand()
	}
	if c.LogLimit <= 0 {
		c.LogLimit = sheet.DefaultMaxMessages
	}
	if c.StartLeft == "" {
		c.StartLeft = "."
	}
	if c.StartRight == "" {
		c.StartRight = ".."
	}
}

// loadUIConfig reads ui.yaml from configDir. A missing file is not an error;
// any failure still yields a usable default config.
func loadUIConfig(configDir string) (*uiConfig, string, error) {
	path := filepath.Join(configDir, configFileName)
	cfg := &uiConfig{}
	defer cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, path, nil
		}
		return cfg, path, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		*cfg = uiConfig{}
		return cfg, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

func saveUIConfig(cfg *uiConfig, path string) error {
	if cfg == nil {
		cfg = &uiConfig{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "sheetfm")
}
