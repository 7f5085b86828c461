package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	EnvLogLevel      = "TEXTSUM_LOG_LEVEL"
	EnvMaxWords      = "TEXTSUM_MAX_WORDS"
	EnvMinInputWords = "TEXTSUM_MIN_INPUT_WORDS"
)

// SummarizerConfig configures the extractive summarizer limits.
type SummarizerConfig struct {
	MinInputWords int `yaml:"min_input_words"`
	MaxWords      int `yaml:"max_words"`
}

// HistoryConfig configures the session history.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// UIConfig configures the interactive application.
type UIConfig struct {
	// ProcessingDelayMs delays every summarization so the spinner is visible.
	ProcessingDelayMs int `yaml:"processing_delay_ms"`
	NoticeSecs        int `yaml:"notice_secs"`
}

// LogConfig configures logging. File is used by the TUI, which cannot log to the terminal.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint. An empty address disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// AccountsConfig configures the in-memory user directory.
type AccountsConfig struct {
	SeedDemoUsers bool `yaml:"seed_demo_users"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	History    HistoryConfig    `yaml:"history"`
	UI         UIConfig         `yaml:"ui"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Accounts   AccountsConfig   `yaml:"accounts"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			if err := applyEnv(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in configuration.
func Default() *AppConfig { return defaultConfig() }

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{MinInputWords: 50, MaxWords: 200},
		History:    HistoryConfig{Capacity: 50},
		UI:         UIConfig{ProcessingDelayMs: 1000, NoticeSecs: 3},
		Log:        LogConfig{Level: "info"},
		Accounts:   AccountsConfig{SeedDemoUsers: true},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.MinInputWords <= 0 {
		cfg.Summarizer.MinInputWords = 50
	}
	if cfg.Summarizer.MaxWords <= 0 {
		cfg.Summarizer.MaxWords = 200
	}
	if cfg.History.Capacity <= 0 {
		cfg.History.Capacity = 50
	}
	if cfg.UI.ProcessingDelayMs < 0 {
		cfg.UI.ProcessingDelayMs = 0
	}
	if cfg.UI.NoticeSecs <= 0 {
		cfg.UI.NoticeSecs = 3
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if err := envInt(EnvMaxWords, &cfg.Summarizer.MaxWords); err != nil {
		return err
	}
	return envInt(EnvMinInputWords, &cfg.Summarizer.MinInputWords)
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %q", name, v)
	}
	*dst = n
	return nil
}
