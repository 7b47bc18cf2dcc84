package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Playback methods.
const (
	MethodType  = "type"
	MethodPaste = "paste"
)

// DefaultPath is the settings file used when none is given.
const DefaultPath = "settings.toml"

// PathEnvVar overrides the settings file path.
const PathEnvVar = "MACROMANAGER_SETTINGS"

// DefaultKeyringService names the keyring service holding macro secrets.
const DefaultKeyringService = "MacroManager"

// PlaybackConfig controls how macro text is emitted.
type PlaybackConfig struct {
	Method     string `toml:"method"`
	KeyDelayMs int    `toml:"key_delay_ms"`
	SettleMs   int    `toml:"settle_ms"`
}

// HotkeysConfig holds the control hotkeys. An empty string disables one.
type HotkeysConfig struct {
	TogglePlayback string `toml:"toggle_playback"`
	ReloadMacros   string `toml:"reload_macros"`
	SaveMacros     string `toml:"save_macros"`
}

// Config holds the application settings.
type Config struct {
	MacroFile        string         `toml:"macro_file"`
	UseNotifications bool           `toml:"use_notifications"`
	ExpandSecrets    bool           `toml:"expand_secrets"`
	WatchMacroFile   bool           `toml:"watch_macro_file"`
	KeyringService   string         `toml:"keyring_service"`
	Playback         PlaybackConfig `toml:"playback"`
	Hotkeys          HotkeysConfig  `toml:"hotkeys"`

	// Non-TOML fields (runtime state)
	configPath string
}

// Default returns the settings written to a fresh settings file.
func Default() *Config {
	return &Config{
		MacroFile:        "Macros.xml",
		UseNotifications: true,
		ExpandSecrets:    false,
		WatchMacroFile:   true,
		KeyringService:   DefaultKeyringService,
		Playback: PlaybackConfig{
			Method:   MethodType,
			SettleMs: 50,
		},
		Hotkeys: HotkeysConfig{
			TogglePlayback: "ctrl+alt+m",
			ReloadMacros:   "ctrl+alt+r",
			SaveMacros:     "ctrl+alt+s",
		},
	}
}

// GetConfigPath returns the path the settings were loaded from.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// SettleDelay returns the playback settle time.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Playback.SettleMs) * time.Millisecond
}

// ResolvePath returns the settings path: the environment override if set,
// otherwise path, otherwise DefaultPath.
func ResolvePath(path string) string {
	if env := os.Getenv(PathEnvVar); env != "" {
		return env
	}
	if path == "" {
		return DefaultPath
	}
	return path
}

// Load reads settings from configPath, creating a default file first if
// it does not exist. Values missing from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Settings file '%s' not found. Attempting to create default.", configPath)
		if createErr := CreateDefaultConfig(configPath); createErr != nil {
			return nil, fmt.Errorf("settings file not found and failed to create default '%s': %w", configPath, createErr)
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file '%s': %w", configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in '%s': %w", configPath, err)
	}

	cfg.configPath = configPath
	if cfg.KeyringService == "" {
		cfg.KeyringService = DefaultKeyringService
	}
	// A relative macro file is resolved against the settings directory.
	if cfg.MacroFile != "" && !filepath.IsAbs(cfg.MacroFile) {
		cfg.MacroFile = filepath.Join(filepath.Dir(configPath), cfg.MacroFile)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Playback.Method {
	case MethodType, MethodPaste:
	default:
		return fmt.Errorf("unknown playback method %q (want %q or %q)", c.Playback.Method, MethodType, MethodPaste)
	}
	if c.Playback.KeyDelayMs < 0 || c.Playback.SettleMs < 0 {
		return fmt.Errorf("playback delays must not be negative")
	}
	return nil
}

// Save writes the current settings back to the file they were loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("settings were not loaded from a file")
	}
	return write(c.configPath, c)
}

// CreateDefaultConfig writes default settings to configPath unless the
// file already exists.
func CreateDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking settings path '%s': %w", configPath, err)
	}

	log.Printf("Creating default settings file at: %s", configPath)
	if err := write(configPath, Default()); err != nil {
		return err
	}
	log.Printf("Default settings file created successfully.")
	return nil
}

func write(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write settings file '%s': %w", path, err)
	}
	return nil
}
