package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/clyde80/cliclock/internal/clock"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration.
// It only seeds the clock at startup; nothing the user toggles at runtime is written back.
type UserConfig struct {
	Clock       ClockConfig         `toml:"clock"`
	Keybindings map[string][]string `toml:"keybindings"`
}

// ClockConfig holds the startup display settings
type ClockConfig struct {
	Color          *int   `toml:"color"`            // Palette index 0-7 (default: 4, blue)
	TwentyFourHour bool   `toml:"twenty_four_hour"` // Use 24-hour format (default: false)
	ShowSeconds    *bool  `toml:"show_seconds"`     // Show the seconds field (default: true)
	Theme          string `toml:"theme"`            // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	color := DefaultColor
	showSeconds := true
	return &UserConfig{
		Clock: ClockConfig{
			Color:          &color,
			TwentyFourHour: false,
			ShowSeconds:    &showSeconds,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// LoadUserConfig loads the user configuration from the XDG config directory.
// A missing file is not an error; the defaults are returned instead.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadUserConfigFile(configPath)
}

// LoadUserConfigFile reads, fills and validates the config at path.
// A file that fails validation yields a *ConfigError.
func LoadUserConfigFile(path string) (*UserConfig, error) {
	// #nosec G304 - path is from XDG search or the caller, reading user config is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingClock(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	if validation := ValidateConfig(&cfg); validation.HasErrors() {
		return nil, &ConfigError{Path: path, Errors: validation.Errors}
	}

	return &cfg, nil
}

// WriteDefaultConfig writes the default configuration to path, replacing any existing file.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# cliclock configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("# Command line flags take precedence over these values.\n")
	sb.WriteString("# Settings changed with keys while the clock runs are not saved here.\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# CLOCK SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# color: " + clock.ValidColors() + "\n")
	sb.WriteString("#   Default: 4\n")
	sb.WriteString("#\n")
	sb.WriteString("# twenty_four_hour: Display 24-hour time\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("#\n")
	sb.WriteString("# show_seconds: Show the seconds field\n")
	sb.WriteString("#   Default: true\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name; the palette comes from the theme's first 8 colors.\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#\n")
	sb.WriteString("# [keybindings]: action = [keys]. Actions: " + strings.Join(Actions(), ", ") + "\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingClock fills in any missing clock settings with defaults
func fillMissingClock(cfg, defaultCfg *UserConfig) {
	if cfg.Clock.Color == nil {
		cfg.Clock.Color = defaultCfg.Clock.Color
	}
	if cfg.Clock.ShowSeconds == nil {
		cfg.Clock.ShowSeconds = defaultCfg.Clock.ShowSeconds
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings == nil {
		cfg.Keybindings = make(map[string][]string)
	}
	for k, v := range defaultCfg.Keybindings {
		if _, exists := cfg.Keybindings[k]; !exists {
			cfg.Keybindings[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(ConfigFileName)
	}
	return path, nil
}
