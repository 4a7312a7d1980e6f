package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	JournalLines int        `toml:"journal_lines"` // journal lines shown in the details popup
	UseSudo      bool       `toml:"use_sudo"`      // run lifecycle actions under sudo
	UnitType     string     `toml:"unit_type"`     // systemctl --type value
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration.
type UISettings struct {
	ConfirmActions bool `toml:"confirm_actions"` // ask before start/stop/enable/disable
}

// DefaultPath returns the default config file location,
// ~/.config/unitgrip/config.toml.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "unitgrip", "config.toml")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		JournalLines: 10,
		UseSudo:      true,
		UnitType:     "service",
		UISettings: UISettings{
			ConfirmActions: true,
		},
	}
}

// Load reads configuration from path. A missing file yields the
// defaults and writes them back so the user has something to edit; a
// corrupt file also yields the defaults but is left untouched.
func Load(path string) *Config {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg, path); err != nil {
			log.Printf("Could not write default config: %v", err)
		}
		return cfg
	}
	if err != nil {
		log.Printf("Could not read config file: %v", err)
		return Default()
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		log.Printf("Ignoring corrupt config %s: %v", path, err)
		return Default()
	}
	if cfg.JournalLines < 1 {
		cfg.JournalLines = Default().JournalLines
	}
	if cfg.UnitType == "" {
		cfg.UnitType = Default().UnitType
	}
	return cfg
}

// Save writes the configuration to path, creating the directory if
// needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
