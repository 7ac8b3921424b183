// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game  GameConfig  `toml:"game"`
	Words WordsConfig `toml:"words"`
}

// GameConfig maps round and presentation settings.
type GameConfig struct {
	Duration   *int     `toml:"duration"`
	Background *string  `toml:"background"`
	Sound      *bool    `toml:"sound"`
	Volume     *float64 `toml:"volume"`
	Seed       *int64   `toml:"seed"`
	FOV        *float64 `toml:"fov"`
}

// WordsConfig seeds the word registry. Inline lists are used as-is; files hold
// one label per line and take precedence over inline lists.
type WordsConfig struct {
	Negative     []string `toml:"negative"`
	Positive     []string `toml:"positive"`
	NegativeFile *string  `toml:"negative-file"`
	PositiveFile *string  `toml:"positive-file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
