package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Feed  FeedConfig  `toml:"feed"`
	Emoji EmojiConfig `toml:"emoji"`
}

type FeedConfig struct {
	// Count is the default number of commits to show
	Count int `toml:"count"`
	// Remote names the remote whose URL builds commit links
	Remote string `toml:"remote"`
}

type EmojiConfig struct {
	// Extra maps additional commit types to glyphs, merged over the
	// built-in table (e.g. deploy = "🚢")
	Extra map[string]string `toml:"extra"`
}

func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			Count:  5,
			Remote: "origin",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gitfeed.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Nonsense values fall back to the defaults
	if cfg.Feed.Count <= 0 {
		cfg.Feed.Count = 5
	}
	if cfg.Feed.Remote == "" {
		cfg.Feed.Remote = "origin"
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
