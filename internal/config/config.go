package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config tunes analysis knobs that depend on the transcript's language or
// the user's taste. Everything has a sensible default; the file is optional.
type Config struct {
	// ExtraStopWords extends the built-in English stop-word list, e.g.
	// with common words of the transcript's language.
	ExtraStopWords []string `toml:"extra_stop_words"`
	// ExtraSystemMarkers extends the system-event phrase list for
	// languages the built-in list does not cover.
	ExtraSystemMarkers []string `toml:"extra_system_markers"`
	// TopWords is the word-frequency result size.
	TopWords int `toml:"top_words"`
}

func Load() (*Config, error) {
	cfg := &Config{
		TopWords: 50,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	cfgPath := filepath.Join(home, ".config", "chatscope", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	return cfg, nil
}
