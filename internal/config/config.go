package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// Data file locations
	Data DataConfig `json:"data"`

	// Generation settings
	Generation GenerationConfig `json:"generation"`

	// UI preferences for the review screen
	UI UIConfig `json:"ui"`
}

// DataConfig holds input and output locations
type DataConfig struct {
	LexiconFile   string `json:"lexicon_file"`
	SequencesFile string `json:"sequences_file"`
	DatabaseFile  string `json:"database_file"`
}

// GenerationConfig holds generation run settings
type GenerationConfig struct {
	TargetPairs int    `json:"target_pairs"`
	Language    string `json:"language"` // built-in morphology name or a YAML file path
}

// UIConfig holds UI preferences
type UIConfig struct {
	ItemLimit int `json:"item_limit"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Data: DataConfig{
			DatabaseFile: filepath.Join(home, ".minpair", "pairs.db"),
		},
		Generation: GenerationConfig{
			TargetPairs: 120,
			Language:    "italian",
		},
		UI: UIConfig{
			ItemLimit: 500,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".minpair", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
