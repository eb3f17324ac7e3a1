// Package config loads the greeting's texts, assets and tuning values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of the reference date in config files and flags.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errors.New("invalid reference date")
	ErrInvalidVolume   = errors.New("volume must be between 0 and 1")
	ErrInvalidDistance = errors.New("evade distance must be positive")
	ErrInvalidCount    = errors.New("particle count must be positive")
	ErrInvalidDelay    = errors.New("grow delay must be positive")
)

// Config holds everything the greeting is supplied with from outside.
type Config struct {
	Recipient string `yaml:"recipient"`
	Question  string `yaml:"question"`
	YesLabel  string `yaml:"yes_label"`
	NoLabel   string `yaml:"no_label"`
	Headline  string `yaml:"headline"`
	Quote     string `yaml:"quote"`
	Story     string `yaml:"story"`

	// Since is the anchor date of the counter, "YYYY-MM-DD", local midnight.
	Since string `yaml:"since"`

	// Photos are opaque image handles shown in the message card.
	Photos []string `yaml:"photos"`

	Audio AudioConfig `yaml:"audio"`
	Evade EvadeConfig `yaml:"evade"`
	Bloom BloomConfig `yaml:"bloom"`

	// Seed fixes the random source. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// AudioConfig configures the song started when the tree begins to grow.
type AudioConfig struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
	Mute   bool    `yaml:"mute"`
}

// EvadeConfig holds the dodge bounds for regular and compact terminals.
type EvadeConfig struct {
	Distance        float64 `yaml:"distance"`
	CompactDistance float64 `yaml:"compact_distance"`
}

// BloomConfig configures the growth timing and the petal burst.
type BloomConfig struct {
	GrowDelay     time.Duration `yaml:"grow_delay"`
	ParticleCount int           `yaml:"particle_count"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Recipient: "Paula Daniela",
		Question:  "Will you be my Valentine?",
		YesLabel:  "YES, I DO",
		NoLabel:   "No",
		Headline:  "My only choice",
		Quote:     "I would choose you; in a hundred lifetimes, in any reality, I would always find you.",
		Story:     "Our story",
		Since:     "2025-11-30",
		Photos: []string{
			"assets/photos/photo1.jpg",
			"assets/photos/photo2.jpg",
			"assets/photos/photo3.jpg",
			"assets/photos/photo4.jpg",
		},
		Audio: AudioConfig{
			Path:   "love-song.mp3",
			Volume: 0.5,
		},
		Evade: EvadeConfig{
			Distance:        150,
			CompactDistance: 80,
		},
		Bloom: BloomConfig{
			GrowDelay:     3500 * time.Millisecond,
			ParticleCount: 100,
		},
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the greeting cannot run without.
func (c Config) Validate() error {
	if _, err := c.SinceTime(); err != nil {
		return err
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.Audio.Volume)
	}
	if c.Evade.Distance <= 0 || c.Evade.CompactDistance <= 0 {
		return ErrInvalidDistance
	}
	if c.Bloom.ParticleCount <= 0 {
		return ErrInvalidCount
	}
	if c.Bloom.GrowDelay <= 0 {
		return ErrInvalidDelay
	}
	return nil
}

// SinceTime parses Since as local midnight.
func (c Config) SinceTime() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, c.Since, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, c.Since, err)
	}
	return t, nil
}

// DefaultPath resolves the config file path in priority order:
// 1. BLOSSOM_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/blossom/config.yaml
// 3. ~/.config/blossom/config.yaml
// It returns "" when no file exists at the resolved location.
func DefaultPath() (string, error) {
	if p := os.Getenv("BLOSSOM_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	p := filepath.Join(configHome, "blossom", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", p, err)
	}
	return p, nil
}
