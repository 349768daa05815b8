package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrUnknownDifficulty is returned when a difficulty name does not match a tier.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty scales every entity velocity and the per-row score delta.
type Difficulty float64

// Difficulty tiers offered on the select screen.
const (
	Easy   Difficulty = 0.4
	Medium Difficulty = 0.8
	Hard   Difficulty = 1.3
	Harder Difficulty = 2.0
)

// Tier pairs a difficulty with its menu label.
type Tier struct {
	Name  string
	Value Difficulty
}

// Tiers lists the difficulties in menu order.
var Tiers = []Tier{
	{Name: "Easy", Value: Easy},
	{Name: "Medium", Value: Medium},
	{Name: "Hard", Value: Hard},
	{Name: "Harder", Value: Harder},
}

// ParseDifficulty resolves a tier name (case-insensitive).
func ParseDifficulty(name string) (Difficulty, error) {
	for _, t := range Tiers {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t.Value, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// String returns the tier name, or the raw multiplier for off-tier values.
func (d Difficulty) String() string {
	for _, t := range Tiers {
		if t.Value == d {
			return t.Name
		}
	}
	return fmt.Sprintf("x%.2f", float64(d))
}

// Config holds the user-editable settings stored in bogger.ini.
type Config struct {
	Game struct {
		Difficulty string `ini:"Difficulty"`
		ScoresPath string `ini:"ScoresPath"`
		Seed       uint64 `ini:"Seed"`
	} `ini:"Game"`
	Window struct {
		Scale   int    `ini:"Scale"`
		Title   string `ini:"Title"`
		ShowFPS bool   `ini:"ShowFPS"`
	} `ini:"Window"`
	Audio struct {
		Enabled bool    `ini:"Enabled"`
		Volume  float64 `ini:"Volume"`
	} `ini:"Audio"`
}

// Default returns the settings used when no ini file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Game.Difficulty = "Medium"
	cfg.Game.ScoresPath = DefaultScore
	cfg.Window.Scale = 2
	cfg.Window.Title = "Bogger"
	cfg.Audio.Enabled = true
	cfg.Audio.Volume = 0.4
	return cfg
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return cfg, fmt.Errorf("failed to map config %s: %w", path, err)
	}
	if _, err := ParseDifficulty(cfg.Game.Difficulty); err != nil {
		return cfg, err
	}
	if cfg.Window.Scale < 1 {
		cfg.Window.Scale = 1
	}
	if cfg.Audio.Volume < 0 {
		cfg.Audio.Volume = 0
	} else if cfg.Audio.Volume > 1 {
		cfg.Audio.Volume = 1
	}
	return cfg, nil
}

// Save writes cfg to path, replacing any existing file.
func Save(path string, cfg *Config) error {
	f := ini.Empty()
	if err := f.ReflectFrom(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return f.SaveTo(path)
}

// Difficulty returns the configured tier, falling back to Medium.
func (c *Config) Difficulty() Difficulty {
	d, err := ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return Medium
	}
	return d
}
