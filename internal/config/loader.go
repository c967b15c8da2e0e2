package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a rules document fails validation.
var ErrInvalid = errors.New("config: invalid")

// Load loads the rules document.
// Search order: customPath -> ~/.cannonblast/config.yaml -> ./configs/cannonblast.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cannonblast.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a rules document on top of the defaults and validates it.
// Sections missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cannonblast", filename)
}

// Validate checks the rules for values the simulation cannot run with.
func (c Config) Validate() error {
	if len(c.Campaign.Levels) == 0 {
		return fmt.Errorf("%w: campaign has no levels", ErrInvalid)
	}
	seen := make(map[int]bool, len(c.Campaign.Levels))
	for _, l := range c.Campaign.Levels {
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate level id %d", ErrInvalid, l.ID)
		}
		seen[l.ID] = true
		if l.Ammo <= 0 {
			return fmt.Errorf("%w: level %d ammo must be positive", ErrInvalid, l.ID)
		}
		if l.Stars[0] > l.Stars[1] || l.Stars[1] > l.Stars[2] {
			return fmt.Errorf("%w: level %d star thresholds must ascend", ErrInvalid, l.ID)
		}
		switch l.Layout {
		case "pyramid", "tower", "fort":
		default:
			return fmt.Errorf("%w: level %d unknown layout %q", ErrInvalid, l.ID, l.Layout)
		}
	}
	if c.Infinite.StartAmmo <= 0 {
		return fmt.Errorf("%w: infinite start_ammo must be positive", ErrInvalid)
	}
	if c.Infinite.Replenish < 0 {
		return fmt.Errorf("%w: infinite replenish must not be negative", ErrInvalid)
	}
	if c.Infinite.Escalation.ScaleEvery <= 0 {
		return fmt.Errorf("%w: scale_every must be positive", ErrInvalid)
	}
	prev := -1
	for _, s := range c.Infinite.Escalation.Reinforced {
		if s.AfterRound <= prev {
			return fmt.Errorf("%w: reinforced steps must have ascending after_round", ErrInvalid)
		}
		if s.Probability < 0 || s.Probability > 1 {
			return fmt.Errorf("%w: reinforced probability %v out of range", ErrInvalid, s.Probability)
		}
		prev = s.AfterRound
	}
	caps := c.Infinite.Caps
	if caps.TowerPairs <= 0 || caps.PyramidLayers <= 0 || caps.MaxScale < 0 {
		return fmt.Errorf("%w: pattern caps must be positive", ErrInvalid)
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 || c.Arena.Block <= 0 {
		return fmt.Errorf("%w: arena dimensions must be positive", ErrInvalid)
	}
	if c.Round.Grace < 0 {
		return fmt.Errorf("%w: grace must not be negative", ErrInvalid)
	}
	if c.Damage.ImpactThreshold < 0 {
		return fmt.Errorf("%w: impact_threshold must not be negative", ErrInvalid)
	}
	return nil
}
