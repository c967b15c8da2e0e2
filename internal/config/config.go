// Package config provides YAML-based rules loading for Cannon Blast: the
// campaign level table, infinite-mode escalation, scoring, arena geometry and
// physics materials.
package config

import (
	"time"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
)

// Config is the full rules document.
type Config struct {
	Campaign CampaignConfig `yaml:"campaign"`
	Infinite InfiniteConfig `yaml:"infinite"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Damage   DamageConfig   `yaml:"damage"`
	Round    RoundConfig    `yaml:"round"`
	Arena    ArenaConfig    `yaml:"arena"`
	Physics  PhysicsConfig  `yaml:"physics"`
}

// CampaignConfig lists the fixed levels in play order.
type CampaignConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig is one campaign level.
type LevelConfig struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Layout string `yaml:"layout"` // "pyramid", "tower" or "fort"
	Ammo   int    `yaml:"ammo"`
	Stars  [3]int `yaml:"stars"` // Ascending score thresholds
}

// InfiniteConfig controls the endless mode.
type InfiniteConfig struct {
	StartAmmo  int              `yaml:"start_ammo"`
	Replenish  int              `yaml:"replenish"` // Added to carried ammo each new round
	Escalation EscalationConfig `yaml:"escalation"`
	Caps       PatternCaps      `yaml:"caps"`
}

// EscalationConfig defines how rounds get harder.
type EscalationConfig struct {
	ScaleEvery int               `yaml:"scale_every"` // Rounds per scale step
	Reinforced []ProbabilityStep `yaml:"reinforced"`
}

// ProbabilityStep sets the reinforced probability for rounds after AfterRound.
type ProbabilityStep struct {
	AfterRound  int     `yaml:"after_round"`
	Probability float64 `yaml:"probability"`
}

// PatternCaps bounds procedural structure growth.
type PatternCaps struct {
	TowerPairs    int `yaml:"tower_pairs"`
	PyramidLayers int `yaml:"pyramid_layers"`
	MaxScale      int `yaml:"max_scale"` // Applied to every other pattern
}

// ScoringConfig is the points table.
type ScoringConfig struct {
	Wood         int `yaml:"wood"`
	Reinforced   int `yaml:"reinforced"`
	BonusPerAmmo int `yaml:"bonus_per_ammo"`
}

// Points returns the destruction award for a unit kind.
func (s ScoringConfig) Points(k body.Kind) int {
	if k == body.Reinforced {
		return s.Reinforced
	}
	return s.Wood
}

// DamageConfig holds the impact rule parameters.
type DamageConfig struct {
	ImpactThreshold float64 `yaml:"impact_threshold"` // Engine units per second
}

// RoundConfig holds round timing.
type RoundConfig struct {
	Grace time.Duration `yaml:"grace"`
}

// ArenaConfig describes the fixed scene around a structure. Units are world
// pixels with Y pointing down.
type ArenaConfig struct {
	Width          float64          `yaml:"width"`
	Height         float64          `yaml:"height"`
	Block          float64          `yaml:"block"`
	PlankThickness float64          `yaml:"plank_thickness"`
	Platform       PlatformConfig   `yaml:"platform"`
	Cannon         CannonConfig     `yaml:"cannon"`
	Trajectory     TrajectoryConfig `yaml:"trajectory"`
}

// PlatformConfig places the elevated shelf.
type PlatformConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	XRatio float64 `yaml:"x_ratio"` // Fraction of arena width
	Lift   float64 `yaml:"lift"`    // Distance above the arena bottom
}

// CannonConfig describes the emplacement and its shots.
type CannonConfig struct {
	X                float64 `yaml:"x"`
	Lift             float64 `yaml:"lift"`
	Barrel           float64 `yaml:"barrel"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
	MaxLaunchSpeed   float64 `yaml:"max_launch_speed"`
	MinPower         float64 `yaml:"min_power"`
	MaxDrag          float64 `yaml:"max_drag"`
	AimZone          float64 `yaml:"aim_zone"` // Fraction of width where a press starts aiming
}

// TrajectoryConfig shapes the aiming preview.
type TrajectoryConfig struct {
	Points      int           `yaml:"points"`
	Step        time.Duration `yaml:"step"`
	Gravity     float64       `yaml:"gravity"`
	FloorMargin float64       `yaml:"floor_margin"`
}

// PhysicsConfig feeds the rigid-body engine.
type PhysicsConfig struct {
	Gravity   float64   `yaml:"gravity"`
	TickRate  int       `yaml:"tick_rate"`
	Materials Materials `yaml:"materials"`
}

// Materials lists physical properties per body role.
type Materials struct {
	Wood       body.Material `yaml:"wood"`
	Reinforced body.Material `yaml:"reinforced"`
	Plank      body.Material `yaml:"plank"`
	TowerPlank body.Material `yaml:"tower_plank"`
	TrapPlank  body.Material `yaml:"trap_plank"`
	Projectile body.Material `yaml:"projectile"`
	Ground     body.Material `yaml:"ground"`
	Platform   body.Material `yaml:"platform"`
	Wall       body.Material `yaml:"wall"`
}

// Block returns the material for a destructible kind.
func (m Materials) Block(k body.Kind) body.Material {
	if k == body.Reinforced {
		return m.Reinforced
	}
	return m.Wood
}

// Level returns the campaign level with the given id.
func (c CampaignConfig) Level(id int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// Step returns the fixed physics timestep.
func (p PhysicsConfig) Step() time.Duration {
	if p.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(p.TickRate)
}
