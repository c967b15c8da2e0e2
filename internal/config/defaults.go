package config

import (
	_ "embed"
	"time"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
)

//go:embed defaults/cannonblast.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded rules document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded rules, identical to the embedded YAML.
func Default() Config {
	return Config{
		Campaign: CampaignConfig{
			Levels: []LevelConfig{
				{ID: 1, Name: "The Pyramid", Layout: "pyramid", Ammo: 7, Stars: [3]int{3000, 6000, 8200}},
				{ID: 2, Name: "Tower of Babel", Layout: "tower", Ammo: 6, Stars: [3]int{2000, 3500, 5000}},
				{ID: 3, Name: "The Bunker", Layout: "fort", Ammo: 5, Stars: [3]int{2000, 2900, 3600}},
			},
		},
		Infinite: InfiniteConfig{
			StartAmmo: 10,
			Replenish: 3,
			Escalation: EscalationConfig{
				ScaleEvery: 7,
				Reinforced: []ProbabilityStep{
					{AfterRound: 0, Probability: 0.25},
					{AfterRound: 5, Probability: 0.40},
					{AfterRound: 15, Probability: 0.60},
				},
			},
			Caps: PatternCaps{
				TowerPairs:    12,
				PyramidLayers: 8,
				MaxScale:      6,
			},
		},
		Scoring: ScoringConfig{
			Wood:         200,
			Reinforced:   500,
			BonusPerAmmo: 500,
		},
		Damage: DamageConfig{
			ImpactThreshold: 480,
		},
		Round: RoundConfig{
			Grace: 5 * time.Second,
		},
		Arena: ArenaConfig{
			Width:          1600,
			Height:         900,
			Block:          60,
			PlankThickness: 20,
			Platform: PlatformConfig{
				Width:  500,
				Height: 20,
				XRatio: 0.7,
				Lift:   150,
			},
			Cannon: CannonConfig{
				X:                150,
				Lift:             150,
				Barrel:           80,
				ProjectileRadius: 15,
				MaxLaunchSpeed:   2100,
				MinPower:         0.3,
				MaxDrag:          300,
				AimZone:          0.5,
			},
			Trajectory: TrajectoryConfig{
				Points:      19,
				Step:        25 * time.Millisecond,
				Gravity:     691.2,
				FloorMargin: 60,
			},
		},
		Physics: PhysicsConfig{
			Gravity:  1200,
			TickRate: 60,
			Materials: Materials{
				Wood:       body.Material{Density: 0.001, Friction: 0.6},
				Reinforced: body.Material{Density: 0.004, Friction: 0.4},
				Plank:      body.Material{Density: 0.005, Friction: 0.1},
				TowerPlank: body.Material{Density: 0.005, Friction: 0.8},
				TrapPlank:  body.Material{Density: 0.001, Friction: 0.1},
				Projectile: body.Material{Density: 0.05, Friction: 0.005, Restitution: 0.6},
				Ground:     body.Material{Friction: 1},
				Platform:   body.Material{Friction: 1},
				Wall:       body.Material{Friction: 0.1},
			},
		},
	}
}
