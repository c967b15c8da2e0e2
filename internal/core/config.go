package core

import "fmt"

// Mode selects between the fixed campaign and the escalating infinite run.
type Mode int

const (
	ModeCampaign Mode = iota // Fixed levels with star ratings
	ModeInfinite             // Procedural rounds until ammo runs out
)

// String returns the mode name used in the CLI and storage.
func (m Mode) String() string {
	switch m {
	case ModeCampaign:
		return "campaign"
	case ModeInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// ParseMode converts a CLI/storage name back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "campaign":
		return ModeCampaign, nil
	case "infinite", "endless":
		return ModeInfinite, nil
	default:
		return 0, fmt.Errorf("core: unknown mode %q", s)
	}
}

// RuntimeConfig contains configuration passed to the session at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Salt mixed into per-round generation seeds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 keeps generation keyed by round number alone
	}
}
