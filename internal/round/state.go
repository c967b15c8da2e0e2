package round

import (
	"time"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// State is the round lifecycle.
type State int

const (
	Idle   State = iota // No round installed
	Active              // Accepting shots and collisions
	Won                 // Every destructible removed
	Lost                // Grace window expired with targets left
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state only changes on an explicit restart.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Snapshot is a copy of the round state handed to presentation.
type Snapshot struct {
	State   State
	Mode    core.Mode
	Level   int // Campaign level id, 0 in infinite mode
	Round   int // Infinite round, 0 in campaign mode
	Ammo    int
	Score   int
	Bonus   int
	Targets int
	Pending int

	GraceActive    bool
	GraceRemaining time.Duration
}
