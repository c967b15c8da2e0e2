package session

import (
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/damage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
)

// Event is a notification sent from the session to presentation.
type Event interface {
	sessionEvent()
}

// RoundStartedEvent is sent after a round has been installed.
type RoundStartedEvent struct {
	Plan      progression.Plan
	Structure string // Layout or pattern name
	Targets   int
}

func (RoundStartedEvent) sessionEvent() {}

// EffectEvent carries one damage outcome, for sound and particle triggers.
type EffectEvent struct {
	Effect damage.Effect
}

func (EffectEvent) sessionEvent() {}

// ScoreEvent is sent on every score change.
type ScoreEvent struct {
	Score        int
	Delta        int
	HighScore    int
	NewHighScore bool
}

func (ScoreEvent) sessionEvent() {}

// StateEvent is sent when the round state changes.
type StateEvent struct {
	State    round.State
	Snapshot round.Snapshot
}

func (StateEvent) sessionEvent() {}

// RoundEndedEvent is sent once per finished round with its rating.
type RoundEndedEvent struct {
	Result progression.Result
	RunID  string // Set when the run was recorded
}

func (RoundEndedEvent) sessionEvent() {}
