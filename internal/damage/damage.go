// Package damage turns collision pairs into hit point loss, destruction and
// points.
package damage

import (
	"math"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// Cause records which rule destroyed a unit.
type Cause int

const (
	CauseImpact Cause = iota // Hit points ran out
	CauseGround              // Fell onto the ground
)

// String returns the cause name.
func (c Cause) String() string {
	if c == CauseGround {
		return "ground"
	}
	return "impact"
}

// Effect is the closed set of outcomes of a collision.
type Effect interface {
	effect()
}

// Damaged is emitted each time a unit loses a hit point.
type Damaged struct {
	Unit      body.Handle
	Kind      body.Kind
	HitPoints int // Remaining after the hit
	Position  core.Vec2
}

// Destroyed is emitted once per unit, when it is marked for removal.
type Destroyed struct {
	Unit     body.Handle
	Kind     body.Kind
	Points   int
	Cause    Cause
	Position core.Vec2
}

func (Damaged) effect()   {}
func (Destroyed) effect() {}

// Side is one body of a collision pair. Unit is set only for destructibles.
type Side struct {
	Role body.Role
	Unit *body.Unit
}

// Model applies the ground and impact rules.
type Model struct {
	Threshold float64 // Minimum |relative normal speed| that damages
	Scoring   config.ScoringConfig
}

// New creates a model from the rules document.
func New(d config.DamageConfig, s config.ScoringConfig) Model {
	return Model{Threshold: d.ImpactThreshold, Scoring: s}
}

// Collide evaluates one collision pair. Units already marked for removal are
// ignored, so repeated pairs within a tick never destroy or score twice.
func (m Model) Collide(a, b Side, relativeNormalSpeed float64) []Effect {
	if u, ok := groundContact(a, b); ok {
		if !u.Mark() {
			return nil
		}
		return []Effect{m.destroyed(u, CauseGround)}
	}

	if math.Abs(relativeNormalSpeed) <= m.Threshold {
		return nil
	}

	var effects []Effect
	for _, s := range [2]Side{a, b} {
		effects = m.hit(effects, s.Unit)
	}
	return effects
}

func (m Model) hit(effects []Effect, u *body.Unit) []Effect {
	if u == nil || u.Marked() {
		return effects
	}
	if u.HitPoints > 0 {
		u.HitPoints--
	}
	effects = append(effects, Damaged{
		Unit:      u.Handle,
		Kind:      u.Kind,
		HitPoints: u.HitPoints,
		Position:  u.Position,
	})
	if u.HitPoints == 0 && u.Mark() {
		effects = append(effects, m.destroyed(u, CauseImpact))
	}
	return effects
}

func (m Model) destroyed(u *body.Unit, c Cause) Destroyed {
	return Destroyed{
		Unit:     u.Handle,
		Kind:     u.Kind,
		Points:   m.Scoring.Points(u.Kind),
		Cause:    c,
		Position: u.Position,
	}
}

// groundContact returns the destructible unit in a ground/unit pair.
func groundContact(a, b Side) (*body.Unit, bool) {
	switch {
	case isGround(a) && b.Unit != nil:
		return b.Unit, true
	case isGround(b) && a.Unit != nil:
		return a.Unit, true
	}
	return nil, false
}

func isGround(s Side) bool {
	_, ok := s.Role.(body.Ground)
	return ok
}
