// Package structure builds the breakable structures for campaign levels and
// infinite rounds, and the fixed arena they stand in.
//
// Generation is deterministic: campaign layouts are fixed, and infinite rounds
// draw unit kinds from an RNG seeded by the round number and a run salt.
package structure

import (
	"errors"
	"fmt"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

var (
	// ErrUnknownLevel is returned for a campaign level id that is not in the table.
	ErrUnknownLevel = errors.New("structure: unknown level")
	// ErrUnknownLayout is returned when a level names a layout that is not registered.
	ErrUnknownLayout = errors.New("structure: unknown layout")
	// ErrInvalidRound is returned for infinite round numbers below 1.
	ErrInvalidRound = errors.New("structure: round must be >= 1")
)

// Structure is the output of one generation.
type Structure struct {
	Name          string      // Layout or pattern name
	Specs         []body.Spec // Destructible units and planks in placement order
	Destructibles int         // Units that count toward the win condition
}

// Units returns the specs of destructible units only.
func (s Structure) Units() []body.Spec {
	out := make([]body.Spec, 0, s.Destructibles)
	for _, sp := range s.Specs {
		if _, ok := body.IsDestructible(sp.Role); ok {
			out = append(out, sp)
		}
	}
	return out
}

// Generator produces structures from the rules document.
type Generator struct {
	campaign config.CampaignConfig
	infinite config.InfiniteConfig
	arena    config.ArenaConfig
	mats     config.Materials
	esc      *config.Escalation
	salt     int64
}

// NewGenerator creates a generator. salt is mixed into every infinite-round
// seed; zero keys layouts by round number alone.
func NewGenerator(cfg config.Config, salt int64) *Generator {
	return &Generator{
		campaign: cfg.Campaign,
		infinite: cfg.Infinite,
		arena:    cfg.Arena,
		mats:     cfg.Physics.Materials,
		esc:      config.NewEscalation(cfg.Infinite.Escalation),
		salt:     salt,
	}
}

// Generate builds the structure for a campaign level id or a 1-based infinite
// round, anchored horizontally at anchorX and resting on floorY.
func (g *Generator) Generate(mode core.Mode, levelOrRound int, anchorX, floorY float64) (Structure, error) {
	b := &builder{
		anchorX: anchorX,
		floorY:  floorY,
		block:   g.arena.Block,
		plankH:  g.arena.PlankThickness,
		mats:    g.mats,
	}

	switch mode {
	case core.ModeCampaign:
		lvl, ok := g.campaign.Level(levelOrRound)
		if !ok {
			return Structure{}, fmt.Errorf("%w: %d", ErrUnknownLevel, levelOrRound)
		}
		build, ok := lookupLayout(lvl.Layout)
		if !ok {
			return Structure{}, fmt.Errorf("%w: %q", ErrUnknownLayout, lvl.Layout)
		}
		build(b)
		return b.result(lvl.Layout), nil

	case core.ModeInfinite:
		if levelOrRound < 1 {
			return Structure{}, fmt.Errorf("%w: got %d", ErrInvalidRound, levelOrRound)
		}
		round := levelOrRound
		b.rng = NewRNG(RoundSeed(g.salt, round))
		b.prob = g.esc.ReinforcedProbability(round)
		p := patternFor(round)
		p.build(b, patternParams{
			round: round,
			scale: g.esc.Scale(round),
			caps:  g.infinite.Caps,
		})
		return b.result(p.name), nil

	default:
		return Structure{}, fmt.Errorf("structure: unknown mode %d", mode)
	}
}

// PatternName returns the infinite pattern used by a 1-based round.
func PatternName(round int) string {
	if round < 1 {
		return ""
	}
	return patternFor(round).name
}
