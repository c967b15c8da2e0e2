package structure

import (
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
)

type patternParams struct {
	round int
	scale int
	caps  config.PatternCaps
}

// bounded returns the scale clamped to the shared pattern cap.
func (p patternParams) bounded() int {
	if p.scale > p.caps.MaxScale {
		return p.caps.MaxScale
	}
	return p.scale
}

type pattern struct {
	name  string
	build func(b *builder, p patternParams)
}

// patterns cycle with the round number: round 1 is tower, round 13 is tower again.
var patterns = []pattern{
	{"tower", towerPattern},
	{"pyramid", pyramidPattern},
	{"castle", castlePattern},
	{"bridge", bridgePattern},
	{"double-wall", doubleWallPattern},
	{"l-shape", lShapePattern},
	{"zigzag", zigzagPattern},
	{"diamond", diamondPattern},
	{"star", starPattern},
	{"arch", archPattern},
	{"trap", trapPattern},
	{"fortress", fortressPattern},
}

// Patterns returns the infinite pattern names in cycle order.
func Patterns() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.name
	}
	return names
}

func patternFor(round int) pattern {
	return patterns[(round-1)%len(patterns)]
}

func towerPattern(b *builder, p patternParams) {
	pairs := min(p.caps.TowerPairs, 4+p.scale+p.round/3)
	for i := 0; i < pairs; i++ {
		b.at(-0.5, float64(i), b.random())
		b.at(0.5, float64(i), b.random())
	}
}

func pyramidPattern(b *builder, p patternParams) {
	layers := min(p.caps.PyramidLayers, 3+p.scale+p.round/5)
	for r := 0; r < layers; r++ {
		for c := 0; c <= r; c++ {
			b.at(float64(c)-float64(r)/2, float64(layers-1-r), b.random())
		}
	}
}

// castlePattern is two reinforced towers around a shorter wood keep.
func castlePattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := 0; i < 4+scale; i++ {
		b.at(-1.5, float64(i), body.Reinforced)
		b.at(1.5, float64(i), body.Reinforced)
	}
	for i := 0; i < 2+scale; i++ {
		b.at(0, float64(i), body.Wood)
	}
}

// bridgePattern spans two reinforced pillars with a long plank carrying a wood stack.
func bridgePattern(b *builder, p patternParams) {
	scale := p.bounded()
	height := 1 + scale
	for i := 0; i < height; i++ {
		b.at(-2, float64(i), body.Reinforced)
		b.at(2, float64(i), body.Reinforced)
	}
	plankY := b.floorY - b.block*float64(height) - b.block/2
	b.plank(b.anchorX, plankY, 5, b.mats.Plank)

	deck := plankY - b.block/2 - b.plankH/2
	for i := 0; i <= scale; i++ {
		b.unit(b.anchorX, deck-float64(i)*b.block, body.Wood)
	}
	if scale > 1 {
		b.unit(b.x(-1), deck, body.Wood)
		b.unit(b.x(1), deck, body.Wood)
	}
}

func doubleWallPattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := 0; i < 5+scale; i++ {
		b.at(-0.6, float64(i), body.Wood)
		b.at(0.6, float64(i), body.Reinforced)
	}
}

func lShapePattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := 0; i < 3+scale; i++ {
		b.at(0, float64(i), body.Reinforced)
	}
	for i := 1; i <= 2+scale; i++ {
		b.at(float64(i), 0, body.Wood)
	}
}

func zigzagPattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := 0; i < 6+scale; i++ {
		offset := 0.0
		if i%2 == 1 {
			offset = 0.5
		}
		b.at(offset, float64(i), b.random())
	}
}

func diamondPattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := -1; i <= 1; i++ {
		b.at(float64(i), 0, body.Reinforced)
	}
	for h := 0; h <= scale; h++ {
		b.at(-0.5, float64(1+h), body.Wood)
		b.at(0.5, float64(1+h), body.Wood)
	}
	b.at(0, float64(2+scale), body.Wood)
}

func starPattern(b *builder, p patternParams) {
	scale := p.bounded()
	b.at(0, 0, body.Reinforced)
	centre := 1 + scale
	for i := 0; i < centre; i++ {
		b.at(0, float64(1+i), body.Reinforced)
		if i == 0 {
			b.at(-1, 1, body.Wood)
			b.at(1, 1, body.Wood)
		}
	}
	b.at(0, float64(1+centre), body.Wood)
}

// archPattern raises two reinforced columns and lays a plank across their tops.
func archPattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := 0; i <= scale+1; i++ {
		b.at(-1.5, float64(i), body.Reinforced)
		b.at(1.5, float64(i), body.Reinforced)
	}
	top := b.tier(float64(scale+1)) - b.block/2
	b.plank(b.anchorX, top-b.plankH/2, 4, b.mats.Plank)
	b.unit(b.anchorX, top-b.plankH-b.block/2, body.Wood)
}

// trapPattern balances a reinforced block on a short plank over wood legs.
func trapPattern(b *builder, p patternParams) {
	scale := p.bounded()
	for i := 0; i <= scale; i++ {
		b.at(-0.5, float64(i), body.Wood)
		b.at(0.5, float64(i), body.Wood)
	}
	trapY := b.floorY - b.block*(1.5+float64(scale))
	b.plank(b.anchorX, trapY, 2.2, b.mats.TrapPlank)
	b.unit(b.anchorX, trapY-b.block, body.Reinforced)
}

// fortressPattern is a solid block wall with a reinforced foundation row.
func fortressPattern(b *builder, p patternParams) {
	scale := p.bounded()
	rows := 3 + scale/2
	half := 1 + (scale+1)/2
	for r := 0; r < rows; r++ {
		for c := -half; c <= half; c++ {
			kind := body.Reinforced
			if r > 0 {
				kind = b.random()
			}
			b.at(float64(c), float64(r), kind)
		}
	}
}
