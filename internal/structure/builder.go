package structure

import (
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// builder accumulates body specs for one structure.
// Horizontal offsets are in block units from the anchor; tiers count blocks
// stacked on the floor, so tier 0 rests on it.
type builder struct {
	anchorX float64
	floorY  float64
	block   float64
	plankH  float64
	mats    config.Materials
	rng     *RNG
	prob    float64

	specs []body.Spec
	units int
}

// x returns the world x of an offset measured in blocks.
func (b *builder) x(dx float64) float64 {
	return b.anchorX + dx*b.block
}

// tier returns the centre y of a block resting tier levels above the floor.
func (b *builder) tier(level float64) float64 {
	return b.floorY - b.block/2 - level*b.block
}

// random picks a kind from the round's reinforced probability.
func (b *builder) random() body.Kind {
	if b.rng != nil && b.rng.Float() < b.prob {
		return body.Reinforced
	}
	return body.Wood
}

// unit places a destructible block centred at (x, y).
func (b *builder) unit(x, y float64, k body.Kind) {
	b.specs = append(b.specs, body.Spec{
		Role:     body.Destructible{Kind: k},
		Shape:    body.Box(b.block, b.block),
		Position: core.V(x, y),
		Material: b.mats.Block(k),
	})
	b.units++
}

// at places a block by offset and tier.
func (b *builder) at(dx, level float64, k body.Kind) {
	b.unit(b.x(dx), b.tier(level), k)
}

// plank places a dynamic connecting board `blocks` wide centred at (x, y).
func (b *builder) plank(x, y, blocks float64, m body.Material) {
	b.specs = append(b.specs, body.Spec{
		Role:     body.Plank{},
		Shape:    body.Box(blocks*b.block, b.plankH),
		Position: core.V(x, y),
		Material: m,
	})
}

func (b *builder) result(name string) Structure {
	return Structure{Name: name, Specs: b.specs, Destructibles: b.units}
}
