package structure

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
)

// Layout places the units of a fixed campaign structure.
type Layout func(b *builder)

var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex
)

func init() {
	registerLayout("pyramid", pyramidLayout)
	registerLayout("tower", towerLayout)
	registerLayout("fort", fortLayout)
}

// registerLayout adds a campaign layout.
// Panics if a layout with the same name is already registered.
func registerLayout(name string, l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[name]; exists {
		panic(fmt.Sprintf("structure: layout %q already registered", name))
	}
	layouts[name] = l
}

func lookupLayout(name string) (Layout, bool) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := layouts[name]
	return l, ok
}

// Layouts returns the registered campaign layout names, sorted.
func Layouts() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pyramidLayout stacks six rows, one block wider per row going down.
// Even rows (counted from the apex) are wood, odd rows reinforced.
func pyramidLayout(b *builder) {
	const rows = 6
	for r := 0; r < rows; r++ {
		kind := body.Wood
		if r%2 == 1 {
			kind = body.Reinforced
		}
		for c := 0; c <= r; c++ {
			b.at(float64(c)-float64(r)/2, float64(rows-1-r), kind)
		}
	}
}

// towerLayout builds six tiers of paired blocks. The reinforced side swaps
// every tier and a plank caps every odd tier below the top.
func towerLayout(b *builder) {
	const tiers = 6
	lift := 0.0
	for i := 0; i < tiers; i++ {
		y := b.tier(float64(i)) - lift
		left, right := body.Wood, body.Reinforced
		if i%2 == 0 {
			left, right = body.Reinforced, body.Wood
		}
		b.unit(b.x(-0.5), y, left)
		b.unit(b.x(0.5), y, right)

		if i%2 == 1 && i < tiers-1 {
			b.plank(b.anchorX, y-b.block/2-b.plankH/2, 2.2, b.mats.TowerPlank)
			lift += b.plankH
		}
	}
}

// fortLayout is two reinforced pillars bridged by a plank with a wood block on top.
func fortLayout(b *builder) {
	for _, dx := range []float64{-1, 1} {
		b.at(dx, 0, body.Reinforced)
		b.at(dx, 1, body.Reinforced)
	}
	top := b.floorY - 2*b.block
	b.plank(b.anchorX, top-b.plankH/2, 3, b.mats.Plank)
	b.unit(b.anchorX, top-b.plankH-b.block/2, body.Wood)
}
