// Package world is the contract between the simulation core and the rigid-body
// engine. The core creates, removes and queries bodies through World and never
// touches transforms itself.
package world

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World

import (
	"time"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// Pair is one collision that started during a step.
type Pair struct {
	A, B   body.Handle
	Normal core.Vec2 // Collision normal from A to B
	VelA   core.Vec2
	VelB   core.Vec2
}

// RelativeNormalSpeed projects the relative velocity of A and B onto the normal.
func (p Pair) RelativeNormalSpeed() float64 {
	return p.Normal.Dot(p.VelA.Sub(p.VelB))
}

// CollisionFunc receives every pair that started touching during one step.
type CollisionFunc func(pairs []Pair)

// World is the physics engine as seen by the simulation.
type World interface {
	// Add creates bodies from specs and inserts them into the world.
	// Handles are returned in spec order.
	Add(specs ...body.Spec) []body.Handle

	// Remove takes bodies out of the world. Unknown handles are ignored.
	Remove(handles ...body.Handle)

	// Contains reports whether a body is still in the world.
	Contains(h body.Handle) bool

	// Position returns the live centre of a body.
	Position(h body.Handle) (core.Vec2, bool)

	// Step advances the simulation. Collision callbacks run before Step returns.
	Step(dt time.Duration)

	// OnCollisionStart replaces the collision subscriber.
	OnCollisionStart(fn CollisionFunc)

	// Reset removes every body and the collision subscriber.
	Reset()
}
