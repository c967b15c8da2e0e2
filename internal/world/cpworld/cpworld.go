// Package cpworld implements world.World on the Chipmunk2D port
// github.com/jakecoffman/cp.
//
// Coordinates are y-down screen units. Gravity is positive y.
package cpworld

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world"
)

// Every shape shares one collision type so a single handler sees all pairs.
const collisionType cp.CollisionType = 1

// Solver settings. Tall stacks need the extra iterations to stay upright at
// rest; sleeping lets a settled structure stop jittering.
const (
	solverIterations   = 30
	sleepTimeThreshold = 0.5 // Seconds of idling before a body sleeps
)

// World is a Chipmunk space with handle bookkeeping.
type World struct {
	space   *cp.Space
	gravity float64
	next    body.Handle
	bodies  map[body.Handle]entry
	pairs   []world.Pair // Buffered during Step
	notify  world.CollisionFunc
}

type entry struct {
	body  *cp.Body
	shape *cp.Shape
}

// New creates an empty world with downward gravity in units per second squared.
func New(gravity float64) *World {
	w := &World{
		gravity: gravity,
		bodies:  make(map[body.Handle]entry),
	}
	w.space = w.newSpace()
	return w
}

func (w *World) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: w.gravity})
	space.Iterations = solverIterations
	space.SleepTimeThreshold = sleepTimeThreshold
	h := space.NewCollisionHandler(collisionType, collisionType)
	h.BeginFunc = w.begin
	return space
}

// begin buffers a starting contact. The space is locked during Step so the
// subscriber only sees pairs after the step has finished.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ha, okA := a.UserData.(body.Handle)
	hb, okB := b.UserData.(body.Handle)
	if !okA || !okB {
		return true
	}
	n := arb.Normal()
	va, vb := a.Velocity(), b.Velocity()
	w.pairs = append(w.pairs, world.Pair{
		A:      ha,
		B:      hb,
		Normal: core.V(n.X, n.Y),
		VelA:   core.V(va.X, va.Y),
		VelB:   core.V(vb.X, vb.Y),
	})
	return true
}

// Add implements world.World.
func (w *World) Add(specs ...body.Spec) []body.Handle {
	out := make([]body.Handle, len(specs))
	for i, sp := range specs {
		w.next++
		h := w.next
		e := w.build(sp)
		e.body.UserData = h
		w.space.AddBody(e.body)
		w.space.AddShape(e.shape)
		w.bodies[h] = e
		out[i] = h
	}
	return out
}

func (w *World) build(sp body.Spec) entry {
	mass := sp.Material.Density * area(sp.Shape)
	static := sp.Static || mass <= 0

	var b *cp.Body
	switch {
	case static:
		b = cp.NewStaticBody()
	case sp.Shape.IsCircle():
		b = cp.NewBody(mass, cp.MomentForCircle(mass, 0, sp.Shape.Radius, cp.Vector{}))
	default:
		b = cp.NewBody(mass, cp.MomentForBox(mass, sp.Shape.W, sp.Shape.H))
	}
	b.SetPosition(cp.Vector{X: sp.Position.X, Y: sp.Position.Y})
	if !static {
		b.SetVelocityVector(cp.Vector{X: sp.Velocity.X, Y: sp.Velocity.Y})
	}

	var s *cp.Shape
	if sp.Shape.IsCircle() {
		s = cp.NewCircle(b, sp.Shape.Radius, cp.Vector{})
	} else {
		s = cp.NewBox(b, sp.Shape.W, sp.Shape.H, 0)
	}
	s.SetFriction(sp.Material.Friction)
	s.SetElasticity(sp.Material.Restitution)
	s.SetCollisionType(collisionType)
	return entry{body: b, shape: s}
}

func area(s body.Shape) float64 {
	if s.IsCircle() {
		return math.Pi * s.Radius * s.Radius
	}
	return s.W * s.H
}

// Remove implements world.World.
func (w *World) Remove(handles ...body.Handle) {
	for _, h := range handles {
		e, ok := w.bodies[h]
		if !ok {
			continue
		}
		w.space.RemoveShape(e.shape)
		w.space.RemoveBody(e.body)
		delete(w.bodies, h)
	}
}

// Contains implements world.World.
func (w *World) Contains(h body.Handle) bool {
	_, ok := w.bodies[h]
	return ok
}

// Position implements world.World.
func (w *World) Position(h body.Handle) (core.Vec2, bool) {
	e, ok := w.bodies[h]
	if !ok {
		return core.Vec2{}, false
	}
	p := e.body.Position()
	return core.V(p.X, p.Y), true
}

// Angle returns the rotation of a body in radians.
func (w *World) Angle(h body.Handle) (float64, bool) {
	e, ok := w.bodies[h]
	if !ok {
		return 0, false
	}
	return e.body.Angle(), true
}

// Velocity returns the linear velocity of a body.
func (w *World) Velocity(h body.Handle) (core.Vec2, bool) {
	e, ok := w.bodies[h]
	if !ok {
		return core.Vec2{}, false
	}
	v := e.body.Velocity()
	return core.V(v.X, v.Y), true
}

// Len returns the number of bodies in the world.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step implements world.World. Pairs that started during the step are
// delivered in one batch once the space is unlocked.
func (w *World) Step(dt time.Duration) {
	w.pairs = w.pairs[:0]
	w.space.Step(dt.Seconds())
	if w.notify != nil && len(w.pairs) > 0 {
		pairs := make([]world.Pair, len(w.pairs))
		copy(pairs, w.pairs)
		w.notify(pairs)
	}
}

// OnCollisionStart implements world.World.
func (w *World) OnCollisionStart(fn world.CollisionFunc) {
	w.notify = fn
}

// Reset implements world.World. Handles keep increasing across resets.
func (w *World) Reset() {
	w.space = w.newSpace()
	clear(w.bodies)
	w.pairs = w.pairs[:0]
	w.notify = nil
}

var _ world.World = (*World)(nil)
