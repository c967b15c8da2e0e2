// Package round owns the state of one round: ammunition, score, the live
// destructible count, the removal set and the empty-ammo grace timer.
package round

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

import (
	"cmp"
	"slices"
	"time"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/damage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/sched"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world"
)

// Listener receives round notifications synchronously, in order.
type Listener interface {
	EffectOccurred(e damage.Effect)
	ScoreChanged(score, delta int)
	StateChanged(s State)
}

type noopListener struct{}

func (noopListener) EffectOccurred(damage.Effect) {}
func (noopListener) ScoreChanged(int, int)        {}
func (noopListener) StateChanged(State)           {}

// Options configures a Controller.
type Options struct {
	World        world.World
	Scheduler    *sched.Scheduler
	Model        damage.Model
	Grace        time.Duration
	BonusPerAmmo int
	Listener     Listener
}

// Setup describes the round to install.
type Setup struct {
	Mode  core.Mode
	Level int
	Round int
	Ammo  int
	Score int // Score carried into the round

	Scene     []body.Spec // Static arena bodies
	Structure []body.Spec // Destructible units and planks
}

// Controller runs the Idle -> Active -> Won/Lost state machine.
type Controller struct {
	world        world.World
	sched        *sched.Scheduler
	model        damage.Model
	graceFor     time.Duration
	bonusPerAmmo int
	listener     Listener

	state   State
	mode    core.Mode
	level   int
	round   int
	ammo    int
	score   int
	bonus   int
	targets int

	bodies  map[body.Handle]body.Spec
	units   map[body.Handle]*body.Unit
	pending []body.Handle
	grace   *sched.Timer
}

// New creates an idle controller.
func New(opts Options) *Controller {
	l := opts.Listener
	if l == nil {
		l = noopListener{}
	}
	return &Controller{
		world:        opts.World,
		sched:        opts.Scheduler,
		model:        opts.Model,
		graceFor:     opts.Grace,
		bonusPerAmmo: opts.BonusPerAmmo,
		listener:     l,
		bodies:       make(map[body.Handle]body.Spec),
		units:        make(map[body.Handle]*body.Unit),
	}
}

// Begin clears the world, installs the scene and structure, subscribes to
// collisions and enters Active. Any timer left from a previous round is
// cancelled first. A structure without destructibles is won on the spot.
func (c *Controller) Begin(s Setup) {
	c.cancelGrace()
	c.world.Reset()

	c.mode = s.Mode
	c.level = s.Level
	c.round = s.Round
	c.ammo = s.Ammo
	c.score = s.Score
	c.bonus = 0
	c.pending = nil
	clear(c.bodies)
	clear(c.units)

	c.install(s.Scene)
	c.install(s.Structure)
	c.targets = len(c.units)

	c.world.OnCollisionStart(c.Collide)
	c.setState(Active)
	if c.targets == 0 {
		c.win()
	}
}

func (c *Controller) install(specs []body.Spec) {
	if len(specs) == 0 {
		return
	}
	handles := c.world.Add(specs...)
	for i, h := range handles {
		sp := specs[i]
		c.bodies[h] = sp
		if kind, ok := body.IsDestructible(sp.Role); ok {
			c.units[h] = body.NewUnit(h, kind, sp.Position)
		}
	}
}

// Collide routes one step's collision pairs through the damage model.
// Pairs are ignored outside Active.
func (c *Controller) Collide(pairs []world.Pair) {
	for _, p := range pairs {
		if c.state != Active {
			return
		}
		a, okA := c.side(p.A)
		b, okB := c.side(p.B)
		if !okA || !okB {
			continue
		}
		for _, e := range c.model.Collide(a, b, p.RelativeNormalSpeed()) {
			c.apply(e)
		}
	}
}

func (c *Controller) side(h body.Handle) (damage.Side, bool) {
	sp, ok := c.bodies[h]
	if !ok {
		return damage.Side{}, false
	}
	return damage.Side{Role: sp.Role, Unit: c.units[h]}, true
}

func (c *Controller) apply(e damage.Effect) {
	c.listener.EffectOccurred(e)
	if d, ok := e.(damage.Destroyed); ok {
		c.pending = append(c.pending, d.Unit)
		c.addScore(d.Points)
	}
}

func (c *Controller) addScore(delta int) {
	if delta == 0 {
		return
	}
	c.score += delta
	c.listener.ScoreChanged(c.score, delta)
}

// Fire launches a projectile described by spec. It returns false when the
// round is not Active or no ammunition is left.
func (c *Controller) Fire(spec body.Spec) bool {
	if c.state != Active || c.ammo <= 0 {
		return false
	}
	spec.Role = body.Projectile{}
	for _, h := range c.world.Add(spec) {
		c.bodies[h] = spec
	}
	c.ammo--
	if c.ammo == 0 && c.targets > 0 {
		c.grace = c.sched.After(c.graceFor, c.expire)
	}
	return true
}

// Consolidate removes units marked since the last call, recounts the live
// destructibles and declares the win when none remain.
func (c *Controller) Consolidate() {
	if c.state != Active || len(c.pending) == 0 {
		return
	}
	c.world.Remove(c.pending...)
	for _, h := range c.pending {
		delete(c.units, h)
		delete(c.bodies, h)
	}
	c.pending = nil

	live := 0
	for h := range c.units {
		if c.world.Contains(h) {
			live++
		}
	}
	c.targets = live

	if c.targets == 0 {
		c.win()
	}
}

func (c *Controller) win() {
	c.cancelGrace()
	c.bonus = c.ammo * c.bonusPerAmmo
	c.addScore(c.bonus)
	c.setState(Won)
}

func (c *Controller) expire() {
	c.grace = nil
	if c.state == Active && c.targets > 0 {
		c.setState(Lost)
	}
}

// Abort leaves the round without a result. The grace timer is cancelled.
func (c *Controller) Abort() {
	c.cancelGrace()
	c.pending = nil
	if c.state != Idle {
		c.setState(Idle)
	}
}

func (c *Controller) cancelGrace() {
	c.grace.Cancel()
	c.grace = nil
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	c.listener.StateChanged(s)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Role returns the role of a body installed by this round.
func (c *Controller) Role(h body.Handle) (body.Role, bool) {
	sp, ok := c.bodies[h]
	return sp.Role, ok
}

// Body pairs an installed spec with its unit state.
type Body struct {
	Handle body.Handle
	Spec   body.Spec
	Unit   *body.Unit // nil for non-destructibles
}

// Bodies returns every body the round still tracks, ordered by handle.
func (c *Controller) Bodies() []Body {
	out := make([]Body, 0, len(c.bodies))
	for h, sp := range c.bodies {
		out = append(out, Body{Handle: h, Spec: sp, Unit: c.units[h]})
	}
	slices.SortFunc(out, func(a, b Body) int {
		return cmp.Compare(a.Handle, b.Handle)
	})
	return out
}

// Unit returns the destructible unit for a handle, if it is still live.
func (c *Controller) Unit(h body.Handle) (*body.Unit, bool) {
	u, ok := c.units[h]
	return u, ok
}

// Snapshot returns a copy of the round state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:   c.state,
		Mode:    c.mode,
		Level:   c.level,
		Round:   c.round,
		Ammo:    c.ammo,
		Score:   c.score,
		Bonus:   c.bonus,
		Targets: c.targets,
		Pending: len(c.pending),
	}
	if c.grace.Active() {
		s.GraceActive = true
		s.GraceRemaining = c.grace.Deadline() - c.sched.Now()
	}
	return s
}
