// Package session composes structure generation, the physics world, the damage
// model, the round controller and progression into one tick-driven game.
//
// A Session is single-threaded: every method must be called from the loop
// that calls Tick.
package session

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/damage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/sched"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/storage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/structure"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(r storage.Run) (string, error)
}

// Options configures a Session.
type Options struct {
	Config      config.Config
	World       world.World
	Progression *progression.Manager
	Recorder    RunRecorder // Optional
	Logger      *log.Logger // Optional
	Seed        int64       // Salt for infinite layouts
}

// Snapshot is the read-only view presentation renders each frame.
type Snapshot struct {
	Round     round.Snapshot
	Plan      progression.Plan
	Structure string
	HighScore int
	Aim       Aim
	Result    *progression.Result // Set once the round has ended
	Elapsed   time.Duration
}

// BodyView is one body with its live position.
type BodyView struct {
	Handle    body.Handle
	Role      body.Role
	Shape     body.Shape
	Position  core.Vec2
	HitPoints int
	MaxHP     int
}

// Session is the game orchestrator.
type Session struct {
	cfg      config.Config
	world    world.World
	gen      *structure.Generator
	prog     *progression.Manager
	recorder RunRecorder
	log      *log.Logger

	sched  *sched.Scheduler
	ctrl   *round.Controller
	scene  structure.Scene
	cannon Cannon
	step   time.Duration

	plan      progression.Plan
	structure string
	aim       Aim
	result    *progression.Result
	ended     bool

	subs   map[int]Subscriber
	nextID int
}

// New creates a session with no round installed.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	prog := opts.Progression
	if prog == nil {
		prog = progression.New(opts.Config, nil, logger)
	}

	s := &Session{
		cfg:      opts.Config,
		world:    opts.World,
		gen:      structure.NewGenerator(opts.Config, opts.Seed),
		prog:     prog,
		recorder: opts.Recorder,
		log:      logger,
		sched:    sched.New(),
		step:     opts.Config.Physics.Step(),
		subs:     make(map[int]Subscriber),
	}
	s.scene = structure.Arena(opts.Config.Arena, opts.Config.Physics.Materials)
	s.cannon = NewCannon(s.scene.Cannon, opts.Config.Arena, opts.Config.Physics.Materials.Projectile)
	s.aim = Aim{Angle: -math.Pi / 4, Power: 0.5}
	s.ctrl = round.New(round.Options{
		World:        opts.World,
		Scheduler:    s.sched,
		Model:        damage.New(opts.Config.Damage, opts.Config.Scoring),
		Grace:        opts.Config.Round.Grace,
		BonusPerAmmo: opts.Config.Scoring.BonusPerAmmo,
		Listener:     (*listener)(s),
	})
	return s
}

// Subscribe registers a subscriber and returns a function that removes it.
func (s *Session) Subscribe(sub Subscriber) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	return func() { delete(s.subs, id) }
}

func (s *Session) emit(evt Event) {
	for _, sub := range s.subs {
		sub.Send(evt)
	}
}

// StartCampaign begins a campaign level.
func (s *Session) StartCampaign(level int) error {
	plan, err := s.prog.StartCampaign(level)
	if err != nil {
		return err
	}
	return s.begin(plan)
}

// StartInfinite begins a new infinite run at round 1.
func (s *Session) StartInfinite() error {
	return s.begin(s.prog.StartInfinite())
}

// Next starts the following level or round after a win.
func (s *Session) Next() error {
	plan, err := s.prog.Next()
	if err != nil {
		return err
	}
	return s.begin(plan)
}

// Retry replays the campaign level or starts a fresh infinite run.
func (s *Session) Retry() error {
	plan, err := s.prog.Retry()
	if err != nil {
		return err
	}
	return s.begin(plan)
}

// Quit leaves the current round without a result.
func (s *Session) Quit() {
	s.ctrl.Abort()
	s.ended = false
	s.result = nil
}

func (s *Session) begin(plan progression.Plan) error {
	id := plan.Level
	if plan.Mode == core.ModeInfinite {
		id = plan.Round
	}
	st, err := s.gen.Generate(plan.Mode, id, s.scene.AnchorX, s.scene.FloorY)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.plan = plan
	s.structure = st.Name
	s.result = nil
	s.ended = false
	s.aim.Dragging = false
	s.sched.Reset()

	s.ctrl.Begin(round.Setup{
		Mode:      plan.Mode,
		Level:     plan.Level,
		Round:     plan.Round,
		Ammo:      plan.Ammo,
		Score:     plan.Score,
		Scene:     s.scene.Specs,
		Structure: st.Specs,
	})

	s.log.Info("round started",
		"mode", plan.Mode, "name", plan.Name, "structure", st.Name,
		"ammo", plan.Ammo, "targets", st.Destructibles)
	s.emit(RoundStartedEvent{Plan: plan, Structure: st.Name, Targets: st.Destructibles})
	return nil
}

// Fire launches a shot with the given aim. It returns false when the round is
// not active or out of ammunition.
func (s *Session) Fire(angle, power float64) bool {
	return s.ctrl.Fire(s.cannon.Projectile(angle, power))
}

// PointerDown starts aiming when p is in the aiming zone.
func (s *Session) PointerDown(p core.Vec2) bool {
	if s.ctrl.State() != round.Active {
		return false
	}
	return s.aim.Press(s.cannon, p)
}

// PointerMove updates the aim.
func (s *Session) PointerMove(p core.Vec2) {
	s.aim.Move(s.cannon, p)
}

// PointerUp fires if a drag was in progress.
func (s *Session) PointerUp() bool {
	if !s.aim.Release() {
		return false
	}
	return s.Fire(s.aim.Angle, s.aim.Power)
}

// Nudge adjusts the aim from the keyboard.
func (s *Session) Nudge(dAngle, dPower float64) {
	s.aim.Nudge(dAngle, dPower)
}

// FireAim fires with the current aim.
func (s *Session) FireAim() bool {
	return s.Fire(s.aim.Angle, s.aim.Power)
}

// Tick advances one fixed step: physics (delivering collisions), removal
// consolidation, then simulated timers. A win found during consolidation
// therefore pre-empts a grace timer due on the same tick.
func (s *Session) Tick() {
	if s.ctrl.State() == round.Idle {
		return
	}
	s.world.Step(s.step)
	s.ctrl.Consolidate()
	s.sched.Advance(s.step)
	s.settle()
}

// settle reports a freshly ended round to progression exactly once.
func (s *Session) settle() {
	st := s.ctrl.State()
	if !st.Terminal() || s.ended {
		return
	}
	s.ended = true
	snap := s.ctrl.Snapshot()

	var res progression.Result
	if st == round.Won {
		res = s.prog.RoundWon(snap)
	} else {
		res = s.prog.RoundLost(snap)
	}
	s.result = &res

	s.log.Info("round ended",
		"mode", s.plan.Mode, "name", s.plan.Name, "state", st,
		"score", snap.Score, "bonus", snap.Bonus, "stars", res.Stars)

	runID := s.record(st, snap, res)
	s.emit(RoundEndedEvent{Result: res, RunID: runID})
}

// record stores campaign attempts and finished infinite runs.
func (s *Session) record(st round.State, snap round.Snapshot, res progression.Result) string {
	if s.recorder == nil {
		return ""
	}
	if s.plan.Mode == core.ModeInfinite && st == round.Won {
		return ""
	}
	run := storage.Run{
		ID:      uuid.NewString(),
		Mode:    s.plan.Mode.String(),
		Level:   s.plan.Level,
		Round:   s.plan.Round,
		Score:   snap.Score,
		Stars:   res.Stars,
		Outcome: st.String(),
	}
	id, err := s.recorder.RecordRun(run)
	if err != nil {
		s.log.Warn("run not recorded", "err", err)
		return ""
	}
	return id
}

// Snapshot returns a copy of the state for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Round:     s.ctrl.Snapshot(),
		Plan:      s.plan,
		Structure: s.structure,
		HighScore: s.prog.HighScore(),
		Aim:       s.aim,
		Elapsed:   s.sched.Now(),
	}
	if s.result != nil {
		res := *s.result
		snap.Result = &res
	}
	return snap
}

// Bodies returns every tracked body at its live position. Bodies the world no
// longer holds are skipped.
func (s *Session) Bodies() []BodyView {
	bodies := s.ctrl.Bodies()
	out := make([]BodyView, 0, len(bodies))
	for _, b := range bodies {
		pos, ok := s.world.Position(b.Handle)
		if !ok {
			continue
		}
		v := BodyView{
			Handle:   b.Handle,
			Role:     b.Spec.Role,
			Shape:    b.Spec.Shape,
			Position: pos,
		}
		if b.Unit != nil {
			v.HitPoints = b.Unit.HitPoints
			v.MaxHP = b.Unit.MaxHP
		}
		out = append(out, v)
	}
	return out
}

// Trajectory returns the aiming preview for the current aim.
func (s *Session) Trajectory() []core.Vec2 {
	return s.cannon.Trajectory(s.aim.Angle, s.aim.Power)
}

// Scene returns the arena layout.
func (s *Session) Scene() structure.Scene {
	return s.scene
}

// Cannon returns the emplacement.
func (s *Session) Cannon() Cannon {
	return s.cannon
}

// HasNext reports whether Next can start another level or round.
func (s *Session) HasNext() bool {
	return s.result != nil && s.result.Outcome == round.Won && s.result.HasNext
}

// listener adapts round notifications into session events.
type listener Session

func (l *listener) EffectOccurred(e damage.Effect) {
	s := (*Session)(l)
	s.emit(EffectEvent{Effect: e})
}

func (l *listener) ScoreChanged(score, delta int) {
	s := (*Session)(l)
	improved := false
	if s.plan.Mode == core.ModeInfinite {
		improved = s.prog.ObserveScore(score)
	}
	s.emit(ScoreEvent{Score: score, Delta: delta, HighScore: s.prog.HighScore(), NewHighScore: improved})
}

func (l *listener) StateChanged(st round.State) {
	s := (*Session)(l)
	s.log.Debug("round state", "state", st)
	s.emit(StateEvent{State: st, Snapshot: s.ctrl.Snapshot()})
}
