package round_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/damage"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
	roundmocks "github.com/yaelverdejo-liuthus/Cannon-blast/internal/round/mocks"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/sched"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/world/mocks"
)

// recorder keeps every notification in arrival order.
type recorder struct {
	effects []damage.Effect
	scores  []int
	states  []round.State
}

func (r *recorder) EffectOccurred(e damage.Effect) { r.effects = append(r.effects, e) }
func (r *recorder) ScoreChanged(score, _ int)      { r.scores = append(r.scores, score) }
func (r *recorder) StateChanged(s round.State)     { r.states = append(r.states, s) }

func (r *recorder) saw(s round.State) bool {
	for _, st := range r.states {
		if st == s {
			return true
		}
	}
	return false
}

type harness struct {
	ctrl    *round.Controller
	sched   *sched.Scheduler
	rec     *recorder
	live    map[body.Handle]bool
	next    body.Handle
	collide world.CollisionFunc
	ground  body.Handle
	units   []body.Handle
	shots   []body.Handle
}

// newHarness wires a controller to a gomock world that tracks live handles.
func newHarness(t *testing.T, listener round.Listener) *harness {
	t.Helper()
	mc := gomock.NewController(t)
	w := mocks.NewMockWorld(mc)
	h := &harness{
		sched: sched.New(),
		rec:   &recorder{},
		live:  make(map[body.Handle]bool),
	}
	if listener == nil {
		listener = h.rec
	}

	w.EXPECT().Reset().AnyTimes().Do(func() { clear(h.live) })
	w.EXPECT().Add(gomock.Any()).AnyTimes().DoAndReturn(func(specs ...body.Spec) []body.Handle {
		out := make([]body.Handle, len(specs))
		for i := range specs {
			h.next++
			h.live[h.next] = true
			out[i] = h.next
		}
		return out
	})
	w.EXPECT().Remove(gomock.Any()).AnyTimes().Do(func(hs ...body.Handle) {
		for _, x := range hs {
			delete(h.live, x)
		}
	})
	w.EXPECT().Contains(gomock.Any()).AnyTimes().DoAndReturn(func(x body.Handle) bool {
		return h.live[x]
	})
	w.EXPECT().OnCollisionStart(gomock.Any()).AnyTimes().Do(func(fn world.CollisionFunc) {
		h.collide = fn
	})

	cfg := config.Default()
	h.ctrl = round.New(round.Options{
		World:        w,
		Scheduler:    h.sched,
		Model:        damage.New(cfg.Damage, cfg.Scoring),
		Grace:        cfg.Round.Grace,
		BonusPerAmmo: cfg.Scoring.BonusPerAmmo,
		Listener:     listener,
	})
	return h
}

func blocks(kinds ...body.Kind) []body.Spec {
	specs := make([]body.Spec, len(kinds))
	for i, k := range kinds {
		specs[i] = body.Spec{Role: body.Destructible{Kind: k}, Shape: body.Box(60, 60), Position: core.V(float64(i)*60, 0)}
	}
	return specs
}

// begin installs a ground body followed by the given units.
func (h *harness) begin(ammo int, kinds ...body.Kind) {
	base := h.next
	h.ctrl.Begin(round.Setup{
		Mode:      core.ModeInfinite,
		Round:     1,
		Ammo:      ammo,
		Scene:     []body.Spec{{Role: body.Ground{}, Static: true}},
		Structure: blocks(kinds...),
	})
	h.ground = base + 1
	h.units = nil
	for i := range kinds {
		h.units = append(h.units, base+2+body.Handle(i))
	}
}

func (h *harness) fire() bool {
	ok := h.ctrl.Fire(body.Spec{Shape: body.Circle(15)})
	if ok {
		h.shots = append(h.shots, h.next)
	}
	return ok
}

// drop knocks a unit onto the ground and consolidates, like one session tick.
func (h *harness) drop(u body.Handle) {
	h.collide([]world.Pair{{A: h.ground, B: u}})
	h.ctrl.Consolidate()
}

func TestBeginEntersActive(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(7, body.Wood, body.Reinforced, body.Wood)

	snap := h.ctrl.Snapshot()
	if snap.State != round.Active || snap.Targets != 3 || snap.Ammo != 7 || snap.Score != 0 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if h.collide == nil {
		t.Error("controller did not subscribe to collisions")
	}
	if len(h.rec.states) != 1 || h.rec.states[0] != round.Active {
		t.Errorf("states = %v, expected [active]", h.rec.states)
	}
}

func TestFire(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(2, body.Wood)

	if !h.fire() || !h.fire() {
		t.Fatal("Fire() = false with ammo left")
	}
	if h.fire() {
		t.Error("Fire() = true with no ammo")
	}
	if got := h.ctrl.Snapshot().Ammo; got != 0 {
		t.Errorf("Ammo = %d, expected 0", got)
	}
	if r, ok := h.ctrl.Role(h.shots[0]); !ok || r != (body.Projectile{}) {
		t.Errorf("Role(shot) = %v, %v, expected projectile", r, ok)
	}

	idle := newHarness(t, nil)
	if idle.fire() {
		t.Error("Fire() = true while idle")
	}
}

func TestWinBonus(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(6, body.Wood)
	h.fire()

	h.drop(h.units[0])

	snap := h.ctrl.Snapshot()
	if snap.State != round.Won {
		t.Fatalf("State = %v, expected won", snap.State)
	}
	if snap.Bonus != 2500 {
		t.Errorf("Bonus = %d, expected 2500", snap.Bonus)
	}
	if snap.Score != 200+2500 {
		t.Errorf("Score = %d, expected 2700", snap.Score)
	}
	if snap.Targets != 0 {
		t.Errorf("Targets = %d, expected 0", snap.Targets)
	}
	if last := h.rec.scores[len(h.rec.scores)-1]; last != 2700 {
		t.Errorf("last ScoreChanged = %d, expected 2700", last)
	}
}

func TestEmptyStructureWinsOnBegin(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(4)

	snap := h.ctrl.Snapshot()
	if snap.State != round.Won {
		t.Fatalf("State = %v, expected won", snap.State)
	}
	if snap.Bonus != 2000 || snap.Score != 2000 {
		t.Errorf("Bonus = %d Score = %d, expected 2000/2000", snap.Bonus, snap.Score)
	}
	want := []round.State{round.Active, round.Won}
	if len(h.rec.states) != 2 || h.rec.states[0] != want[0] || h.rec.states[1] != want[1] {
		t.Errorf("states = %v, expected %v", h.rec.states, want)
	}
	if h.fire() {
		t.Error("Fire() = true after the round was won")
	}
	h.sched.Advance(time.Minute)
	if got := h.ctrl.State(); got != round.Won {
		t.Errorf("State after a minute = %v, expected won", got)
	}
}

func TestImpactScoresImmediately(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(3, body.Reinforced, body.Wood)
	h.fire()
	shot := h.shots[0]

	hit := world.Pair{A: shot, B: h.units[0], Normal: core.V(1, 0), VelA: core.V(900, 0)}
	h.collide([]world.Pair{hit, hit, hit})

	snap := h.ctrl.Snapshot()
	if snap.Score != 500 {
		t.Errorf("Score = %d before consolidation, expected 500", snap.Score)
	}
	if snap.Pending != 1 || snap.Targets != 2 {
		t.Errorf("Pending = %d, Targets = %d, expected 1 and 2", snap.Pending, snap.Targets)
	}

	h.ctrl.Consolidate()
	if got := h.ctrl.Snapshot().Targets; got != 1 {
		t.Errorf("Targets = %d after consolidation, expected 1", got)
	}
	if _, ok := h.ctrl.Unit(h.units[0]); ok {
		t.Error("destroyed unit still tracked")
	}
}

func TestSimultaneousDestructionScoresOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(3, body.Wood, body.Wood)
	u := h.units[0]

	h.collide([]world.Pair{{A: h.ground, B: u}, {A: u, B: h.ground}, {A: h.ground, B: u}})
	h.ctrl.Consolidate()

	snap := h.ctrl.Snapshot()
	if snap.Score != 200 || snap.Targets != 1 {
		t.Errorf("Score = %d, Targets = %d, expected 200 and 1", snap.Score, snap.Targets)
	}
}

func TestGraceTimerLoses(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(1, body.Wood, body.Wood)
	h.fire()

	if !h.ctrl.Snapshot().GraceActive {
		t.Fatal("grace timer not armed at zero ammo")
	}
	h.sched.Advance(4999 * time.Millisecond)
	if h.ctrl.State() != round.Active {
		t.Fatalf("State = %v before 5s, expected active", h.ctrl.State())
	}
	h.sched.Advance(time.Millisecond)
	if h.ctrl.State() != round.Lost {
		t.Errorf("State = %v after 5s, expected lost", h.ctrl.State())
	}
}

func TestLateWinPreemptsGraceTimer(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(1, body.Wood, body.Wood)
	h.fire()

	h.sched.Advance(4900 * time.Millisecond)
	h.drop(h.units[0])
	if got := h.ctrl.Snapshot().GraceRemaining; got != 100*time.Millisecond {
		t.Errorf("GraceRemaining = %v, expected 100ms", got)
	}

	h.sched.Advance(50 * time.Millisecond)
	h.drop(h.units[1])
	if h.ctrl.State() != round.Won {
		t.Fatalf("State = %v, expected won", h.ctrl.State())
	}

	h.sched.Advance(10 * time.Second)
	if h.ctrl.State() != round.Won || h.rec.saw(round.Lost) {
		t.Errorf("grace timer fired after win, states = %v", h.rec.states)
	}
	if h.sched.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", h.sched.Pending())
	}
}

func TestNoTimerWhenLastShotWins(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(1, body.Wood)
	h.drop(h.units[0])
	if h.fire() {
		t.Error("Fire() = true after win")
	}
	if h.sched.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", h.sched.Pending())
	}
}

func TestAbortCancelsGraceTimer(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(1, body.Wood)
	h.fire()
	h.ctrl.Abort()

	h.sched.Advance(time.Minute)
	if h.ctrl.State() != round.Idle || h.rec.saw(round.Lost) {
		t.Errorf("State = %v, states = %v, expected idle without loss", h.ctrl.State(), h.rec.states)
	}
}

func TestBeginCancelsStaleTimer(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(1, body.Wood)
	h.fire()
	h.sched.Advance(3 * time.Second)

	h.begin(5, body.Wood, body.Wood)
	h.sched.Advance(3 * time.Second)
	if h.ctrl.State() != round.Active {
		t.Errorf("State = %v, expected stale timer not to end the new round", h.ctrl.State())
	}
}

func TestCollisionsIgnoredAfterRoundEnds(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(3, body.Wood)
	h.drop(h.units[0])
	score := h.ctrl.Snapshot().Score

	h.collide([]world.Pair{{A: h.ground, B: h.units[0]}})
	if got := h.ctrl.Snapshot().Score; got != score {
		t.Errorf("Score = %d after round end, expected %d", got, score)
	}
}

func TestNotificationOrder(t *testing.T) {
	mc := gomock.NewController(t)
	l := roundmocks.NewMockListener(mc)
	gomock.InOrder(
		l.EXPECT().StateChanged(round.Active),
		l.EXPECT().EffectOccurred(gomock.AssignableToTypeOf(damage.Destroyed{})),
		l.EXPECT().ScoreChanged(200, 200),
		l.EXPECT().ScoreChanged(200+2*500, 2*500),
		l.EXPECT().StateChanged(round.Won),
	)

	h := newHarness(t, l)
	h.begin(2, body.Wood)
	h.drop(h.units[0])
}

// After every consolidation the target count equals the live units in the
// world, and it is zero exactly when the round is won.
func TestTargetsMatchLiveUnits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(rt, "units")
		kinds := make([]body.Kind, n)
		for i := range kinds {
			kinds[i] = body.Kind(rapid.IntRange(0, 1).Draw(rt, "kind"))
		}
		h := newHarness(t, nil)
		h.begin(5, kinds...)

		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for i := 0; i < steps && h.ctrl.State() == round.Active; i++ {
			k := rapid.IntRange(1, 3).Draw(rt, "hits")
			var pairs []world.Pair
			for j := 0; j < k; j++ {
				u := h.units[rapid.IntRange(0, n-1).Draw(rt, "unit")]
				pairs = append(pairs, world.Pair{A: h.ground, B: u})
			}
			h.collide(pairs)
			h.ctrl.Consolidate()

			live := 0
			for _, u := range h.units {
				if h.live[u] {
					live++
				}
			}
			snap := h.ctrl.Snapshot()
			if snap.Targets != live {
				rt.Fatalf("Targets = %d, live = %d", snap.Targets, live)
			}
			if (snap.Targets == 0) != (snap.State == round.Won) {
				rt.Fatalf("Targets = %d with state %v", snap.Targets, snap.State)
			}
		}
	})
}

func TestBodiesOrderedByHandle(t *testing.T) {
	h := newHarness(t, nil)
	h.begin(3, body.Wood, body.Reinforced)
	h.fire()

	bodies := h.ctrl.Bodies()
	if len(bodies) != 4 {
		t.Fatalf("len(Bodies()) = %d, expected 4", len(bodies))
	}
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Handle <= bodies[i-1].Handle {
			t.Fatalf("Bodies() not ordered: %v then %v", bodies[i-1].Handle, bodies[i].Handle)
		}
	}
	if bodies[0].Unit != nil {
		t.Error("ground has a unit")
	}
	if bodies[2].Unit == nil || bodies[2].Unit.MaxHP != 3 {
		t.Errorf("reinforced unit = %+v", bodies[2].Unit)
	}

	h.drop(h.units[0])
	if got := len(h.ctrl.Bodies()); got != 3 {
		t.Errorf("len(Bodies()) = %d after removal, expected 3", got)
	}
}
