// Package body defines what the simulation knows about physics bodies: their
// role in the game, the breakable units' hit points and the descriptors the
// structure generator hands to the physics world.
package body

import (
	"fmt"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// Handle identifies a body inside the physics world. Zero is never issued.
type Handle uint64

// Kind is the material of a destructible unit.
type Kind int

const (
	Wood       Kind = iota // 1 hit point
	Reinforced             // 3 hit points
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Wood:
		return "wood"
	case Reinforced:
		return "reinforced"
	default:
		return "unknown"
	}
}

// MaxHitPoints returns the starting hit points for the kind.
func (k Kind) MaxHitPoints() int {
	if k == Reinforced {
		return 3
	}
	return 1
}

// MarshalText implements encoding.TextMarshaler for YAML/CLI output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "wood":
		*k = Wood
	case "reinforced":
		*k = Reinforced
	default:
		return fmt.Errorf("body: unknown kind %q", b)
	}
	return nil
}

// Role is the closed set of parts a body can play.
// Switch over it with a type switch; the marker method keeps the set sealed.
type Role interface {
	role()
	String() string
}

// Ground is the static floor below the arena. Touching it destroys units.
type Ground struct{}

// Platform is the static shelf structures are built on.
type Platform struct{}

// Wall is a static side boundary of the arena.
type Wall struct{}

// Plank is a connecting board. Dynamic planks fall and tumble but never break.
type Plank struct{}

// Destructible is a breakable unit of the given kind.
type Destructible struct {
	Kind Kind
}

// Projectile is a cannonball in flight.
type Projectile struct{}

func (Ground) role()       {}
func (Platform) role()     {}
func (Wall) role()         {}
func (Plank) role()        {}
func (Destructible) role() {}
func (Projectile) role()   {}

func (Ground) String() string         { return "ground" }
func (Platform) String() string       { return "platform" }
func (Wall) String() string           { return "wall" }
func (Plank) String() string          { return "plank" }
func (d Destructible) String() string { return "block-" + d.Kind.String() }
func (Projectile) String() string     { return "projectile" }

// IsDestructible reports whether r is a breakable unit and returns its kind.
func IsDestructible(r Role) (Kind, bool) {
	if d, ok := r.(Destructible); ok {
		return d.Kind, true
	}
	return 0, false
}

// Shape is the collision geometry of a body. Exactly one of Box or Radius is set.
type Shape struct {
	W, H   float64 // Box size
	Radius float64 // Circle radius
}

// Box returns a rectangular shape.
func Box(w, h float64) Shape {
	return Shape{W: w, H: h}
}

// Circle returns a circular shape.
func Circle(r float64) Shape {
	return Shape{Radius: r}
}

// IsCircle reports whether the shape is a circle.
func (s Shape) IsCircle() bool {
	return s.Radius > 0
}

// Material holds the physical properties handed to the engine.
type Material struct {
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

// Spec describes a body to create. Positions are body centres.
type Spec struct {
	Role     Role
	Shape    Shape
	Position core.Vec2
	Material Material
	Static   bool
	Velocity core.Vec2 // Initial velocity, used for projectiles
}

// Unit is the simulation-side state of a destructible body.
// Position is the generation-time placement; the engine owns the live transform.
type Unit struct {
	Handle    Handle
	Kind      Kind
	HitPoints int
	MaxHP     int
	Position  core.Vec2

	marked bool
}

// NewUnit creates a unit at full health.
func NewUnit(h Handle, kind Kind, pos core.Vec2) *Unit {
	return &Unit{
		Handle:    h,
		Kind:      kind,
		HitPoints: kind.MaxHitPoints(),
		MaxHP:     kind.MaxHitPoints(),
		Position:  pos,
	}
}

// Marked reports whether the unit is pending removal.
func (u *Unit) Marked() bool {
	return u.marked
}

// Mark flags the unit for removal. It returns false if it was already marked.
func (u *Unit) Mark() bool {
	if u.marked {
		return false
	}
	u.marked = true
	return true
}
