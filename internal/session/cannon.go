package session

import (
	"math"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// Cannon is the fixed emplacement shots are fired from.
type Cannon struct {
	Pivot core.Vec2
	cfg   config.CannonConfig
	traj  config.TrajectoryConfig
	floor float64 // Preview points stop below this y
	width float64
	mat   body.Material
}

// NewCannon places a cannon in an arena of the given size.
func NewCannon(pivot core.Vec2, a config.ArenaConfig, projectile body.Material) Cannon {
	return Cannon{
		Pivot: pivot,
		cfg:   a.Cannon,
		traj:  a.Trajectory,
		floor: a.Height - a.Trajectory.FloorMargin,
		width: a.Width,
		mat:   projectile,
	}
}

// Power clamps a requested power into [MinPower, 1].
func (c Cannon) Power(p float64) float64 {
	return core.ClampF(p, c.cfg.MinPower, 1)
}

// Velocity returns the launch velocity for an aim.
func (c Cannon) Velocity(angle, power float64) core.Vec2 {
	return core.FromAngle(angle, c.Power(power)*c.cfg.MaxLaunchSpeed)
}

// Muzzle returns the barrel mouth for an angle.
func (c Cannon) Muzzle(angle float64) core.Vec2 {
	return c.Pivot.Add(core.FromAngle(angle, c.cfg.Barrel))
}

// Projectile returns the body spec of a shot, spawned at the barrel mouth.
func (c Cannon) Projectile(angle, power float64) body.Spec {
	return body.Spec{
		Role:     body.Projectile{},
		Shape:    body.Circle(c.cfg.ProjectileRadius),
		Position: c.Muzzle(angle),
		Material: c.mat,
		Velocity: c.Velocity(angle, power),
	}
}

// Trajectory samples the aiming preview. Points stop once they drop below
// the arena floor margin.
func (c Cannon) Trajectory(angle, power float64) []core.Vec2 {
	v := c.Velocity(angle, power)
	step := c.traj.Step.Seconds()
	pts := make([]core.Vec2, 0, c.traj.Points)
	for i := 1; i <= c.traj.Points; i++ {
		t := float64(i) * step
		p := c.Pivot.Add(v.Scale(t)).Add(core.V(0, 0.5*c.traj.Gravity*t*t))
		if p.Y > c.floor {
			break
		}
		pts = append(pts, p)
	}
	return pts
}

// Aim is the single-pointer drag gesture: press near the cannon, drag to set
// angle and power, release to fire.
type Aim struct {
	Angle    float64
	Power    float64
	Dragging bool
}

// Press starts a drag when p is inside the aiming zone. The aim is left
// untouched until the pointer moves.
func (a *Aim) Press(c Cannon, p core.Vec2) bool {
	if p.X >= c.width*c.cfg.AimZone {
		return false
	}
	a.Dragging = true
	return true
}

// Move points the barrel at p. While dragging, distance from the pivot sets power.
func (a *Aim) Move(c Cannon, p core.Vec2) {
	d := p.Sub(c.Pivot)
	a.Angle = math.Atan2(d.Y, d.X)
	if a.Dragging {
		a.Power = math.Min(d.Len(), c.cfg.MaxDrag) / c.cfg.MaxDrag
	}
}

// Release ends the drag. It reports whether a shot should be fired.
func (a *Aim) Release() bool {
	if !a.Dragging {
		return false
	}
	a.Dragging = false
	return true
}

// Nudge adjusts angle and power by deltas, for keyboard aiming.
func (a *Aim) Nudge(dAngle, dPower float64) {
	a.Angle = core.ClampF(a.Angle+dAngle, -math.Pi/2, math.Pi/2)
	a.Power = core.ClampF(a.Power+dPower, 0, 1)
}
