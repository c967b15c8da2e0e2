package structure

import (
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
)

// Scene is the static surroundings every round is played in.
type Scene struct {
	Specs   []body.Spec // Ground, walls and platform
	AnchorX float64     // Horizontal centre of the platform
	FloorY  float64     // Top surface of the platform
	Cannon  core.Vec2   // Barrel pivot
	Width   float64
	Height  float64
}

// Arena lays out the ground, both side walls, the elevated platform and the
// cannon position for the configured arena size.
func Arena(a config.ArenaConfig, m config.Materials) Scene {
	w, h := a.Width, a.Height
	px := w * a.Platform.XRatio
	py := h - a.Platform.Lift

	specs := []body.Spec{
		{
			Role:     body.Ground{},
			Shape:    body.Box(w*3, 200),
			Position: core.V(w/2, h+50),
			Material: m.Ground,
			Static:   true,
		},
		{
			Role:     body.Wall{},
			Shape:    body.Box(200, h*3),
			Position: core.V(w+200, h/2),
			Material: m.Wall,
			Static:   true,
		},
		{
			Role:     body.Wall{},
			Shape:    body.Box(200, h*3),
			Position: core.V(-200, h/2),
			Material: m.Wall,
			Static:   true,
		},
		{
			Role:     body.Platform{},
			Shape:    body.Box(a.Platform.Width, a.Platform.Height),
			Position: core.V(px, py),
			Material: m.Platform,
			Static:   true,
		},
	}

	return Scene{
		Specs:   specs,
		AnchorX: px,
		FloorY:  py - a.Platform.Height/2,
		Cannon:  core.V(a.Cannon.X, h-a.Cannon.Lift),
		Width:   w,
		Height:  h,
	}
}
