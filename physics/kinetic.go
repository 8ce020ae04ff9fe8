package physics

import (
	"github.com/lixenwraith/hexfall/core"
	"github.com/lixenwraith/hexfall/vmath"
)

// Forces is the per-step force model shared by every body
type Forces struct {
	// Gravity is acceleration in world units per second squared
	Gravity vmath.Vec2
	// Wind is the current wind acceleration
	Wind vmath.Vec2
	// Friction multiplies velocity once per step
	Friction float64
	// WaterLevel is the Y below which (screen-down) WaterDrag applies
	WaterLevel float64
	// WaterDrag multiplies velocity once per step while submerged, 1 disables
	WaterDrag float64
	// MaxSpeed caps velocity magnitude after damping, 0 disables
	MaxSpeed float64
}

// Integrate advances one semi-implicit Euler step in fixed order:
// accelerate (gravity, wind), water drag, friction, speed cap, move
func Integrate(b *core.Body, f *Forces, dt float64) {
	accel := vmath.V2Add(f.Gravity, f.Wind)
	b.Vel = vmath.V2Add(b.Vel, vmath.V2Scale(accel, dt))

	if f.WaterDrag < 1 && b.Pos.Y > f.WaterLevel {
		b.Vel = vmath.V2Scale(b.Vel, f.WaterDrag)
	}
	b.Vel = vmath.V2Scale(b.Vel, f.Friction)

	if f.MaxSpeed > 0 {
		CapSpeed(&b.Vel, f.MaxSpeed)
	}

	b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(b.Vel, dt))
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(b *core.Body, dv vmath.Vec2) {
	b.Vel = vmath.V2Add(b.Vel, dv)
}
