package physics

import (
	"github.com/lixenwraith/hexfall/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	if vmath.V2MagSq(*vel) <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vmath.ClampMagnitude(*vel, maxSpeed)
	return true
}
