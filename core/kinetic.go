package core

import "github.com/lixenwraith/hexfall/vmath"

// BodyKind discriminates the force model applied to a body
type BodyKind uint8

const (
	KindBall BodyKind = iota
	KindParticle
)

// Body is a point mass with a collision radius
type Body struct {
	// Pos is the center in world units
	Pos vmath.Vec2
	// Vel is velocity in world units per second
	Vel vmath.Vec2
	// Radius is the collision radius in world units
	Radius float64
	Kind   BodyKind
}
