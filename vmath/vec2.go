package vmath

import (
	"math"
)

// Epsilon is the length below which a vector is treated as zero
const Epsilon = 1e-9

// Vec2 is a float64 2D vector in world units (pixels, y axis pointing down)
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns unit vector, zero vector when length is below Epsilon
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag < Epsilon || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Perp returns vector rotated 90° (screen coordinates: clockwise on a y-down display)
func V2Perp(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// V2Reflect returns v mirrored about a unit normal: v - 2*dot(v,n)*n
func V2Reflect(v, n Vec2) Vec2 {
	return V2Sub(v, V2Scale(n, 2*V2Dot(v, n)))
}

// V2Lerp interpolates a→b by t
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// V2IsFinite reports whether both components are neither NaN nor Inf
func V2IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// RotateAround rotates point about pivot by angle radians
// Rotation matrix [cos -sin; sin cos] applied in pivot-relative coordinates
func RotateAround(pivot Vec2, angle float64, point Vec2) Vec2 {
	sin, cos := math.Sincos(angle)
	d := V2Sub(point, pivot)
	return Vec2{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}

// ClampMagnitude limits vector to maxMag while preserving direction
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	magSq := V2MagSq(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return V2Scale(v, maxMag/math.Sqrt(magSq))
}
