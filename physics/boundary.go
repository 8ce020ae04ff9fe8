package physics

import (
	"math"

	"github.com/lixenwraith/hexfall/vmath"
)

// HexSides is the vertex count of the boundary polygon
const HexSides = 6

// hexStep is the angular spacing between consecutive vertices
const hexStep = 2 * math.Pi / HexSides

// Hexagon is a closed convex polygon; edge i joins Vertices[i] to Vertices[(i+1)%HexSides]
// Vertices advance by +60° each, which on a y-down display is clockwise
type Hexagon struct {
	Center   vmath.Vec2
	Radius   float64
	Angle    float64
	Vertices [HexSides]vmath.Vec2
}

// GenerateHexagon builds the regular hexagon rotated by angle radians about center
func GenerateHexagon(center vmath.Vec2, radius, angle float64) Hexagon {
	h := Hexagon{Center: center, Radius: radius, Angle: angle}
	start := vmath.V2Add(center, vmath.V2(radius, 0))
	for i := 0; i < HexSides; i++ {
		h.Vertices[i] = vmath.RotateAround(center, angle+float64(i)*hexStep, start)
	}
	return h
}

// Edge returns the endpoints of edge i
func (h *Hexagon) Edge(i int) (a, b vmath.Vec2) {
	return h.Vertices[i], h.Vertices[(i+1)%HexSides]
}

// OutwardNormal returns the unit normal of edge i pointing away from the polygon center
// ok is false for a degenerate (near zero length) edge, which callers must skip
func (h *Hexagon) OutwardNormal(i int) (n vmath.Vec2, ok bool) {
	a, b := h.Edge(i)
	edge := vmath.V2Sub(b, a)
	if vmath.V2MagSq(edge) < vmath.Epsilon*vmath.Epsilon {
		return vmath.Vec2{}, false
	}
	n = vmath.V2Normalize(vmath.V2Perp(edge))
	if n == (vmath.Vec2{}) {
		return n, false
	}
	// Center must sit on the negative side
	if vmath.V2Dot(n, vmath.V2Sub(h.Center, a)) > 0 {
		n = vmath.V2Scale(n, -1)
	}
	return n, true
}

// SignedDistance returns the distance from p to the infinite line of edge i, positive outside
func (h *Hexagon) SignedDistance(i int, p vmath.Vec2) (float64, bool) {
	n, ok := h.OutwardNormal(i)
	if !ok {
		return 0, false
	}
	a := h.Vertices[i]
	return vmath.V2Dot(vmath.V2Sub(p, a), n), true
}

// ContainsPoint performs the horizontal ray-crossing test toward +X
func (h *Hexagon) ContainsPoint(p vmath.Vec2) bool {
	inside := false
	for i := 0; i < HexSides; i++ {
		a, b := h.Edge(i)
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// X of the edge at the ray's height
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}

// ClosestPointOnSegment projects p onto segment ab with t clamped to [0,1]
// A degenerate segment returns a with t = 0
func ClosestPointOnSegment(p, a, b vmath.Vec2) (q vmath.Vec2, t float64) {
	ab := vmath.V2Sub(b, a)
	lenSq := vmath.V2MagSq(ab)
	if lenSq < vmath.Epsilon*vmath.Epsilon {
		return a, 0
	}
	t = vmath.V2Dot(vmath.V2Sub(p, a), ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return vmath.V2Add(a, vmath.V2Scale(ab, t)), t
}

// NearestEdge returns the edge whose bounded segment is closest to p
// Ties within tieTolerance keep the lowest index; returns -1 when every edge is degenerate
func (h *Hexagon) NearestEdge(p vmath.Vec2) (index int, closest vmath.Vec2, dist float64) {
	const tieTolerance = 1e-9
	index = -1
	dist = math.Inf(1)
	for i := 0; i < HexSides; i++ {
		if _, ok := h.OutwardNormal(i); !ok {
			continue
		}
		a, b := h.Edge(i)
		q, _ := ClosestPointOnSegment(p, a, b)
		d := math.Sqrt(vmath.V2DistSq(p, q))
		if d < dist-tieTolerance {
			index, closest, dist = i, q, d
		}
	}
	return index, closest, dist
}

// Apothem returns the center-to-edge distance of the regular hexagon
func (h *Hexagon) Apothem() float64 {
	return h.Radius * math.Cos(hexStep/2)
}
