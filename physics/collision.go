package physics

import (
	"fmt"

	"github.com/lixenwraith/hexfall/core"
	"github.com/lixenwraith/hexfall/vmath"
)

// Strategy selects the boundary collision algorithm
type Strategy uint8

const (
	// StrategyNearest resolves against the nearest bounded edge and pushes the body back inside
	StrategyNearest Strategy = iota
	// StrategyHalfPlane clamps against every edge treated as an infinite half-plane
	StrategyHalfPlane
	// StrategySegment reflects off the nearest bounded edge without positional correction
	StrategySegment
)

var strategyNames = [...]string{
	StrategyNearest:   "nearest",
	StrategyHalfPlane: "halfplane",
	StrategySegment:   "segment",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy maps a config name to a Strategy
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return StrategyNearest, fmt.Errorf("unknown collision strategy %q", name)
}

// Contact describes what a resolver did to a body during one step
type Contact struct {
	Hit bool
	// Edge is the index of the resolving edge, -1 when no contact
	Edge int
	// Normal is the outward unit normal of Edge
	Normal vmath.Vec2
	// Depth is the penetration measured before correction
	Depth float64
	// Bounced is set when velocity was reflected
	Bounced bool
	// ImpactSpeed is the outward normal speed before reflection
	ImpactSpeed float64
}

// Resolver keeps a body inside the boundary; implementations mutate the body in place
// and must be safe for concurrent use on distinct bodies sharing one Hexagon
type Resolver interface {
	Resolve(b *core.Body, hex *Hexagon) Contact
}

// NewResolver returns the resolver for s with the given restitution factor
func NewResolver(s Strategy, restitution float64) Resolver {
	switch s {
	case StrategyHalfPlane:
		return &HalfPlaneResolver{Restitution: restitution}
	case StrategySegment:
		return &NearestEdgeResolver{Restitution: restitution, Correct: false}
	default:
		return &NearestEdgeResolver{Restitution: restitution, Correct: true}
	}
}

// HalfPlaneResolver treats each edge as an infinite line and corrects every overlap in edge order
type HalfPlaneResolver struct {
	Restitution float64
}

func (r *HalfPlaneResolver) Resolve(b *core.Body, hex *Hexagon) Contact {
	c := Contact{Edge: -1}
	for i := 0; i < HexSides; i++ {
		n, ok := hex.OutwardNormal(i)
		if !ok {
			continue
		}
		dist := vmath.V2Dot(vmath.V2Sub(b.Pos, hex.Vertices[i]), n)
		if dist <= -b.Radius {
			continue
		}

		overlap := dist + b.Radius
		b.Pos = vmath.V2Sub(b.Pos, vmath.V2Scale(n, overlap))
		if !c.Hit || overlap > c.Depth {
			c.Edge, c.Normal, c.Depth = i, n, overlap
		}
		c.Hit = true

		vn := vmath.V2Dot(b.Vel, n)
		if vn <= vmath.Epsilon {
			continue
		}
		b.Vel = vmath.V2Scale(vmath.V2Reflect(b.Vel, n), r.Restitution)
		c.Bounced = true
		if vn > c.ImpactSpeed {
			c.ImpactSpeed = vn
		}
	}
	return c
}

// NearestEdgeResolver reflects off the single nearest bounded edge
// With Correct set, overlapping half-planes are also projected out so the body ends the step inside
type NearestEdgeResolver struct {
	Restitution float64
	Correct     bool
}

func (r *NearestEdgeResolver) Resolve(b *core.Body, hex *Hexagon) Contact {
	c := Contact{Edge: -1}

	inside := hex.ContainsPoint(b.Pos)
	i, _, d := hex.NearestEdge(b.Pos)
	if i < 0 {
		return c
	}
	if inside && d >= b.Radius {
		return c
	}

	n, _ := hex.OutwardNormal(i)
	c.Hit, c.Edge, c.Normal = true, i, n
	if inside {
		c.Depth = b.Radius - d
	} else {
		c.Depth = b.Radius + d
	}

	if r.Correct {
		PushInside(b, hex)
	}

	vn := vmath.V2Dot(b.Vel, n)
	if vn > vmath.Epsilon {
		b.Vel = vmath.V2Scale(vmath.V2Reflect(b.Vel, n), r.Restitution)
		c.Bounced = true
		c.ImpactSpeed = vn
	}
	return c
}

// pushPasses bounds the projection loop when the body cannot fit (radius above apothem)
const pushPasses = 3

// PushInside projects the body out of every half-plane it overlaps
// Returns true if the position changed
func PushInside(b *core.Body, hex *Hexagon) bool {
	moved := false
	for pass := 0; pass < pushPasses; pass++ {
		changed := false
		for i := 0; i < HexSides; i++ {
			n, ok := hex.OutwardNormal(i)
			if !ok {
				continue
			}
			overlap := vmath.V2Dot(vmath.V2Sub(b.Pos, hex.Vertices[i]), n) + b.Radius
			if overlap <= vmath.Epsilon {
				continue
			}
			b.Pos = vmath.V2Sub(b.Pos, vmath.V2Scale(n, overlap))
			changed = true
		}
		if !changed {
			break
		}
		moved = true
	}
	return moved
}
