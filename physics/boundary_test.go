package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/hexfall/vmath"
)

var testCenter = vmath.V2(400, 400)

func TestGenerateHexagonSymmetry(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 5, 2.5, -1.1, 100} {
		for _, radius := range []float64{1, 250, 1e4} {
			h := GenerateHexagon(testCenter, radius, angle)
			for i := 0; i < HexSides; i++ {
				d := math.Sqrt(vmath.V2DistSq(h.Vertices[i], testCenter))
				if math.Abs(d-radius) > 1e-9*radius {
					t.Errorf("angle %f radius %f: vertex %d at distance %f", angle, radius, i, d)
				}

				u := vmath.V2Sub(h.Vertices[i], testCenter)
				w := vmath.V2Sub(h.Vertices[(i+1)%HexSides], testCenter)
				step := math.Atan2(vmath.V2Cross(u, w), vmath.V2Dot(u, w))
				if math.Abs(step-math.Pi/3) > 1e-9 {
					t.Errorf("angle %f: vertices %d→%d separated by %f rad", angle, i, i+1, step)
				}
			}
		}
	}
}

func TestGenerateHexagonFirstVertex(t *testing.T) {
	h := GenerateHexagon(testCenter, 100, 0)
	if math.Abs(h.Vertices[0].X-500) > 1e-9 || math.Abs(h.Vertices[0].Y-400) > 1e-9 {
		t.Errorf("vertex 0 at angle 0 = %v, want {500 400}", h.Vertices[0])
	}

	h = GenerateHexagon(testCenter, 100, math.Pi/2)
	if math.Abs(h.Vertices[0].X-400) > 1e-9 || math.Abs(h.Vertices[0].Y-500) > 1e-9 {
		t.Errorf("vertex 0 at angle π/2 = %v, want {400 500}", h.Vertices[0])
	}
}

func TestOutwardNormalPointsAway(t *testing.T) {
	for _, angle := range []float64{0, 0.7, 3} {
		h := GenerateHexagon(testCenter, 250, angle)
		for i := 0; i < HexSides; i++ {
			n, ok := h.OutwardNormal(i)
			if !ok {
				t.Fatalf("edge %d reported degenerate", i)
			}
			if math.Abs(vmath.V2Mag(n)-1) > 1e-12 {
				t.Errorf("edge %d normal not unit: %v", i, n)
			}
			d, _ := h.SignedDistance(i, testCenter)
			if math.Abs(d+h.Apothem()) > 1e-9 {
				t.Errorf("edge %d: center signed distance %f, want %f", i, d, -h.Apothem())
			}
		}
	}
}

func TestDegenerateEdgesSkipped(t *testing.T) {
	h := GenerateHexagon(testCenter, 0, 0)
	for i := 0; i < HexSides; i++ {
		if _, ok := h.OutwardNormal(i); ok {
			t.Errorf("edge %d of zero-radius hexagon should be degenerate", i)
		}
	}
	if idx, _, _ := h.NearestEdge(testCenter); idx != -1 {
		t.Errorf("NearestEdge on degenerate hexagon = %d, want -1", idx)
	}
}

func TestContainsPoint(t *testing.T) {
	const radius = 250
	h := GenerateHexagon(testCenter, radius, 0)

	if !h.ContainsPoint(testCenter) {
		t.Error("center classified outside")
	}

	for i := 0; i < HexSides; i++ {
		dir := vmath.V2Normalize(vmath.V2Sub(h.Vertices[i], testCenter))
		out := vmath.V2Add(testCenter, vmath.V2Scale(dir, radius+1))
		if h.ContainsPoint(out) {
			t.Errorf("point beyond vertex %d classified inside: %v", i, out)
		}
		in := vmath.V2Add(testCenter, vmath.V2Scale(dir, radius-1))
		if !h.ContainsPoint(in) {
			t.Errorf("point just inside vertex %d classified outside: %v", i, in)
		}
	}

	// Beyond the apothem along an edge midpoint direction
	n, _ := h.OutwardNormal(0)
	if h.ContainsPoint(vmath.V2Add(testCenter, vmath.V2Scale(n, h.Apothem()+0.5))) {
		t.Error("point past edge 0 classified inside")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := vmath.V2(0, 0)
	b := vmath.V2(10, 0)

	tests := []struct {
		name  string
		p     vmath.Vec2
		wantQ vmath.Vec2
		wantT float64
	}{
		{"interior", vmath.V2(4, 3), vmath.V2(4, 0), 0.4},
		{"before start", vmath.V2(-5, 2), a, 0},
		{"past end", vmath.V2(15, -2), b, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, tp := ClosestPointOnSegment(tt.p, a, b)
			if q != tt.wantQ || math.Abs(tp-tt.wantT) > 1e-12 {
				t.Errorf("got (%v, %f), want (%v, %f)", q, tp, tt.wantQ, tt.wantT)
			}
		})
	}

	if q, tp := ClosestPointOnSegment(vmath.V2(3, 3), a, a); q != a || tp != 0 {
		t.Errorf("degenerate segment = (%v, %f), want (%v, 0)", q, tp, a)
	}
}

func TestNearestEdgeTieBreak(t *testing.T) {
	h := GenerateHexagon(testCenter, 250, 0)
	// Exactly on the ray toward vertex 0, edges 5 and 0 are equidistant
	p := vmath.V2Add(testCenter, vmath.V2(240, 0))
	idx, _, _ := h.NearestEdge(p)
	if idx != 0 {
		t.Errorf("vertex tie resolved to edge %d, want 0", idx)
	}
}
