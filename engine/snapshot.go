package engine

import (
	"github.com/lixenwraith/hexfall/physics"
	"github.com/lixenwraith/hexfall/vmath"
)

// BodyView is a read-only body for rendering
type BodyView struct {
	Pos    vmath.Vec2
	Radius float64
}

// ParticleView is a read-only particle for rendering
type ParticleView struct {
	Pos    vmath.Vec2
	Radius float64
	Color  ParticleColor
}

// Snapshot is a render-ready copy of the state, detached from later steps
type Snapshot struct {
	Tick uint64
	Time float64

	Center        vmath.Vec2
	Vertices      [physics.HexSides]vmath.Vec2
	Angle         float64
	RotationSpeed float64

	Ball      BodyView
	Particles []ParticleView // oldest first

	Wind       vmath.Vec2
	WaterLevel float64
	Water      bool // water drag enabled

	Confetti bool
	Hue      float64
	Capacity int
}

// Snapshot copies the state into a new snapshot
func (s *State) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto copies the state into dst, reusing dst's particle slice
func (s *State) SnapshotInto(dst *Snapshot) {
	particles := dst.Particles[:0]
	confetti := s.palette.confetti
	for i := 0; i < s.Particles.Len(); i++ {
		p := s.Particles.At(i)
		color := ColorWater
		if confetti {
			color = p.Color
		}
		particles = append(particles, ParticleView{Pos: p.Pos, Radius: p.Radius, Color: color})
	}

	*dst = Snapshot{
		Tick:          s.Tick,
		Time:          s.Time,
		Center:        s.Center,
		Vertices:      s.Boundary.Vertices,
		Angle:         s.Angle,
		RotationSpeed: s.RotationSpeed,
		Ball:          BodyView{Pos: s.Ball.Pos, Radius: s.Ball.Radius},
		Particles:     particles,
		Wind:          s.Wind,
		WaterLevel:    s.cfg.WaterLevel,
		Water:         s.cfg.WaterDrag < 1,
		Confetti:      confetti,
		Hue:           s.Hue,
		Capacity:      s.Particles.Cap(),
	}
}
