package engine

import (
	"github.com/lixenwraith/hexfall/core"
	"github.com/lixenwraith/hexfall/input"
	"github.com/lixenwraith/hexfall/parameter"
	"github.com/lixenwraith/hexfall/physics"
	"github.com/lixenwraith/hexfall/vmath"
)

// State is the whole simulation; Step is its only mutator
// It is owned by one goroutine, workers only touch disjoint particle ranges during a step
type State struct {
	cfg *parameter.Config

	// ===== BOUNDARY =====

	Center        vmath.Vec2
	Angle         float64 // radians
	RotationSpeed float64 // radians per second
	Boundary      physics.Hexagon

	// ===== BODIES =====

	Ball      core.Body
	Particles *ParticlePool

	// ===== ENVIRONMENT =====

	Wind vmath.Vec2 // wind acceleration applied this step

	// ===== PALETTE =====

	Hue float64 // degrees in [0,360), advances only while confetti is on

	// ===== CLOCK =====

	Tick uint64
	Time float64 // simulated seconds

	// Internal
	workers    int
	rng        *vmath.FastRand
	resolver   physics.Resolver
	forces     physics.Forces
	wind       *physics.WindField
	rotation   *rotationSpring
	palette    *palette
	toggleEdge input.EdgeDetector
	resetEdge  input.EdgeDetector
	chunkStats []chunkStats
}

// New builds a state from a validated config
func New(cfg *parameter.Config) (*State, error) {
	strategy, err := physics.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	s := &State{
		cfg:           cfg,
		Center:        vmath.V2(cfg.Width/2, cfg.Height/2),
		RotationSpeed: cfg.BaseRotation,
		Particles:     NewParticlePool(cfg.ParticleCapacity),
		workers:       max(cfg.Workers, 1),
		rng:           vmath.NewFastRand(uint64(cfg.Seed)),
		resolver:      physics.NewResolver(strategy, cfg.Restitution),
		forces: physics.Forces{
			Gravity:    vmath.V2(0, cfg.Gravity),
			Friction:   cfg.Friction,
			WaterLevel: cfg.WaterLevel,
			WaterDrag:  cfg.WaterDrag,
			MaxSpeed:   cfg.MaxSpeed,
		},
		wind:     physics.NewWindField(cfg.Wind, cfg.WindGust, cfg.WindGustFrequency, cfg.Seed),
		rotation: newRotationSpring(cfg.RotationSpringFreq, cfg.RotationSpringDamping),
		palette:  newPalette(cfg.ToggleMode, cfg.TogglePressThreshold),
	}
	s.Boundary = physics.GenerateHexagon(s.Center, cfg.HexRadius, s.Angle)
	s.resetBall()
	return s, nil
}

// Config returns the config the state was built from
func (s *State) Config() *parameter.Config {
	return s.cfg
}

// Confetti reports whether the multicolour palette is active
func (s *State) Confetti() bool {
	return s.palette.confetti
}

// TogglePresses returns the number of palette toggle presses seen
func (s *State) TogglePresses() int {
	return s.palette.presses
}

// resetBall places the ball at rest above center
func (s *State) resetBall() {
	s.Ball = core.Body{
		Pos:    vmath.V2(s.Center.X, s.Center.Y-s.cfg.BallSpawnOffset),
		Radius: s.cfg.BallRadius,
		Kind:   core.KindBall,
	}
}

// Reset recentres the ball and clears particles; rotation and palette persist
func (s *State) Reset() {
	s.resetBall()
	s.Particles.Clear()
}
