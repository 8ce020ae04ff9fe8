package parameter

import "time"

// Frame Pacing
const (
	// DefaultFPS is the frontend frame rate
	DefaultFPS = 60

	// MaxStepDelta caps a single step's dt in seconds so a stalled frame cannot tunnel bodies through walls
	MaxStepDelta = 0.05

	// HoldWindow is how long a terminal key counts as held after its last press/repeat event
	HoldWindow = 120 * time.Millisecond
)

// Canvas & Boundary
const (
	// CanvasWidth is the world width in pixels
	CanvasWidth = 800.0

	// CanvasHeight is the world height in pixels
	CanvasHeight = 800.0

	// HexRadius is the center-to-vertex distance of the boundary
	HexRadius = 250.0

	// BaseRotation is the idle rotation speed in radians per second (0.5° per frame at 60 FPS)
	BaseRotation = 0.5236

	// BoostedRotation is the rotation speed while a rotate key is held
	BoostedRotation = 3.0

	// RotationSpringFreq is the angular frequency of the rotation speed spring, 0 snaps instantly
	RotationSpringFreq = 6.0

	// RotationSpringDamping is the damping ratio of the rotation speed spring (1 = critical)
	RotationSpringDamping = 1.0
)

// Bodies
const (
	// BallRadius is the player ball collision radius
	BallRadius = 10.0

	// BallSpawnOffset is how far above center the ball starts
	BallSpawnOffset = 100.0

	// ParticleRadius is the water particle collision radius
	ParticleRadius = 3.0
)

// Forces
const (
	// Gravity is downward acceleration in px/s² (0.25 px per frame² at 60 FPS)
	Gravity = 900.0

	// Friction multiplies velocity once per step
	Friction = 0.98

	// Restitution multiplies velocity after a wall bounce
	Restitution = 0.8

	// Thrust is the ball's horizontal acceleration under player input in px/s²
	Thrust = 1440.0

	// MaxSpeed caps body speed in px/s, 0 disables
	MaxSpeed = 3000.0

	// Wind is the steady wind acceleration in px/s²
	Wind = 300.0

	// WindGust is the Perlin gust amplitude relative to Wind
	WindGust = 0.5

	// WindGustFrequency is gust noise samples per second
	WindGustFrequency = 0.8

	// WaterLevelOffset places the water surface below center
	WaterLevelOffset = 120.0

	// WaterDrag multiplies velocity per step below the water level, 1 disables
	WaterDrag = 1.0
)

// Particles
const (
	// SpawnRate is particles emitted per frame while the emit key is held
	SpawnRate = 10

	// SpawnSpeed scales the uniform [-1,1] spawn velocity into px/s
	SpawnSpeed = 60.0

	// ParticleCapacity bounds the particle ring buffer
	ParticleCapacity = 2048

	// ParticleTTL expires particles after this many seconds, 0 keeps them forever
	ParticleTTL = 0.0

	// ParallelThreshold is the live particle count above which updates fan out to workers
	ParallelThreshold = 1024
)

// Palette
const (
	// TogglePressThreshold is the press count that latches confetti in threshold mode
	TogglePressThreshold = 10

	// RainbowHueSpeed is hue advance in degrees per second while confetti is on
	RainbowHueSpeed = 120.0
)

