package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/hexfall/input"
	"github.com/lixenwraith/hexfall/parameter"
)

const frame = 1.0 / 60

func testConfig() *parameter.Config {
	cfg := parameter.Default()
	cfg.Seed = 7
	cfg.Workers = 1
	cfg.RotationSpringFreq = 0
	return cfg
}

func newTestState(t *testing.T, cfg *parameter.Config) *State {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSpawnBurst(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnRate = 10
	cfg.SpawnSpeed = 1
	cfg.Gravity = 0
	cfg.Friction = 1
	s := newTestState(t, cfg)

	r := Step(s, frame, input.Intent{Emit: true})
	if r.Spawned != 10 {
		t.Fatalf("Spawned = %d, want 10", r.Spawned)
	}
	limit := math.Sqrt2 + 1e-9
	for i := 0; i < s.Particles.Len(); i++ {
		p := s.Particles.At(i)
		if speed := math.Hypot(p.Vel.X, p.Vel.Y); speed > limit {
			t.Errorf("particle %d speed %v > sqrt2", i, speed)
		}
		if d := math.Hypot(p.Pos.X-s.Center.X, p.Pos.Y-s.Center.Y); d > limit*frame {
			t.Errorf("particle %d moved %v from center in one frame", i, d)
		}
	}

	Step(s, frame, input.Intent{Emit: true})
	Step(s, frame, input.Intent{Emit: true})
	if s.Particles.Len() != 30 {
		t.Errorf("Len = %d after 3 frames, want 30", s.Particles.Len())
	}
}

func TestBallFreeFall(t *testing.T) {
	s := newTestState(t, testConfig())
	startY := s.Ball.Pos.Y

	Step(s, frame, input.Intent{})

	wantVel := 900 * frame * 0.98
	if math.Abs(s.Ball.Vel.Y-wantVel) > 1e-9 {
		t.Errorf("vel.y = %v, want %v", s.Ball.Vel.Y, wantVel)
	}
	if s.Ball.Vel.X != 0 {
		t.Errorf("vel.x = %v, want 0", s.Ball.Vel.X)
	}
	if math.Abs(s.Ball.Pos.Y-(startY+wantVel*frame)) > 1e-9 {
		t.Errorf("pos.y = %v", s.Ball.Pos.Y)
	}
}

func TestThrustMovesBall(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = 0
	cfg.Friction = 1
	s := newTestState(t, cfg)

	Step(s, frame, input.Intent{ThrustRight: true})
	want := cfg.Thrust * frame
	if math.Abs(s.Ball.Vel.X-want) > 1e-9 {
		t.Errorf("vel.x = %v, want %v", s.Ball.Vel.X, want)
	}

	Step(s, frame, input.Intent{ThrustLeft: true, ThrustRight: true})
	if math.Abs(s.Ball.Vel.X-want) > 1e-9 {
		t.Errorf("opposed thrust changed vel.x to %v", s.Ball.Vel.X)
	}

	Step(s, frame, input.Intent{ThrustLeft: true})
	if math.Abs(s.Ball.Vel.X) > 1e-9 {
		t.Errorf("vel.x = %v after equal left impulse, want 0", s.Ball.Vel.X)
	}
}

func TestContainmentLongRun(t *testing.T) {
	for _, strategy := range []string{"nearest", "halfplane"} {
		t.Run(strategy, func(t *testing.T) {
			cfg := testConfig()
			cfg.Strategy = strategy
			cfg.ParticleCapacity = 256
			s := newTestState(t, cfg)

			for f := 0; f < 900; f++ {
				in := input.Intent{Emit: f%3 == 0, RotateRight: f < 450, ThrustLeft: f%120 < 30}
				Step(s, frame, in)
				if !s.Boundary.ContainsPoint(s.Ball.Pos) {
					t.Fatalf("frame %d: ball escaped at %+v", f, s.Ball.Pos)
				}
				for i := 0; i < s.Particles.Len(); i++ {
					if p := s.Particles.At(i); !s.Boundary.ContainsPoint(p.Pos) {
						t.Fatalf("frame %d: particle %d escaped at %+v", f, i, p.Pos)
					}
				}
			}
		})
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serialCfg := testConfig()
	serialCfg.ParticleCapacity = 512
	parallelCfg := testConfig()
	parallelCfg.ParticleCapacity = 512
	parallelCfg.Workers = 4
	parallelCfg.ParallelThreshold = 1

	serial := newTestState(t, serialCfg)
	parallel := newTestState(t, parallelCfg)

	for f := 0; f < 240; f++ {
		in := input.Intent{Emit: true, RotateLeft: f > 120}
		rs := Step(serial, frame, in)
		rp := Step(parallel, frame, in)
		if rs.ParticleBounces != rp.ParticleBounces {
			t.Fatalf("frame %d: bounces %d vs %d", f, rs.ParticleBounces, rp.ParticleBounces)
		}
	}

	if serial.Particles.Len() != parallel.Particles.Len() {
		t.Fatalf("len %d vs %d", serial.Particles.Len(), parallel.Particles.Len())
	}
	for i := 0; i < serial.Particles.Len(); i++ {
		a, b := serial.Particles.At(i), parallel.Particles.At(i)
		if a.Pos != b.Pos || a.Vel != b.Vel {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, a.Body, b.Body)
		}
	}
}

func TestTogglePaletteEdgeMode(t *testing.T) {
	s := newTestState(t, testConfig())

	presses := []bool{true, true, false, true, false}
	want := []bool{true, true, true, false, false}
	for i, held := range presses {
		Step(s, frame, input.Intent{TogglePalette: held})
		if s.Confetti() != want[i] {
			t.Errorf("frame %d: confetti = %v, want %v", i, s.Confetti(), want[i])
		}
	}
}

func TestTogglePaletteThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.ToggleMode = parameter.ToggleModeThreshold
	cfg.TogglePressThreshold = 10
	s := newTestState(t, cfg)

	toggles := 0
	for press := 1; press <= 12; press++ {
		if Step(s, frame, input.Intent{TogglePalette: true}).Toggled {
			toggles++
		}
		Step(s, frame, input.Intent{})

		if want := press >= 10; s.Confetti() != want {
			t.Errorf("after %d presses confetti = %v, want %v", press, s.Confetti(), want)
		}
	}
	if toggles != 1 {
		t.Errorf("Toggled reported %d times, want 1", toggles)
	}
	if s.TogglePresses() != 12 {
		t.Errorf("presses = %d, want 12", s.TogglePresses())
	}
}

func TestHueAdvancesOnlyInConfetti(t *testing.T) {
	s := newTestState(t, testConfig())
	Step(s, frame, input.Intent{})
	if s.Hue != 0 {
		t.Fatalf("hue moved without confetti: %v", s.Hue)
	}

	Step(s, frame, input.Intent{TogglePalette: true})
	want := s.cfg.RainbowHueSpeed * frame
	if math.Abs(s.Hue-want) > 1e-9 {
		t.Errorf("hue = %v, want %v", s.Hue, want)
	}
	for i := 0; i < 400; i++ {
		Step(s, frame, input.Intent{})
	}
	if s.Hue < 0 || s.Hue >= 360 {
		t.Errorf("hue out of range: %v", s.Hue)
	}
}

func TestRotationSpring(t *testing.T) {
	t.Run("snap", func(t *testing.T) {
		s := newTestState(t, testConfig())
		Step(s, frame, input.Intent{RotateRight: true})
		if s.RotationSpeed != s.cfg.BoostedRotation {
			t.Errorf("speed = %v, want %v", s.RotationSpeed, s.cfg.BoostedRotation)
		}
		Step(s, frame, input.Intent{RotateLeft: true})
		if s.RotationSpeed != -s.cfg.BoostedRotation {
			t.Errorf("speed = %v, want %v", s.RotationSpeed, -s.cfg.BoostedRotation)
		}
	})

	t.Run("eased", func(t *testing.T) {
		cfg := testConfig()
		cfg.RotationSpringFreq = 6
		cfg.RotationSpringDamping = 1
		s := newTestState(t, cfg)

		Step(s, frame, input.Intent{RotateRight: true})
		if s.RotationSpeed >= cfg.BoostedRotation {
			t.Errorf("spring jumped to %v on first frame", s.RotationSpeed)
		}
		for i := 1; i < 120; i++ {
			Step(s, frame, input.Intent{RotateRight: true})
		}
		if diff := math.Abs(s.RotationSpeed - cfg.BoostedRotation); diff > 0.01*cfg.BoostedRotation {
			t.Errorf("speed = %v after 2s, want within 1%% of %v", s.RotationSpeed, cfg.BoostedRotation)
		}
	})
}

func TestAngleWraps(t *testing.T) {
	s := newTestState(t, testConfig())
	for i := 0; i < 1000; i++ {
		Step(s, parameter.MaxStepDelta, input.Intent{RotateRight: true})
		if s.Angle < -2*math.Pi || s.Angle >= 2*math.Pi {
			t.Fatalf("angle %v not wrapped", s.Angle)
		}
	}
}

func TestResetIntent(t *testing.T) {
	s := newTestState(t, testConfig())
	spawn := s.Ball.Pos
	for i := 0; i < 30; i++ {
		Step(s, frame, input.Intent{Emit: true, ThrustRight: true})
	}

	r := Step(s, frame, input.Intent{Reset: true})
	if !r.Reset {
		t.Fatal("reset not reported")
	}
	if s.Particles.Len() != 0 {
		t.Errorf("particles = %d after reset", s.Particles.Len())
	}
	if s.Ball.Pos.X != spawn.X || s.Ball.Vel.X != 0 {
		t.Errorf("ball not recentred: %+v", s.Ball)
	}

	// Holding reset does not re-trigger
	if Step(s, frame, input.Intent{Reset: true}).Reset {
		t.Error("held reset triggered twice")
	}
}

func TestParticleTTL(t *testing.T) {
	cfg := testConfig()
	cfg.ParticleTTL = 0.1
	s := newTestState(t, cfg)

	Step(s, 0.05, input.Intent{Emit: true})
	if s.Particles.Len() != cfg.SpawnRate {
		t.Fatalf("Len = %d, want %d", s.Particles.Len(), cfg.SpawnRate)
	}
	r := Step(s, 0.05, input.Intent{})
	if r.Expired != cfg.SpawnRate || s.Particles.Len() != 0 {
		t.Errorf("expired %d, remaining %d", r.Expired, s.Particles.Len())
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{-1, 0},
		{0.01, 0.01},
		{1, 0.05},
	}
	for _, tt := range tests {
		if got := clampDelta(tt.in, 0.05); got != tt.want {
			t.Errorf("clampDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvalidDeltaFreezesBodies(t *testing.T) {
	s := newTestState(t, testConfig())
	before := s.Ball
	Step(s, math.NaN(), input.Intent{})
	if s.Ball != before {
		t.Errorf("ball moved on NaN dt: %+v", s.Ball)
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "bogus"
	if _, err := New(cfg); err == nil {
		t.Error("expected error")
	}
}

func TestSnapshotDetached(t *testing.T) {
	s := newTestState(t, testConfig())
	Step(s, frame, input.Intent{Emit: true})
	snap := s.Snapshot()

	if len(snap.Particles) != s.Particles.Len() {
		t.Fatalf("snapshot has %d particles, want %d", len(snap.Particles), s.Particles.Len())
	}
	first := snap.Particles[0].Pos
	ball := snap.Ball.Pos

	Step(s, frame, input.Intent{})
	if snap.Particles[0].Pos != first || snap.Ball.Pos != ball {
		t.Error("snapshot changed after step")
	}
	for _, p := range snap.Particles {
		if p.Color != ColorWater {
			t.Fatalf("non-water colour %d without confetti", p.Color)
		}
	}

	Step(s, frame, input.Intent{TogglePalette: true})
	s.SnapshotInto(&snap)
	if !snap.Confetti {
		t.Fatal("confetti not reflected in snapshot")
	}
	for _, p := range snap.Particles {
		if p.Color == ColorWater {
			t.Fatal("water colour in confetti mode")
		}
	}
}

func TestNewFloorsWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		cfg := testConfig()
		cfg.Workers = n
		cfg.ParallelThreshold = 1
		s := newTestState(t, cfg)
		if s.workers != 1 {
			t.Errorf("Workers=%d: workers = %d, want 1", n, s.workers)
		}
		if cfg.Workers != n {
			t.Errorf("New mutated cfg.Workers to %d", cfg.Workers)
		}
		Step(s, frame, input.Intent{Emit: true})
		Step(s, frame, input.Intent{})
		if s.Particles.Len() != cfg.SpawnRate {
			t.Errorf("Workers=%d: Len = %d, want %d", n, s.Particles.Len(), cfg.SpawnRate)
		}
	}
}
