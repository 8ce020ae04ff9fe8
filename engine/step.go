package engine

import (
	"math"
	"sync"

	"github.com/lixenwraith/hexfall/core"
	"github.com/lixenwraith/hexfall/input"
	"github.com/lixenwraith/hexfall/physics"
	"github.com/lixenwraith/hexfall/vmath"
)

// Report summarizes one step for audio and status display
type Report struct {
	// BallBounced is set when the ball's velocity was reflected
	BallBounced bool
	// BallImpact is the ball's outward normal speed at the bounce
	BallImpact float64
	// ParticleBounces counts reflected particles
	ParticleBounces int
	// ParticleImpact is the strongest particle impact speed
	ParticleImpact float64
	Spawned        int
	Recycled       int
	Expired        int
	// Toggled is set when the palette mode changed
	Toggled bool
	Reset   bool
}

// chunkStats is one worker's share of the particle update
type chunkStats struct {
	bounces int
	impact  float64
}

// Step advances the simulation by dt seconds under intent
// Order: intent edges, rotation, boundary, spawn, particles, ball, expiry, palette
func Step(s *State, dt float64, in input.Intent) Report {
	var r Report
	dt = clampDelta(dt, s.cfg.MaxStepDelta)
	s.Tick++
	s.Time += dt

	if s.resetEdge.Update(in.Reset).Pressed {
		s.Reset()
		r.Reset = true
	}
	if s.toggleEdge.Update(in.TogglePalette).Pressed {
		r.Toggled = s.palette.Press()
	}

	target := s.cfg.BaseRotation
	if dir := in.Rotate(); dir != 0 {
		target = float64(dir) * s.cfg.BoostedRotation
	}
	s.RotationSpeed = s.rotation.Update(s.RotationSpeed, target, dt)
	s.Angle = math.Mod(s.Angle+s.RotationSpeed*dt, 2*math.Pi)
	s.Boundary = physics.GenerateHexagon(s.Center, s.cfg.HexRadius, s.Angle)

	if in.Emit {
		r.Spawned, r.Recycled = s.spawn(s.cfg.SpawnRate)
	}

	s.Wind = s.wind.At(in.Wind(), s.Time)
	s.forces.Wind = s.Wind

	r.ParticleBounces, r.ParticleImpact = s.updateParticles(dt)

	if dir := in.Thrust(); dir != 0 {
		physics.ApplyImpulse(&s.Ball, vmath.V2(float64(dir)*s.cfg.Thrust*dt, 0))
	}
	physics.Integrate(&s.Ball, &s.forces, dt)
	if c := s.resolver.Resolve(&s.Ball, &s.Boundary); c.Bounced {
		r.BallBounced = true
		r.BallImpact = c.ImpactSpeed
	}

	r.Expired = s.Particles.Expire(s.cfg.ParticleTTL)

	if s.palette.confetti {
		s.Hue = math.Mod(s.Hue+s.cfg.RainbowHueSpeed*dt, 360)
		s.recolor()
	}
	return r
}

// clampDelta maps non-finite or negative dt to 0 and caps it at limit
func clampDelta(dt, limit float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// spawn emits n particles at the boundary center with uniform random velocity
func (s *State) spawn(n int) (spawned, recycled int) {
	for i := 0; i < n; i++ {
		vel := vmath.V2(
			s.rng.Uniform(-1, 1)*s.cfg.SpawnSpeed,
			s.rng.Uniform(-1, 1)*s.cfg.SpawnSpeed,
		)
		if s.Particles.Spawn(core.Body{
			Pos:    s.Center,
			Vel:    vel,
			Radius: s.cfg.ParticleRadius,
			Kind:   core.KindParticle,
		}) {
			recycled++
		}
		spawned++
	}
	return spawned, recycled
}

// updateParticles integrates and resolves every particle, fanning out to
// workers once the pool passes the parallel threshold
func (s *State) updateParticles(dt float64) (int, float64) {
	n := s.Particles.Len()
	if n == 0 {
		return 0, 0
	}

	workers := s.workers
	if workers <= 1 || n < s.cfg.ParallelThreshold {
		st := s.updateRange(0, n, dt)
		return st.bounces, st.impact
	}

	chunk := (n + workers - 1) / workers
	if cap(s.chunkStats) < workers {
		s.chunkStats = make([]chunkStats, workers)
	}
	stats := s.chunkStats[:workers]

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			stats[w] = chunkStats{}
			continue
		}
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			stats[w] = s.updateRange(lo, hi, dt)
		}(w, lo, hi)
	}
	wg.Wait()

	var bounces int
	var impact float64
	for _, st := range stats {
		bounces += st.bounces
		impact = max(impact, st.impact)
	}
	return bounces, impact
}

// updateRange steps particles [lo, hi) in pool order
func (s *State) updateRange(lo, hi int, dt float64) chunkStats {
	var st chunkStats
	for i := lo; i < hi; i++ {
		p := s.Particles.At(i)
		p.Age += dt
		physics.Integrate(&p.Body, &s.forces, dt)
		if c := s.resolver.Resolve(&p.Body, &s.Boundary); c.Bounced {
			st.bounces++
			st.impact = max(st.impact, c.ImpactSpeed)
		}
	}
	return st
}

// recolor draws a fresh confetti colour for every particle
func (s *State) recolor() {
	for i := 0; i < s.Particles.Len(); i++ {
		s.Particles.At(i).Color = confettiColors[s.rng.Intn(len(confettiColors))]
	}
}
