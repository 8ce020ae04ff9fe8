package engine

import "github.com/charmbracelet/harmonica"

// rotationSpring eases the boundary's rotation speed toward its target
// harmonica bakes the timestep into the spring, so it is rebuilt when dt changes
type rotationSpring struct {
	freq    float64
	damping float64

	spring harmonica.Spring
	dt     float64
	vel    float64
}

func newRotationSpring(freq, damping float64) *rotationSpring {
	return &rotationSpring{freq: freq, damping: damping}
}

// Update returns the next speed; freq 0 snaps straight to target
func (r *rotationSpring) Update(speed, target, dt float64) float64 {
	if r.freq == 0 {
		r.vel = 0
		return target
	}
	if dt <= 0 {
		return speed
	}
	if dt != r.dt {
		r.spring = harmonica.NewSpring(dt, r.freq, r.damping)
		r.dt = dt
	}
	speed, r.vel = r.spring.Update(speed, r.vel, target)
	return speed
}
