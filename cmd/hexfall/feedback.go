package main

import "github.com/lixenwraith/hexfall/engine"

// cuePlayer is the audio surface the frame loop drives
type cuePlayer interface {
	PlayBounce(impact float64)
	PlayDrip(count int)
	PlaySpawn()
	PlayToggle(on bool)
}

// playCues turns one step report into sound cues
func playCues(p cuePlayer, r engine.Report, confetti bool) {
	if r.BallBounced {
		p.PlayBounce(r.BallImpact)
	}
	if r.ParticleBounces > 0 {
		p.PlayDrip(r.ParticleBounces)
	}
	if r.Spawned > 0 {
		p.PlaySpawn()
	}
	if r.Toggled {
		p.PlayToggle(confetti)
	}
}

// fpsMeter smooths the measured frame rate
type fpsMeter struct {
	fps float64
}

func (m *fpsMeter) Tick(dt float64) float64 {
	if dt <= 0 {
		return m.fps
	}
	inst := 1 / dt
	if m.fps == 0 {
		m.fps = inst
	} else {
		m.fps += 0.1 * (inst - m.fps)
	}
	return m.fps
}
