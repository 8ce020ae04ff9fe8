package engine

import "github.com/lixenwraith/hexfall/parameter"

// palette is the cosmetic confetti flag driven by toggle presses
type palette struct {
	mode      string
	threshold int
	presses   int
	confetti  bool
}

func newPalette(mode string, threshold int) *palette {
	return &palette{mode: mode, threshold: threshold}
}

// Press registers one toggle press; returns true if the mode changed
func (p *palette) Press() bool {
	p.presses++
	switch p.mode {
	case parameter.ToggleModeThreshold:
		// Latches on permanently
		if !p.confetti && p.presses >= p.threshold {
			p.confetti = true
			return true
		}
		return false
	default:
		p.confetti = !p.confetti
		return true
	}
}
