package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hexfall/parameter"
)

// BounceGenerator is a sine knock with exponential decay
type BounceGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewBounceGenerator creates a knock at freq Hz with peak amplitude amp
func NewBounceGenerator(sr beep.SampleRate, freq, amp float64) *BounceGenerator {
	return &BounceGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *BounceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops slightly as it rings out
		freq := g.freq * (1 - 0.3*math.Min(t/0.2, 1))
		sample := g.amp * math.Exp(-t*18) * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BounceGenerator) Err() error {
	return nil
}

// HissGenerator is enveloped white noise for the emitter
type HissGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

// NewHissGenerator creates a hiss; equal seeds give equal output
func NewHissGenerator(sr beep.SampleRate, seed int64) *HissGenerator {
	return &HissGenerator{sr: sr, seed: seed}
}

func (g *HissGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast decay
		envelope := math.Min(t/0.005, 1) * math.Exp(-t*25)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole high-pass keeps it airy
		hp := noise - g.prev
		g.prev = noise

		sample := 0.08 * envelope * hp
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HissGenerator) Err() error {
	return nil
}

// Chime notes in Hz
var (
	chimeUp   = [...]float64{523.25, 659.25, 783.99}
	chimeDown = [...]float64{783.99, 659.25, 523.25}
)

// ChimeGenerator plays a three-note arpeggio, rising when on
type ChimeGenerator struct {
	sr    beep.SampleRate
	notes [3]float64
	step  int
	pos   int
}

// NewChimeGenerator creates a chime
func NewChimeGenerator(sr beep.SampleRate, on bool) *ChimeGenerator {
	g := &ChimeGenerator{sr: sr, notes: chimeDown}
	if on {
		g.notes = chimeUp
	}
	g.step = sr.N(parameter.ChimeNoteDuration)
	if g.step < 1 {
		g.step = 1
	}
	return g
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := min(g.pos/g.step, len(g.notes)-1)
		local := float64(g.pos-idx*g.step) / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)

		sample := 0.18 * math.Exp(-local*12) * math.Sin(2*math.Pi*g.notes[idx]*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
