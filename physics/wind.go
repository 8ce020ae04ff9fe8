package physics

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/hexfall/vmath"
)

// Perlin octave parameters for gusts
const (
	windAlpha   = 2.0
	windBeta    = 2.0
	windOctaves = 3
)

// WindField produces horizontal wind acceleration with optional Perlin gusts
type WindField struct {
	noise *perlin.Perlin

	// Strength is the steady acceleration magnitude
	Strength float64
	// Gust scales noise in [-1,1] added to the unit strength; 0 gives steady wind
	Gust float64
	// Frequency is noise samples per second of simulation time
	Frequency float64
}

// NewWindField creates a wind field; the same seed replays the same gusts
func NewWindField(strength, gust, frequency float64, seed int64) *WindField {
	return &WindField{
		noise:     perlin.NewPerlin(windAlpha, windBeta, windOctaves, seed),
		Strength:  strength,
		Gust:      gust,
		Frequency: frequency,
	}
}

// At returns wind acceleration for direction dir (-1 left, 0 calm, +1 right) at time t seconds
func (w *WindField) At(dir int, t float64) vmath.Vec2 {
	if dir == 0 || w.Strength == 0 {
		return vmath.Vec2{}
	}
	factor := 1.0
	if w.Gust > 0 {
		factor += w.Gust * w.noise.Noise1D(t*w.Frequency)
		if factor < 0 {
			factor = 0
		}
	}
	return vmath.V2(float64(dir)*w.Strength*factor, 0)
}
