package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hexfall/engine"
)

// Scene colors
var (
	RgbBackground = tcell.NewRGBColor(8, 10, 20)
	RgbBoundary   = tcell.NewRGBColor(220, 220, 230)
	RgbBall       = tcell.NewRGBColor(255, 90, 70)
	RgbWater      = tcell.NewRGBColor(70, 150, 255)
	RgbWaterLine  = tcell.NewRGBColor(30, 70, 140)
	RgbStatusFg   = tcell.NewRGBColor(160, 160, 170)
	RgbStatusBg   = tcell.NewRGBColor(25, 25, 40)
)

// Confetti palette indexed by engine.ParticleColor
var particleColors = map[engine.ParticleColor]tcell.Color{
	engine.ColorWater:  RgbWater,
	engine.ColorRed:    tcell.NewRGBColor(255, 60, 60),
	engine.ColorGreen:  tcell.NewRGBColor(60, 230, 90),
	engine.ColorCyan:   tcell.NewRGBColor(60, 230, 230),
	engine.ColorYellow: tcell.NewRGBColor(250, 230, 60),
}

// ParticleColor resolves a palette slot, unknown slots fall back to water
func ParticleColor(c engine.ParticleColor) tcell.Color {
	if col, ok := particleColors[c]; ok {
		return col
	}
	return RgbWater
}

// HueColor returns a saturated color for hue in degrees
func HueColor(hue float64) tcell.Color {
	return toTcell(colorful.Hsv(hue, 0.8, 1.0))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
