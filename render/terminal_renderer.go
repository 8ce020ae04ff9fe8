package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/hexfall/engine"
	"github.com/lixenwraith/hexfall/physics"
)

// Glyphs
const (
	GlyphBoundary  = '*'
	GlyphVertex    = '+'
	GlyphBall      = '@'
	GlyphParticle  = '.'
	GlyphWaterLine = '~'
)

// statusRows is reserved at the bottom of the screen
const statusRows = 1

// Status is frontend state shown beside the simulation
type Status struct {
	FPS      float64
	Strategy string
	Muted    bool
	NoAudio  bool
}

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	view   *Viewport
	width  int
	height int
}

// NewTerminalRenderer creates a renderer fitting world into the current screen
func NewTerminalRenderer(screen tcell.Screen, world r2.Rect) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, view: NewViewport(world, 0, 0)}
	r.Resize()
	return r
}

// Resize refits the viewport after a terminal resize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.view.Resize(r.width, r.height-statusRows)
}

// Viewport returns the active world to cell mapping
func (r *TerminalRenderer) Viewport() *Viewport {
	return r.view
}

// RenderFrame draws one snapshot and flushes the screen
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, st Status) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	hex := physics.Hexagon{Center: snap.Center, Vertices: snap.Vertices}
	if snap.Water {
		r.drawWaterLine(&hex, snap.WaterLevel, bg)
	}
	r.drawBoundary(snap, bg)
	r.drawParticles(snap, bg)
	r.drawBall(snap, bg)
	r.drawStatusBar(snap, st)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBoundary(snap *engine.Snapshot, bg tcell.Style) {
	color := RgbBoundary
	if snap.Confetti {
		color = HueColor(snap.Hue)
	}
	style := bg.Foreground(color)

	for i := range snap.Vertices {
		a := snap.Vertices[i]
		b := snap.Vertices[(i+1)%len(snap.Vertices)]
		x0, y0 := r.view.ToCell(a)
		x1, y1 := r.view.ToCell(b)
		r.line(x0, y0, x1, y1, GlyphBoundary, style)
	}
	for _, v := range snap.Vertices {
		x, y := r.view.ToCell(v)
		r.set(x, y, GlyphVertex, style)
	}
}

func (r *TerminalRenderer) drawWaterLine(hex *physics.Hexagon, level float64, bg tcell.Style) {
	style := bg.Foreground(RgbWaterLine)
	row := -1
	for y := 0; y < r.view.Rows; y++ {
		if p := r.view.ToWorld(0, y); p.Y >= level {
			row = y
			break
		}
	}
	if row < 0 {
		return
	}
	for x := 0; x < r.view.Cols; x++ {
		if hex.ContainsPoint(r.view.ToWorld(x, row)) {
			r.set(x, row, GlyphWaterLine, style)
		}
	}
}

// Particles are drawn oldest first so the newest win shared cells
func (r *TerminalRenderer) drawParticles(snap *engine.Snapshot, bg tcell.Style) {
	for _, p := range snap.Particles {
		x, y := r.view.ToCell(p.Pos)
		r.set(x, y, GlyphParticle, bg.Foreground(ParticleColor(p.Color)))
	}
}

// drawBall fills every cell whose centre lies inside the ball's ellipse in cell space
func (r *TerminalRenderer) drawBall(snap *engine.Snapshot, bg tcell.Style) {
	style := bg.Foreground(RgbBall).Bold(true)
	cx, cy := r.view.ToCell(snap.Ball.Pos)
	r.set(cx, cy, GlyphBall, style)

	rx := snap.Ball.Radius * r.view.Scale()
	ry := rx / CellAspect
	if rx < 1 && ry < 1 {
		return
	}
	for y := cy - int(math.Ceil(ry)); y <= cy+int(math.Ceil(ry)); y++ {
		for x := cx - int(math.Ceil(rx)); x <= cx+int(math.Ceil(rx)); x++ {
			p := r.view.ToWorld(x, y)
			dx := p.X - snap.Ball.Pos.X
			dy := p.Y - snap.Ball.Pos.Y
			if dx*dx+dy*dy <= snap.Ball.Radius*snap.Ball.Radius {
				r.set(x, y, GlyphBall, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot, st Status) {
	y := r.height - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusFg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	palette := "water"
	if snap.Confetti {
		palette = "confetti"
	}
	audio := ""
	switch {
	case st.NoAudio:
		audio = " | no audio"
	case st.Muted:
		audio = " | muted"
	}
	text := fmt.Sprintf(" fps %3.0f | particles %d/%d | %s | rot %+.2f | wind %+.0f | %s%s",
		st.FPS, len(snap.Particles), snap.Capacity, st.Strategy,
		snap.RotationSpeed, snap.Wind.X, palette, audio)

	x := 0
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// line rasterizes a segment with Bresenham's algorithm
func (r *TerminalRenderer) line(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// set clips to the viewport so nothing lands on the status bar
func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if !r.view.Contains(x, y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
