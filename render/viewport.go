package render

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/hexfall/vmath"
)

// CellAspect is terminal cell height over width
const CellAspect = 2.0

// Viewport maps world coordinates onto a cell grid, uniformly scaled and centred
type Viewport struct {
	World r2.Rect
	Cols  int
	Rows  int

	scale float64 // cells per world unit along X
	offX  float64
	offY  float64
}

// NewViewport fits world into a cols×rows grid
func NewViewport(world r2.Rect, cols, rows int) *Viewport {
	v := &Viewport{World: world}
	v.Resize(cols, rows)
	return v
}

// Resize refits the world into a new grid size
func (v *Viewport) Resize(cols, rows int) {
	v.Cols, v.Rows = max(cols, 0), max(rows, 0)
	size := v.World.Size()
	if size.X <= 0 || size.Y <= 0 || v.Cols == 0 || v.Rows == 0 {
		v.scale = 0
		return
	}
	v.scale = math.Min(float64(v.Cols)/size.X, float64(v.Rows)*CellAspect/size.Y)
	v.offX = (float64(v.Cols) - size.X*v.scale) / 2
	v.offY = (float64(v.Rows) - size.Y*v.scale/CellAspect) / 2
}

// Scale returns cells per world unit along X
func (v *Viewport) Scale() float64 {
	return v.scale
}

// ToCell maps a world point to its cell
func (v *Viewport) ToCell(p vmath.Vec2) (x, y int) {
	lo := v.World.Lo()
	cx := v.offX + (p.X-lo.X)*v.scale
	cy := v.offY + (p.Y-lo.Y)*v.scale/CellAspect
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// Contains reports whether a cell lies on the grid
func (v *Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Cols && y < v.Rows
}

// WorldRect returns the world bounds for a canvas size
func WorldRect(width, height float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: width, Y: height})
}

// ToWorld maps the centre of a cell back to world coordinates
func (v *Viewport) ToWorld(x, y int) vmath.Vec2 {
	if v.scale == 0 {
		return vmath.Vec2{}
	}
	lo := v.World.Lo()
	return vmath.V2(
		lo.X+(float64(x)+0.5-v.offX)/v.scale,
		lo.Y+(float64(y)+0.5-v.offY)*CellAspect/v.scale,
	)
}
