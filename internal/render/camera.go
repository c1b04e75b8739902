package render

import (
	"math"

	"sparse-life/pkg/life"
)

const (
	// MinZoom and MaxZoom clamp pixels per world unit.
	MinZoom = 0.05
	MaxZoom = 8.0
)

// Camera looks at the unbounded lattice. World y grows upwards while screen y
// grows downwards.
type Camera struct {
	CenterX, CenterY float64
	Zoom             float64
}

// NewCamera centres on the origin at the given zoom.
func NewCamera(zoom float64) Camera {
	c := Camera{}
	c.SetZoom(zoom)
	return c
}

// SetZoom clamps and applies z.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 || math.IsNaN(z) {
		z = 1
	}
	c.Zoom = math.Min(MaxZoom, math.Max(MinZoom, z))
}

// ZoomBy multiplies the zoom by factor.
func (c *Camera) ZoomBy(factor float64) { c.SetZoom(c.Zoom * factor) }

// Pan moves the view by a screen-space delta in pixels.
func (c *Camera) Pan(dxPx, dyPx float64) {
	c.CenterX += dxPx / c.Zoom
	c.CenterY -= dyPx / c.Zoom
}

// CenterOn moves the view to the middle of the bounding box of live. It
// reports false and leaves the camera alone when live is empty.
func (c *Camera) CenterOn(live life.LiveSet) bool {
	lo, hi, ok := live.Bounds()
	if !ok {
		return false
	}
	c.CenterX = (float64(lo.X) + float64(hi.X)) / 2
	c.CenterY = (float64(lo.Y) + float64(hi.Y)) / 2
	return true
}

// WorldToScreen maps a world point onto the screen.
func (c Camera) WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	sx := (x-c.CenterX)*c.Zoom + float64(screenW)/2
	sy := (c.CenterY-y)*c.Zoom + float64(screenH)/2
	return sx, sy
}

// ScreenToWorld maps a screen pixel back into world space.
func (c Camera) ScreenToWorld(sx, sy float64, screenW, screenH int) (float64, float64) {
	x := (sx-float64(screenW)/2)/c.Zoom + c.CenterX
	y := c.CenterY - (sy-float64(screenH)/2)/c.Zoom
	return x, y
}

// Viewport describes which lattice cells are visible and where the first one
// lands on screen.
type Viewport struct {
	Col0, Row0 int
	Cols, Rows int
	// OffsetX and OffsetY locate the top-left corner of cell (Col0, Row0).
	OffsetX, OffsetY float64
	CellPx           float64
}

// Viewport computes the visible cell window for a screen of the given size.
// Cells are squares of side pitch centred on their position.
func (c Camera) Viewport(screenW, screenH int, pitch int64) Viewport {
	p := float64(pitch)
	half := p / 2
	left := c.CenterX - float64(screenW)/(2*c.Zoom)
	top := c.CenterY + float64(screenH)/(2*c.Zoom)

	col0 := int(math.Floor((left + half) / p))
	row0 := int(math.Ceil((top - half) / p))
	cellPx := p * c.Zoom
	return Viewport{
		Col0:    col0,
		Row0:    row0,
		Cols:    int(math.Ceil(float64(screenW)/cellPx)) + 1,
		Rows:    int(math.Ceil(float64(screenH)/cellPx)) + 1,
		OffsetX: (float64(col0)*p - half - left) * c.Zoom,
		OffsetY: (top - (float64(row0)*p + half)) * c.Zoom,
		CellPx:  cellPx,
	}
}

// Cell maps a lattice column/row onto grid coordinates; ok is false when the
// cell is outside the viewport.
func (v Viewport) Cell(col, row int) (gx, gy int, ok bool) {
	gx = col - v.Col0
	gy = v.Row0 - row
	return gx, gy, gx >= 0 && gy >= 0 && gx < v.Cols && gy < v.Rows
}
