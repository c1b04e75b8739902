package render

import (
	"math"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// Rasterize writes a 1 into grid for every live cell inside vp. The grid is
// resized to the viewport and cleared first.
func Rasterize(grid *core.ByteGrid, live life.LiveSet, pitch int64, vp Viewport) int {
	grid.Resize(vp.Cols, vp.Rows)
	p := float64(pitch)
	drawn := 0
	for pos := range live {
		col := int(math.Floor(float64(pos.X)/p + 0.5))
		row := int(math.Floor(float64(pos.Y)/p + 0.5))
		gx, gy, ok := vp.Cell(col, row)
		if !ok {
			continue
		}
		grid.Set(gx, gy, 1)
		drawn++
	}
	return drawn
}
