//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

// GridPainter rasterizes the visible live cells into one image per frame.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte

	On, Off color.Color
}

// NewGridPainter returns a painter drawing black cells on white.
func NewGridPainter() *GridPainter {
	return &GridPainter{grid: core.NewByteGrid(1, 1), On: color.Black, Off: color.White}
}

// Draw paints live as seen through cam onto dst and returns how many cells
// were visible.
func (gp *GridPainter) Draw(dst *ebiten.Image, live life.LiveSet, pitch int64, cam Camera) int {
	b := dst.Bounds()
	vp := cam.Viewport(b.Dx(), b.Dy(), pitch)
	drawn := Rasterize(gp.grid, live, pitch, vp)

	w, h := gp.grid.W, gp.grid.H
	if gp.img == nil || gp.img.Bounds().Dx() != w || gp.img.Bounds().Dy() != h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillBinaryRGBA(gp.buf, gp.grid.Cells(), gp.On, gp.Off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.CellPx, vp.CellPx)
	op.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	dst.DrawImage(gp.img, op)
	return drawn
}
