package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"DoodleBoard/internal/state"
)

// Raster is an off-screen pixel surface.
type Raster struct {
	dc *gg.Context
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a width x height buffer filled with bg. Callers must
// validate the dimensions.
func NewRaster(width, height int, bg color.Color) *Raster {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(bg))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Raster{dc: dc}
}

func (r *Raster) Polyline(points []state.Point, c color.Color, width float32) error {
	if len(points) == 0 {
		return nil
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(float64(width))
	r.dc.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		r.dc.LineTo(float64(p.X), float64(p.Y))
	}
	return r.dc.Stroke()
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Image returns a copy of the current pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) Close() error {
	return r.dc.Close()
}
