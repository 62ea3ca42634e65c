// Package export turns the recorded strokes into a flat image and hands the
// encoded bytes to a sink.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"DoodleBoard/internal/render"
	"DoodleBoard/internal/state"
)

// ErrInvalidSize is returned when the canvas has not been measured yet.
var ErrInvalidSize = errors.New("export: canvas size must be positive")

// ExportToImage paints strokes over a width x height buffer filled with bg,
// using the same paint sequence as the live board.
func ExportToImage(strokes []state.Stroke, width, height int, bg color.Color) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	r := render.NewRaster(width, height, bg)
	defer r.Close()
	if err := render.Render(r, strokes); err != nil {
		return nil, err
	}
	return r.Image(), nil
}
