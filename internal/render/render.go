// Package render replays recorded strokes onto a drawing surface. The live
// board and the exporter share Render so both paint the same way.
package render

import (
	"fmt"
	"image/color"

	"DoodleBoard/internal/state"
)

// Surface is anything that can stroke an open polyline.
type Surface interface {
	Polyline(points []state.Point, c color.Color, width float32) error
}

// Render paints strokes in insertion order, so later strokes cover earlier
// ones. Strokes with a single point have no segment and draw nothing.
// The slice is only read.
func Render(s Surface, strokes []state.Stroke) error {
	for i := range strokes {
		st := &strokes[i]
		if len(st.Points) < 2 {
			continue
		}
		if err := s.Polyline(st.Points, st.Color, st.Width); err != nil {
			return fmt.Errorf("stroke %s: %w", st.ID, err)
		}
	}
	return nil
}
