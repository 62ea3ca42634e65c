package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"DoodleBoard/internal/state"
)

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return EncodePNG(w, img)
	case PDF:
		return EncodePDF(w, img)
	default:
		return fmt.Errorf("export: unknown format %v", f)
	}
}

// Render rasterizes strokes and returns the encoded bytes.
func Render(strokes []state.Stroke, width, height int, bg color.Color, f Format) ([]byte, error) {
	img, err := ExportToImage(strokes, width, height, bg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

// Exporter runs the full raster, encode and save sequence. A failure at any
// stage leaves the caller's strokes untouched; the user can simply retry.
type Exporter struct {
	Sink Sink
	Now  func() time.Time
}

func NewExporter(sink Sink) *Exporter {
	return &Exporter{Sink: sink, Now: time.Now}
}

// Export saves strokes as a new image and returns its location. strokes
// should be a snapshot taken by the caller.
func (e *Exporter) Export(strokes []state.Stroke, width, height int, bg color.Color, f Format) (fyne.URI, error) {
	data, err := Render(strokes, width, height, bg, f)
	if err != nil {
		return nil, err
	}

	name := FileName(e.Now(), f)
	u, err := e.Sink.Save(name, data)
	if err != nil {
		log.Printf("[EXPORT] Saving %s failed: %v", name, err)
		return nil, fmt.Errorf("save %s: %w", name, err)
	}
	log.Printf("[EXPORT] Saved %d strokes to %s (%d bytes)", len(strokes), u, len(data))
	return u, nil
}
