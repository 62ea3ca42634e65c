package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"time"
)

type Format int

const (
	PNG Format = iota
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FileName suggests a name of the form Doodle_<unix millis>.<ext>.
func FileName(t time.Time, f Format) string {
	return fmt.Sprintf("Doodle_%d.%s", t.UnixMilli(), f)
}

// EncodePNG writes img losslessly. The same image always yields the same bytes.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}
