package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DoodleBoard/internal/state"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func drawTwo(r *state.Recorder) {
	r.BeginStroke(state.Point{X: 2, Y: 2}, red, 4, state.Pen)
	r.ExtendStroke(state.Point{X: 20, Y: 20})
	r.EndStroke()
	r.BeginStroke(state.Point{X: 20, Y: 2}, red, 4, state.Pen)
	r.ExtendStroke(state.Point{X: 2, Y: 20})
	r.EndStroke()
}

func blank(t *testing.T, w, h int) *image.RGBA {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i++ {
		img.Pix[i] = 255
	}
	return img
}

func TestExportInvalidSize(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		img, err := ExportToImage(nil, tc.w, tc.h, white)
		assert.ErrorIs(t, err, ErrInvalidSize, "%dx%d", tc.w, tc.h)
		assert.Nil(t, img)
	}
}

func TestExportDimensions(t *testing.T) {
	img, err := ExportToImage(nil, 31, 17, white)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 31, 17), img.Bounds())
}

func TestExportAfterClearIsBlank(t *testing.T) {
	r := state.NewRecorder(white)
	drawTwo(r)

	drawn, err := ExportToImage(r.Snapshot(), 24, 24, white)
	require.NoError(t, err)
	assert.NotEqual(t, blank(t, 24, 24).Pix, drawn.(*image.RGBA).Pix)

	r.Clear()
	img, err := ExportToImage(r.Snapshot(), 24, 24, white)
	require.NoError(t, err)
	assert.Equal(t, blank(t, 24, 24).Pix, img.(*image.RGBA).Pix)
}

func TestEncodePNGStable(t *testing.T) {
	r := state.NewRecorder(white)
	drawTwo(r)
	img, err := ExportToImage(r.Snapshot(), 24, 24, white)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, EncodePNG(&a, img))
	require.NoError(t, EncodePNG(&b, img))
	assert.Equal(t, a.Bytes(), b.Bytes())

	decoded, err := png.Decode(bytes.NewReader(a.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			assert.Equal(t, color.NRGBAModel.Convert(img.At(x, y)), color.NRGBAModel.Convert(decoded.At(x, y)))
		}
	}
}

func TestEncodePDF(t *testing.T) {
	img, err := ExportToImage(nil, 40, 30, white)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, PDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestEncodeUnknownFormat(t *testing.T) {
	img, err := ExportToImage(nil, 4, 4, white)
	require.NoError(t, err)
	assert.Error(t, Encode(&bytes.Buffer{}, img, Format(9)))
}

func TestFileName(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, "Doodle_1700000000123.png", FileName(ts, PNG))
	assert.Equal(t, "Doodle_1700000000123.pdf", FileName(ts, PDF))
}

type memorySink struct {
	saved map[string][]byte
	err   error
}

func (m *memorySink) Save(name string, data []byte) (fyne.URI, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[name] = data
	return storage.NewFileURI("/mem/" + name), nil
}

func TestExporter(t *testing.T) {
	sink := &memorySink{}
	e := NewExporter(sink)
	e.Now = func() time.Time { return time.UnixMilli(42) }

	r := state.NewRecorder(white)
	drawTwo(r)

	u, err := e.Export(r.Snapshot(), 24, 24, white, PNG)
	require.NoError(t, err)
	assert.Equal(t, "Doodle_42.png", u.Name())
	require.Contains(t, sink.saved, "Doodle_42.png")

	want, err := Render(r.Snapshot(), 24, 24, white, PNG)
	require.NoError(t, err)
	assert.Equal(t, want, sink.saved["Doodle_42.png"])
}

func TestExporterFailuresLeaveStrokes(t *testing.T) {
	r := state.NewRecorder(white)
	drawTwo(r)
	before := r.Strokes()

	e := NewExporter(&memorySink{err: errors.New("disk full")})
	_, err := e.Export(r.Snapshot(), 24, 24, white, PNG)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	sink := &memorySink{}
	_, err = NewExporter(sink).Export(r.Snapshot(), 0, 24, white, PNG)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Empty(t, sink.saved)

	assert.Equal(t, before, r.Strokes())
}

func TestDirSink(t *testing.T) {
	test.NewTempApp(t)
	dir := filepath.Join(t.TempDir(), "doodles")

	u, err := DirSink{Dir: dir}.Save("Doodle_1.png", []byte("pixels"))
	require.NoError(t, err)
	assert.Equal(t, "Doodle_1.png", u.Name())

	data, err := os.ReadFile(filepath.Join(dir, "Doodle_1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pixels"), data)
}
