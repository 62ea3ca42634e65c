package ui

import (
	"image/color"
	"log"
	"sync"

	"DoodleBoard/internal/render"
	"DoodleBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the full-size drawing surface. Drags become strokes in the
// recorder; every recorder change triggers a redraw.
type BoardWidget struct {
	widget.BaseWidget
	recorder *state.Recorder
	tools    *state.ToolState

	mu   sync.RWMutex
	size fyne.Size // last measured
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)

func NewBoardWidget(r *state.Recorder, t *state.ToolState) *BoardWidget {
	b := &BoardWidget{
		recorder: r,
		tools:    t,
	}
	b.ExtendBaseWidget(b)
	r.OnChange = b.Refresh
	return b
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *BoardWidget) begin(p state.Point) {
	c, w, k := b.tools.Current()
	b.recorder.BeginStroke(p, c, w, k)
}

// Dragged starts a stroke on the first event of a gesture and extends it on
// every following one. Fyne reports no separate drag start, so the start
// point is recovered from the first delta.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.recorder.Active() {
		b.begin(state.Point{X: e.Position.X - e.Dragged.DX, Y: e.Position.Y - e.Dragged.DY})
	}
	b.recorder.ExtendStroke(toPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.recorder.EndStroke()
}

// Tapped records a zero-length stroke. It has a single point and so draws
// nothing.
func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.begin(toPoint(e.Position))
	b.recorder.EndStroke()
}

// CanvasSize is the last laid out size in pixels, zero before the first
// layout.
func (b *BoardWidget) CanvasSize() (int, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return int(b.size.Width), int(b.size.Height)
}

func (b *BoardWidget) setSize(s fyne.Size) {
	b.mu.Lock()
	b.size = s
	b.mu.Unlock()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.recorder.Background())
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

// rebuild replays every stroke, the one under the pointer included.
func (r *boardWidgetRenderer) rebuild() {
	s := &lineSurface{}
	if err := render.Render(s, r.board.recorder.Strokes()); err != nil {
		log.Printf("[BOARD] Redraw failed: %v", err)
	}
	r.objects = append([]fyne.CanvasObject{r.background}, s.lines...)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.setSize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

// lineSurface turns polylines into one canvas.Line per segment.
type lineSurface struct {
	lines []fyne.CanvasObject
}

var _ render.Surface = (*lineSurface)(nil)

func (s *lineSurface) Polyline(points []state.Point, c color.Color, width float32) error {
	for i := 1; i < len(points); i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = width
		segment.Position1 = fyne.NewPos(points[i-1].X, points[i-1].Y)
		segment.Position2 = fyne.NewPos(points[i].X, points[i].Y)
		s.lines = append(s.lines, segment)
	}
	return nil
}
