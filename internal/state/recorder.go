package state

import (
	"image/color"
	"log"
	"sync"
)

// Recorder turns pointer gestures into an append-only list of strokes.
// Gesture events arrive serially from the UI; the lock exists for exports
// reading the list from another goroutine.
type Recorder struct {
	mu         sync.RWMutex
	strokes    []Stroke
	active     bool
	background color.NRGBA

	// OnChange is called after every mutation, outside the lock.
	OnChange func()
}

// NewRecorder creates an empty recorder. Eraser strokes are painted with
// background.
func NewRecorder(background color.NRGBA) *Recorder {
	return &Recorder{
		strokes:    make([]Stroke, 0),
		background: background,
	}
}

func (r *Recorder) Background() color.NRGBA {
	return r.background
}

func (r *Recorder) changed() {
	if r.OnChange != nil {
		r.OnChange()
	}
}

// BeginStroke appends a new stroke seeded with p. For the eraser, c is
// ignored and the background color is recorded instead.
func (r *Recorder) BeginStroke(p Point, c color.NRGBA, width float32, kind ToolKind) {
	if kind == Eraser {
		c = r.background
	}
	s := Stroke{
		ID:     newStrokeID(),
		Points: []Point{p},
		Color:  c,
		Width:  width,
		Tool:   kind,
	}

	r.mu.Lock()
	r.strokes = append(r.strokes, s)
	r.active = true
	r.mu.Unlock()

	r.changed()
}

// ExtendStroke appends p to the most recent stroke. Calling it before any
// BeginStroke is a programming error and panics.
func (r *Recorder) ExtendStroke(p Point) {
	r.mu.Lock()
	n := len(r.strokes)
	if n == 0 {
		r.mu.Unlock()
		panic("state: ExtendStroke called with no stroke begun")
	}
	last := &r.strokes[n-1]
	last.Points = append(last.Points, p)
	r.mu.Unlock()

	r.changed()
}

// EndStroke marks the current gesture as finished. The stroke itself is
// already in the list.
func (r *Recorder) EndStroke() {
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()
}

// Clear removes every stroke and abandons any gesture in progress.
func (r *Recorder) Clear() {
	r.mu.Lock()
	n := len(r.strokes)
	r.strokes = make([]Stroke, 0)
	r.active = false
	r.mu.Unlock()

	log.Printf("[BOARD] Cleared %d strokes", n)
	r.changed()
}

// Active reports whether a gesture is in progress.
func (r *Recorder) Active() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.strokes)
}

// Strokes returns a copy of every stroke, including one still being drawn.
func (r *Recorder) Strokes() []Stroke {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneStrokes(r.strokes)
}

// Snapshot returns a copy of the strokes whose gestures have ended. A stroke
// still under the pointer is left out so an export never sees it half drawn.
func (r *Recorder) Snapshot() []Stroke {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ended := r.strokes
	if r.active && len(ended) > 0 {
		ended = ended[:len(ended)-1]
	}
	return cloneStrokes(ended)
}

func cloneStrokes(src []Stroke) []Stroke {
	out := make([]Stroke, len(src))
	for i, s := range src {
		out[i] = s.clone()
	}
	return out
}
