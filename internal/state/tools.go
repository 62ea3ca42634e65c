package state

import (
	"fmt"
	"image/color"
	"sync"
)

// ToolState is the session-wide tool selection. It is written by the
// toolbar and read whenever a new stroke begins.
type ToolState struct {
	mu       sync.RWMutex
	color    color.NRGBA
	width    float32
	kind     ToolKind
	minWidth float32
	maxWidth float32
}

// NewToolState starts with the pen selected. Widths passed to SelectWidth are
// clamped to [minWidth, maxWidth].
func NewToolState(c color.NRGBA, width, minWidth, maxWidth float32) *ToolState {
	t := &ToolState{
		color:    c,
		kind:     Pen,
		minWidth: minWidth,
		maxWidth: maxWidth,
	}
	t.width = t.clamp(width)
	return t
}

func (t *ToolState) clamp(w float32) float32 {
	if t.minWidth > 0 && w < t.minWidth {
		return t.minWidth
	}
	if t.maxWidth > 0 && w > t.maxWidth {
		return t.maxWidth
	}
	return w
}

func (t *ToolState) SelectTool(k ToolKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.kind = k
}

// SelectColor sets the pen color and switches back to the pen, since the
// eraser has no color of its own.
func (t *ToolState) SelectColor(c color.NRGBA) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = c
	t.kind = Pen
}

func (t *ToolState) SelectWidth(w float32) error {
	if w <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", w)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width = t.clamp(w)
	return nil
}

func (t *ToolState) Kind() ToolKind {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.kind
}

func (t *ToolState) Color() color.NRGBA {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.color
}

func (t *ToolState) Width() float32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.width
}

// Current returns color, width and kind read under a single lock.
func (t *ToolState) Current() (color.NRGBA, float32, ToolKind) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.color, t.width, t.kind
}
