package state

import (
	"fmt"
	"image/color"
)

type Point struct{ X, Y float32 }

// ToolKind is the drawing mode a stroke was made with.
type ToolKind int

const (
	Pen ToolKind = iota
	Eraser
)

func (k ToolKind) String() string {
	switch k {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("ToolKind(%d)", int(k))
	}
}

// Stroke is one continuous drag: an ordered list of points drawn with a
// fixed color and width.
type Stroke struct {
	ID     string
	Points []Point
	Color  color.NRGBA
	Width  float32
	Tool   ToolKind
}

func (s Stroke) clone() Stroke {
	c := s
	c.Points = make([]Point, len(s.Points))
	copy(c.Points, s.Points)
	return c
}
