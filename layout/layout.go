// Package layout maps screen pixels to board cells and fence anchors and
// back. It has no drawing code, so the click rules can be tested headless.
package layout

import (
	"github.com/zucenko/quoridor/model"
)

type Layout struct {
	Square     int
	FenceWidth int
	PawnRadius int
}

func New(square int) Layout {
	if square < 8 {
		square = 8
	}
	return Layout{
		Square:     square,
		FenceWidth: square / 7,
		PawnRadius: square * 4 / 15,
	}
}

// Width and Height of the whole window; the strip below the board carries the
// status line.
func (l Layout) Width() int {
	return model.Size * l.Square
}

func (l Layout) Height() int {
	return model.Size*l.Square + l.Square
}

func (l Layout) StatusY() int {
	return model.Size * l.Square
}

func (l Layout) CellAt(x, y int) (model.Cell, bool) {
	if x < 0 || y < 0 {
		return model.Cell{}, false
	}
	c := model.Cell{Row: y / l.Square, Col: x / l.Square}
	return c, c.OnBoard()
}

func (l Layout) CellOrigin(c model.Cell) (float64, float64) {
	return float64(c.Col * l.Square), float64(c.Row * l.Square)
}

func (l Layout) CellCenter(c model.Cell) (float64, float64) {
	x, y := l.CellOrigin(c)
	half := float64(l.Square / 2)
	return x + half, y + half
}

// PawnHit reports a click inside the pawn-sized square at the centre of c.
func (l Layout) PawnHit(x, y int, c model.Cell) bool {
	cx := c.Col*l.Square + l.Square/2
	cy := c.Row*l.Square + l.Square/2
	return x >= cx-l.PawnRadius && x <= cx+l.PawnRadius &&
		y >= cy-l.PawnRadius && y <= cy+l.PawnRadius
}

// FenceAt turns a click near a grid line into a fence anchor.
// A click on an inner vertical line, in the middle half of a cell's height,
// asks for a vertical fence starting at that cell's top-left post; a click on
// an inner horizontal line, in the middle half of a cell's width, asks for a
// horizontal fence starting at that cell's top-left post on the line.
// The anchor may still fail model.FenceGrid.Fits (last row or column).
func (l Layout) FenceAt(x, y int) (model.Orientation, model.Vertex, bool) {
	if x < 0 || y < 0 {
		return 0, model.Vertex{}, false
	}
	s := l.Square
	half := l.FenceWidth / 2
	quarter := s / 4

	if line := (x + s/2) / s; line >= 1 && line < model.Size && abs(x-line*s) <= half {
		row := y / s
		if off := y - row*s; row < model.Size && off >= quarter && off <= 3*quarter {
			return model.Vertical, model.Vertex{Row: row, Col: line}, true
		}
	}
	if line := (y + s/2) / s; line >= 1 && line < model.Size && abs(y-line*s) <= half {
		col := x / s
		if off := x - col*s; col < model.Size && off >= quarter && off <= 3*quarter {
			return model.Horizontal, model.Vertex{Row: line, Col: col}, true
		}
	}
	return 0, model.Vertex{}, false
}

type Rect struct {
	X, Y, W, H float64
}

// FenceRect is the rectangle a placed two-segment wall covers.
func (l Layout) FenceRect(w model.Wall) Rect {
	s := float64(l.Square)
	fw := float64(l.FenceWidth)
	x := float64(w.Anchor.Col) * s
	y := float64(w.Anchor.Row) * s
	if w.Orientation == model.Vertical {
		return Rect{X: x - fw/2, Y: y, W: fw, H: 2 * s}
	}
	return Rect{X: x, Y: y - fw/2, W: 2 * s, H: fw}
}

// SegmentRect is the rectangle of a single segment, clipped to the board.
func (l Layout) SegmentRect(seg model.Segment) Rect {
	s := float64(l.Square)
	fw := float64(l.FenceWidth)
	x := float64(seg.Vertex.Col) * s
	y := float64(seg.Vertex.Row) * s
	var r Rect
	if seg.Orientation == model.Vertical {
		r = Rect{X: x - fw/2, Y: y, W: fw, H: s}
	} else {
		r = Rect{X: x, Y: y - fw/2, W: s, H: fw}
	}
	return l.clip(r)
}

func (l Layout) clip(r Rect) Rect {
	max := float64(l.Width())
	if r.X < 0 {
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.H += r.Y
		r.Y = 0
	}
	if r.X+r.W > max {
		r.W = max - r.X
	}
	if r.Y+r.H > max {
		r.H = max - r.Y
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
