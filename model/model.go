package model

import "fmt"

const (
	Size            = 9
	VertexSize      = Size + 1
	FencesPerPlayer = 10
)

type Player int8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

// StartRow is the row the pawn starts on; it is the opponent's goal row.
func (p Player) StartRow() int {
	if p == PlayerB {
		return Size - 1
	}
	return 0
}

func (p Player) GoalRow() int {
	if p == PlayerB {
		return 0
	}
	return Size - 1
}

func (p Player) Name() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "-"
	}
}

type Cell struct {
	Row, Col int
}

func (c Cell) OnBoard() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Cell) Sub(o Cell) Cell {
	return Cell{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Vertex struct {
	Row, Col int
}

func (v Vertex) OnGrid() bool {
	return v.Row >= 0 && v.Row < VertexSize && v.Col >= 0 && v.Col < VertexSize
}

func (v Vertex) String() string {
	return fmt.Sprintf("<%d,%d>", v.Row, v.Col)
}

type Orientation int8

const (
	Horizontal Orientation = iota + 1
	Vertical
)

func (o Orientation) Name() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	default:
		return fmt.Sprintf("n/a:%d", o)
	}
}

// Post is one vertex of the fence grid.
// Right is the horizontal segment running right of the vertex, Below the
// vertical segment running down from it. The anchor flags mark the first post
// of a placed two-segment wall.
type Post struct {
	Right   bool
	Below   bool
	HAnchor bool
	VAnchor bool
}

// Segment is one set wall segment, as handed to the presentation layer.
type Segment struct {
	Vertex      Vertex
	Orientation Orientation
	Anchor      bool
}

// Wall is a placed two-segment fence identified by its anchor post.
type Wall struct {
	Orientation Orientation
	Anchor      Vertex
}

var (
	orthoDirs = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	jumpDirs  = [4]Cell{{-2, 0}, {2, 0}, {0, 2}, {0, -2}}
	diagDirs  = [4]Cell{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

func isOrtho(d Cell) bool {
	for _, o := range orthoDirs {
		if d == o {
			return true
		}
	}
	return false
}

func isJump(d Cell) bool {
	for _, j := range jumpDirs {
		if d == j {
			return true
		}
	}
	return false
}

func isDiag(d Cell) bool {
	for _, g := range diagDirs {
		if d == g {
			return true
		}
	}
	return false
}
