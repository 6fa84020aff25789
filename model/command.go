package model

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandKind int8

const (
	MOVE CommandKind = iota + 1
	FENCE
)

// Command is one turn: either a pawn move to Cell or a fence at Vertex.
type Command struct {
	Kind        CommandKind
	Cell        Cell
	Orientation Orientation
	Vertex      Vertex
}

func MoveTo(c Cell) Command {
	return Command{Kind: MOVE, Cell: c}
}

func FenceAt(o Orientation, v Vertex) Command {
	return Command{Kind: FENCE, Orientation: o, Vertex: v}
}

func (c Command) String() string {
	switch c.Kind {
	case MOVE:
		return fmt.Sprintf("m %d %d", c.Cell.Row, c.Cell.Col)
	case FENCE:
		return fmt.Sprintf("%s %d %d", c.Orientation.Name(), c.Vertex.Row, c.Vertex.Col)
	default:
		return fmt.Sprintf("n/a:%d", c.Kind)
	}
}

// Apply runs c as player p.
func (g *Game) Apply(p Player, c Command) (bool, Reason) {
	switch c.Kind {
	case MOVE:
		return g.AttemptMove(p, c.Cell)
	case FENCE:
		return g.AttemptPlaceFence(p, c.Orientation, c.Vertex)
	}
	return false, ILLEGAL_GEOMETRY
}

// ParseCommand reads "m R C", "h R C" or "v R C".
// The long forms move, hfence and vfence work too.
func ParseCommand(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Command{}, fmt.Errorf("command %q: want 3 fields, got %d", s, len(fields))
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("command %q: row: %v", s, err)
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("command %q: col: %v", s, err)
	}
	switch strings.ToLower(fields[0]) {
	case "m", "move":
		return MoveTo(Cell{Row: row, Col: col}), nil
	case "h", "hfence":
		return FenceAt(Horizontal, Vertex{Row: row, Col: col}), nil
	case "v", "vfence":
		return FenceAt(Vertical, Vertex{Row: row, Col: col}), nil
	}
	return Command{}, fmt.Errorf("command %q: unknown verb %q", s, fields[0])
}
