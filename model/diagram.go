package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Position is a board, fence grid and both pawns, read from a diagram.
type Position struct {
	Board  Board
	Fences *FenceGrid
	Pawns  [2]Cell
}

func (p *Position) Pawn(pl Player) Cell {
	if !pl.Valid() {
		return Cell{}
	}
	return p.Pawns[pl-1]
}

var pawnChars = map[Player]byte{
	NoPlayer: '.',
	PlayerA:  'A',
	PlayerB:  'B',
}

// RenderDiagram draws the position as 19 text lines. Even lines hold posts
// '+' and horizontal segments, odd lines vertical segments and cells.
// Anchored segments are drawn as "===" and '!'.
func RenderDiagram(w io.Writer, b *Board, f *FenceGrid) error {
	var sb strings.Builder
	for r := 0; r < VertexSize; r++ {
		for c := 0; c < Size; c++ {
			p := f.Posts[r][c]
			sb.WriteByte('+')
			switch {
			case p.Right && p.HAnchor:
				sb.WriteString("===")
			case p.Right:
				sb.WriteString("---")
			default:
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")
		if r == Size {
			break
		}
		for c := 0; c < VertexSize; c++ {
			p := f.Posts[r][c]
			switch {
			case p.Below && p.VAnchor:
				sb.WriteByte('!')
			case p.Below:
				sb.WriteByte('|')
			default:
				sb.WriteByte(' ')
			}
			if c < Size {
				sb.WriteByte(' ')
				sb.WriteByte(pawnChars[b.Cells[r][c]])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (g *Game) String() string {
	var sb strings.Builder
	_ = RenderDiagram(&sb, &g.board, g.fences)
	return sb.String()
}

// ReadPosition parses a diagram written by RenderDiagram. Blank lines are
// skipped; board edges are always walled whatever the diagram shows.
func ReadPosition(reader io.Reader) (*Position, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	pos := &Position{Fences: NewFenceGrid()}
	var found [2]bool
	rows := 0

	for scanner.Scan() {
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		if rows >= 2*Size+1 {
			return nil, fmt.Errorf("diagram: more than %d lines", 2*Size+1)
		}
		if rows%2 == 0 {
			// posts and horizontal segments
			r := rows / 2
			for c := 0; c < Size; c++ {
				switch span(s, 4*c+1, 4*c+4) {
				case "===":
					pos.Fences.Posts[r][c].Right = true
					pos.Fences.Posts[r][c].HAnchor = true
				case "---":
					pos.Fences.Posts[r][c].Right = true
				}
			}
		} else {
			// vertical segments and cells
			r := rows / 2
			for c := 0; c < VertexSize; c++ {
				switch span(s, 4*c, 4*c+1) {
				case "!":
					pos.Fences.Posts[r][c].Below = true
					pos.Fences.Posts[r][c].VAnchor = true
				case "|":
					pos.Fences.Posts[r][c].Below = true
				}
				if c == Size {
					continue
				}
				var p Player
				switch span(s, 4*c+2, 4*c+3) {
				case "A":
					p = PlayerA
				case "B":
					p = PlayerB
				default:
					continue
				}
				if found[p-1] {
					return nil, fmt.Errorf("diagram: pawn %s placed twice", p.Name())
				}
				found[p-1] = true
				pos.Pawns[p-1] = Cell{Row: r, Col: c}
				pos.Board.Cells[r][c] = p
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("diagram: %v", err)
	}
	if rows != 2*Size+1 {
		return nil, fmt.Errorf("diagram: want %d lines, got %d", 2*Size+1, rows)
	}
	for i, ok := range found {
		if !ok {
			return nil, fmt.Errorf("diagram: pawn %s missing", Player(i+1).Name())
		}
	}
	return pos, nil
}

// span is s[from:to], padded with spaces when s is short.
func span(s string, from, to int) string {
	if from >= len(s) {
		return strings.Repeat(" ", to-from)
	}
	if to > len(s) {
		return s[from:] + strings.Repeat(" ", to-len(s))
	}
	return s[from:to]
}
