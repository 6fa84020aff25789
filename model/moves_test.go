package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalDestinationsOpening(t *testing.T) {
	f := NewFenceGrid()
	dests := LegalDestinations(f, Cell{0, 4}, Cell{8, 4})
	assert.Equal(t, []Cell{{1, 4}, {0, 3}, {0, 5}}, dests)
}

func TestLegalDestinationsBoardEdgeBehindOpponent(t *testing.T) {
	f := NewFenceGrid()
	dests := LegalDestinations(f, Cell{7, 4}, Cell{8, 4})
	assert.Equal(t, []Cell{{6, 4}, {7, 3}, {7, 5}, {8, 3}, {8, 5}}, dests)
	assert.Equal(t, OUT_OF_BOUNDS, CheckMove(f, Cell{7, 4}, Cell{8, 4}, Cell{9, 4}))
}

func TestCheckMove(t *testing.T) {
	open := NewFenceGrid()

	behind := NewFenceGrid()
	behind.Place(Horizontal, Vertex{6, 3}) // behind (5,4) seen from (4,4)

	between := NewFenceGrid()
	between.Place(Horizontal, Vertex{5, 4}) // between (4,4) and (5,4)

	side := NewFenceGrid()
	side.Place(Horizontal, Vertex{6, 3})
	side.Place(Vertical, Vertex{5, 5}) // between (5,4) and (5,5)

	step := NewFenceGrid()
	step.Place(Vertical, Vertex{4, 4}) // between (4,3) and (4,4)

	tests := []struct {
		name   string
		f      *FenceGrid
		from   Cell
		opp    Cell
		dest   Cell
		reason Reason
	}{
		{"step", open, Cell{4, 4}, Cell{0, 0}, Cell{3, 4}, OK},
		{"step into wall", step, Cell{4, 4}, Cell{0, 0}, Cell{4, 3}, BLOCKED_BY_WALL},
		{"step onto opponent", open, Cell{4, 4}, Cell{5, 4}, Cell{5, 4}, OCCUPIED},
		{"step off board", open, Cell{0, 0}, Cell{8, 8}, Cell{-1, 0}, OUT_OF_BOUNDS},
		{"jump", open, Cell{4, 4}, Cell{5, 4}, Cell{6, 4}, OK},
		{"jump sideways", open, Cell{4, 4}, Cell{4, 3}, Cell{4, 2}, OK},
		{"jump without opponent", open, Cell{4, 4}, Cell{8, 4}, Cell{6, 4}, ILLEGAL_GEOMETRY},
		{"jump over wall behind", behind, Cell{4, 4}, Cell{5, 4}, Cell{6, 4}, BLOCKED_BY_WALL},
		{"jump over wall between", between, Cell{4, 4}, Cell{5, 4}, Cell{6, 4}, BLOCKED_BY_WALL},
		{"diagonal with open jump", open, Cell{4, 4}, Cell{5, 4}, Cell{5, 3}, ILLEGAL_GEOMETRY},
		{"diagonal with wall behind", behind, Cell{4, 4}, Cell{5, 4}, Cell{5, 3}, OK},
		{"diagonal other side", behind, Cell{4, 4}, Cell{5, 4}, Cell{5, 5}, OK},
		{"diagonal away from opponent", behind, Cell{4, 4}, Cell{5, 4}, Cell{3, 3}, ILLEGAL_GEOMETRY},
		{"diagonal into side wall", side, Cell{4, 4}, Cell{5, 4}, Cell{5, 5}, BLOCKED_BY_WALL},
		{"diagonal past side wall", side, Cell{4, 4}, Cell{5, 4}, Cell{5, 3}, OK},
		{"diagonal with wall between", between, Cell{4, 4}, Cell{5, 4}, Cell{5, 3}, ILLEGAL_GEOMETRY},
		{"diagonal without opponent", open, Cell{4, 4}, Cell{7, 7}, Cell{5, 5}, ILLEGAL_GEOMETRY},
		{"knight", open, Cell{4, 4}, Cell{0, 0}, Cell{6, 5}, ILLEGAL_GEOMETRY},
		{"stay", open, Cell{4, 4}, Cell{0, 0}, Cell{4, 4}, ILLEGAL_GEOMETRY},
		{"far", open, Cell{4, 4}, Cell{0, 0}, Cell{7, 4}, ILLEGAL_GEOMETRY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason.Name(), CheckMove(tt.f, tt.from, tt.opp, tt.dest).Name())
		})
	}
}

func mirrorCell(c Cell) Cell {
	return Cell{Row: Size - 1 - c.Row, Col: c.Col}
}

// mirrorGrid flips the grid top to bottom. Anchors are not carried; moves
// never read them.
func mirrorGrid(f *FenceGrid) *FenceGrid {
	m := &FenceGrid{}
	for r := 0; r < VertexSize; r++ {
		for c := 0; c < VertexSize; c++ {
			if f.Posts[r][c].Right {
				m.Posts[Size-r][c].Right = true
			}
			if f.Posts[r][c].Below && r < Size {
				m.Posts[Size-1-r][c].Below = true
			}
		}
	}
	return m
}

func TestCheckMoveMirrorSymmetry(t *testing.T) {
	f := NewFenceGrid()
	f.Place(Horizontal, Vertex{6, 3})
	f.Place(Vertical, Vertex{5, 5})
	f.Place(Horizontal, Vertex{2, 0})
	f.Place(Vertical, Vertex{1, 4})
	f.Place(Horizontal, Vertex{8, 6})
	m := mirrorGrid(f)
	assert.Equal(t, NewFenceGrid().Segments(), mirrorGrid(NewFenceGrid()).Segments())

	candidates := append(append(orthoDirs[:], jumpDirs[:]...), diagDirs[:]...)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			from := Cell{r, c}
			opps := []Cell{{0, 0}}
			for _, d := range orthoDirs {
				if o := from.Add(d); o.OnBoard() {
					opps = append(opps, o)
				}
			}
			for _, opp := range opps {
				if opp == from {
					continue
				}
				for _, d := range candidates {
					dest := from.Add(d)
					want := CheckMove(f, from, opp, dest)
					got := CheckMove(m, mirrorCell(from), mirrorCell(opp), mirrorCell(dest))
					assert.Equal(t, want, got, "from %s opp %s dest %s", from, opp, dest)
				}
			}
		}
	}
}
