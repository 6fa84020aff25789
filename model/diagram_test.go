package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openingDiagram = `+---+---+---+---+---+---+---+---+---+
| .   .   .   .   A   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   .   .   .   .   . |
+   +   +   +   +   +   +   +   +   +
| .   .   .   .   B   .   .   .   . |
+---+---+---+---+---+---+---+---+---+
`

func TestRenderOpening(t *testing.T) {
	assert.Equal(t, openingDiagram, NewGame().String())
}

func TestRenderFences(t *testing.T) {
	g := NewGame()
	play(t, g, "h 1 3", "v 0 3")
	lines := strings.Split(g.String(), "\n")
	assert.Equal(t, "| .   .   . ! .   A   .   .   .   . |", lines[1])
	assert.Equal(t, "+   +   +   +===+---+   +   +   +   +", lines[2])
	assert.Equal(t, "| .   .   . | .   .   .   .   .   . |", lines[3])
}

func TestReadPosition(t *testing.T) {
	pos := mustRead(t, enclosedA)
	assert.Equal(t, Cell{0, 4}, pos.Pawn(PlayerA))
	assert.Equal(t, Cell{8, 4}, pos.Pawn(PlayerB))
	assert.Equal(t, PlayerA, pos.Board.Cells[0][4])
	assert.ElementsMatch(t, []Wall{
		{Orientation: Horizontal, Anchor: Vertex{1, 3}},
		{Orientation: Vertical, Anchor: Vertex{0, 3}},
		{Orientation: Vertical, Anchor: Vertex{0, 5}},
	}, pos.Fences.Walls())

	var sb strings.Builder
	require.NoError(t, RenderDiagram(&sb, &pos.Board, pos.Fences))
	assert.Equal(t, strings.TrimLeft(enclosedA, "\n"), sb.String())
}

func TestReadPositionMatchesGame(t *testing.T) {
	g := NewGame()
	play(t, g, "m 1 4", "v 5 5", "h 2 4", "m 7 4")
	pos := mustRead(t, g.String())

	assert.Equal(t, g.fences.Posts, pos.Fences.Posts)
	assert.Equal(t, g.board, pos.Board)
	a, _ := g.PawnPosition(PlayerA)
	assert.Equal(t, a, pos.Pawn(PlayerA))
}

func TestReadPositionErrors(t *testing.T) {
	tests := map[string]string{
		"short":      strings.Join(strings.Split(openingDiagram, "\n")[:10], "\n"),
		"long":       openingDiagram + "+   +\n",
		"no pawn B":  strings.Replace(openingDiagram, "B", ".", 1),
		"two pawn A": strings.Replace(openingDiagram, "B", "A", 1),
	}
	for name, diagram := range tests {
		_, err := ReadPosition(strings.NewReader(diagram))
		assert.Error(t, err, name)
	}
}
