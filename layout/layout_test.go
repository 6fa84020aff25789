package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/quoridor/model"
)

// 67px squares: fence width 9, pawn radius 17, quarter 16.
var l = New(67)

func TestNew(t *testing.T) {
	assert.Equal(t, Layout{Square: 67, FenceWidth: 9, PawnRadius: 17}, l)
	assert.Equal(t, 603, l.Width())
	assert.Equal(t, 670, l.Height())
	assert.Equal(t, 603, l.StatusY())
	assert.Equal(t, 8, New(2).Square)
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y int
		cell model.Cell
		ok   bool
	}{
		{0, 0, model.Cell{Row: 0, Col: 0}, true},
		{66, 66, model.Cell{Row: 0, Col: 0}, true},
		{67, 0, model.Cell{Row: 0, Col: 1}, true},
		{602, 602, model.Cell{Row: 8, Col: 8}, true},
		{300, 140, model.Cell{Row: 2, Col: 4}, true},
		{603, 10, model.Cell{}, false},
		{10, 610, model.Cell{}, false},
		{-1, 5, model.Cell{}, false},
	}
	for _, tt := range tests {
		c, ok := l.CellAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, tt.cell, c, "(%d,%d)", tt.x, tt.y)
		}
	}
}

func TestCellCenterAndPawnHit(t *testing.T) {
	x, y := l.CellCenter(model.Cell{Row: 0, Col: 0})
	assert.Equal(t, 33.0, x)
	assert.Equal(t, 33.0, y)
	x, y = l.CellCenter(model.Cell{Row: 8, Col: 4})
	assert.Equal(t, 301.0, x)
	assert.Equal(t, 569.0, y)

	c := model.Cell{Row: 0, Col: 0}
	assert.True(t, l.PawnHit(33, 33, c))
	assert.True(t, l.PawnHit(50, 16, c))
	assert.False(t, l.PawnHit(51, 33, c))
	assert.False(t, l.PawnHit(33, 15, c))
	assert.False(t, l.PawnHit(100, 33, c))
}

func TestFenceAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		o    model.Orientation
		v    model.Vertex
		ok   bool
	}{
		{"on vertical line", 268, 167, model.Vertical, model.Vertex{Row: 2, Col: 4}, true},
		{"right of vertical line", 272, 167, model.Vertical, model.Vertex{Row: 2, Col: 4}, true},
		{"left of vertical line", 264, 150, model.Vertical, model.Vertex{Row: 2, Col: 4}, true},
		{"too far from line", 273, 167, 0, model.Vertex{}, false},
		{"vertical in last row", 268, 569, model.Vertical, model.Vertex{Row: 8, Col: 4}, true},
		{"on horizontal line", 234, 335, model.Horizontal, model.Vertex{Row: 5, Col: 3}, true},
		{"above horizontal line", 234, 331, model.Horizontal, model.Vertex{Row: 5, Col: 3}, true},
		{"quarter edge", 217, 67, model.Horizontal, model.Vertex{Row: 1, Col: 3}, true},
		{"outside quarter", 216, 67, 0, model.Vertex{}, false},
		{"post", 268, 335, 0, model.Vertex{}, false},
		{"cell centre", 301, 301, 0, model.Vertex{}, false},
		{"left board edge", 2, 33, 0, model.Vertex{}, false},
		{"top board edge", 33, 2, 0, model.Vertex{}, false},
		{"outside", -3, 40, 0, model.Vertex{}, false},
	}
	for _, tt := range tests {
		o, v, ok := l.FenceAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, tt.name)
		if tt.ok {
			assert.Equal(t, tt.o, o, tt.name)
			assert.Equal(t, tt.v, v, tt.name)
		}
	}
}

func TestFenceRect(t *testing.T) {
	h := l.FenceRect(model.Wall{Orientation: model.Horizontal, Anchor: model.Vertex{Row: 1, Col: 0}})
	assert.Equal(t, Rect{X: 0, Y: 62.5, W: 134, H: 9}, h)
	v := l.FenceRect(model.Wall{Orientation: model.Vertical, Anchor: model.Vertex{Row: 0, Col: 1}})
	assert.Equal(t, Rect{X: 62.5, Y: 0, W: 9, H: 134}, v)
}

func TestSegmentRectClipsToBoard(t *testing.T) {
	left := l.SegmentRect(model.Segment{Vertex: model.Vertex{Row: 0, Col: 0}, Orientation: model.Vertical})
	assert.Equal(t, Rect{X: 0, Y: 0, W: 4.5, H: 67}, left)
	bottom := l.SegmentRect(model.Segment{Vertex: model.Vertex{Row: 9, Col: 2}, Orientation: model.Horizontal})
	assert.Equal(t, Rect{X: 134, Y: 598.5, W: 67, H: 4.5}, bottom)
	inner := l.SegmentRect(model.Segment{Vertex: model.Vertex{Row: 4, Col: 4}, Orientation: model.Horizontal})
	assert.Equal(t, Rect{X: 268, Y: 263.5, W: 67, H: 9}, inner)
}
