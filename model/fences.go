package model

// FenceGrid is the 10x10 grid of posts, indexed [row][col].
type FenceGrid struct {
	Posts [VertexSize][VertexSize]Post
}

// NewFenceGrid returns a grid with the four board edges already walled, so
// leaving the board is blocked the same way an interior wall blocks.
func NewFenceGrid() *FenceGrid {
	f := &FenceGrid{}
	for i := 0; i < Size; i++ {
		f.Posts[0][i].Right = true
		f.Posts[Size][i].Right = true
		f.Posts[i][0].Below = true
		f.Posts[i][Size].Below = true
	}
	return f
}

func (f *FenceGrid) post(v Vertex) *Post {
	if !v.OnGrid() {
		return nil
	}
	return &f.Posts[v.Row][v.Col]
}

// HasWallBetween reports whether a segment separates two orthogonally
// adjacent cells. Cells that are not adjacent count as blocked.
func (f *FenceGrid) HasWallBetween(a, b Cell) bool {
	var p *Post
	switch b.Sub(a) {
	case Cell{-1, 0}:
		p = f.post(Vertex{a.Row, a.Col})
		return p == nil || p.Right
	case Cell{1, 0}:
		p = f.post(Vertex{b.Row, b.Col})
		return p == nil || p.Right
	case Cell{0, -1}:
		p = f.post(Vertex{a.Row, a.Col})
		return p == nil || p.Below
	case Cell{0, 1}:
		p = f.post(Vertex{b.Row, b.Col})
		return p == nil || p.Below
	}
	return true
}

// Fits reports whether a wall anchored at v stays on the board.
// Horizontal anchors live on rows 1..8 and cols 0..7, vertical anchors on
// rows 0..7 and cols 1..8.
func (f *FenceGrid) Fits(o Orientation, v Vertex) bool {
	switch o {
	case Horizontal:
		return v.Row >= 1 && v.Row < Size && v.Col >= 0 && v.Col < Size-1
	case Vertical:
		return v.Row >= 0 && v.Row < Size-1 && v.Col >= 1 && v.Col < Size
	}
	return false
}

// CanPlace checks bounds, overlap with set segments and crossing with a
// perpendicular wall sharing the same midpoint.
func (f *FenceGrid) CanPlace(o Orientation, v Vertex) bool {
	if !f.Fits(o, v) {
		return false
	}
	r, c := v.Row, v.Col
	switch o {
	case Horizontal:
		if f.Posts[r][c].Right || f.Posts[r][c+1].Right {
			return false
		}
		if f.Posts[r-1][c+1].VAnchor {
			return false
		}
	case Vertical:
		if f.Posts[r][c].Below || f.Posts[r+1][c].Below {
			return false
		}
		if f.Posts[r+1][c-1].HAnchor {
			return false
		}
	}
	return true
}

// Place sets both segments of the wall and its anchor. Callers check
// CanPlace first.
func (f *FenceGrid) Place(o Orientation, v Vertex) {
	f.set(o, v, true)
}

// Remove undoes Place.
func (f *FenceGrid) Remove(o Orientation, v Vertex) {
	f.set(o, v, false)
}

func (f *FenceGrid) set(o Orientation, v Vertex, on bool) {
	if !f.Fits(o, v) {
		return
	}
	r, c := v.Row, v.Col
	switch o {
	case Horizontal:
		f.Posts[r][c].Right = on
		f.Posts[r][c].HAnchor = on
		f.Posts[r][c+1].Right = on
	case Vertical:
		f.Posts[r][c].Below = on
		f.Posts[r][c].VAnchor = on
		f.Posts[r+1][c].Below = on
	}
}

// Segments lists every set segment in row-major order, board edges included.
func (f *FenceGrid) Segments() []Segment {
	segments := make([]Segment, 0, 4*Size)
	for r := 0; r < VertexSize; r++ {
		for c := 0; c < VertexSize; c++ {
			p := f.Posts[r][c]
			if p.Right {
				segments = append(segments, Segment{
					Vertex:      Vertex{r, c},
					Orientation: Horizontal,
					Anchor:      p.HAnchor})
			}
			if p.Below {
				segments = append(segments, Segment{
					Vertex:      Vertex{r, c},
					Orientation: Vertical,
					Anchor:      p.VAnchor})
			}
		}
	}
	return segments
}

// Walls lists placed walls by their anchor post.
func (f *FenceGrid) Walls() []Wall {
	walls := make([]Wall, 0)
	for r := 0; r < VertexSize; r++ {
		for c := 0; c < VertexSize; c++ {
			p := f.Posts[r][c]
			if p.HAnchor {
				walls = append(walls, Wall{Orientation: Horizontal, Anchor: Vertex{r, c}})
			}
			if p.VAnchor {
				walls = append(walls, Wall{Orientation: Vertical, Anchor: Vertex{r, c}})
			}
		}
	}
	return walls
}
