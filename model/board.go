package model

// Board holds which pawn, if any, sits on each cell. Indexed [row][col].
type Board struct {
	Cells [Size][Size]Player
}

func (b *Board) Occupant(c Cell) (Player, bool) {
	if !c.OnBoard() {
		return NoPlayer, false
	}
	return b.Cells[c.Row][c.Col], true
}

// Place moves p onto c and clears the cell p stood on before.
// No legality checks.
func (b *Board) Place(p Player, c Cell) {
	if !p.Valid() || !c.OnBoard() {
		return
	}
	for r := range b.Cells {
		for col := range b.Cells[r] {
			if b.Cells[r][col] == p {
				b.Cells[r][col] = NoPlayer
			}
		}
	}
	b.Cells[c.Row][c.Col] = p
}

// Find returns the cell p stands on.
func (b *Board) Find(p Player) (Cell, bool) {
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == p {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}
