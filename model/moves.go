package model

// CheckMove classifies dest-from and validates it against the walls and the
// opponent pawn. Board occupancy beyond the opponent is the caller's concern.
func CheckMove(f *FenceGrid, from, opp, dest Cell) Reason {
	if !dest.OnBoard() {
		return OUT_OF_BOUNDS
	}
	if dest == opp {
		return OCCUPIED
	}
	d := dest.Sub(from)
	switch {
	case isOrtho(d):
		if f.HasWallBetween(from, dest) {
			return BLOCKED_BY_WALL
		}
		return OK
	case isJump(d):
		if !nextTo(from, opp, dest) {
			return ILLEGAL_GEOMETRY
		}
		return hops(f, from, opp, dest)
	case isDiag(d):
		if !nextTo(from, opp, dest) {
			return ILLEGAL_GEOMETRY
		}
		// the straight jump has to be impossible
		if !wallBehind(f, from, opp) {
			return ILLEGAL_GEOMETRY
		}
		return hops(f, from, opp, dest)
	}
	return ILLEGAL_GEOMETRY
}

// LegalDestinations tries the 4 steps, 4 jumps and 4 diagonals in that order.
func LegalDestinations(f *FenceGrid, from, opp Cell) []Cell {
	dests := make([]Cell, 0, 4)
	for _, dirs := range [][4]Cell{orthoDirs, jumpDirs, diagDirs} {
		for _, d := range dirs {
			dest := from.Add(d)
			if CheckMove(f, from, opp, dest) == OK {
				dests = append(dests, dest)
			}
		}
	}
	return dests
}

// nextTo: mover touches the opponent and the opponent touches dest.
func nextTo(from, opp, dest Cell) bool {
	return isOrtho(opp.Sub(from)) && isOrtho(dest.Sub(opp))
}

func hops(f *FenceGrid, from, opp, dest Cell) Reason {
	if f.HasWallBetween(from, opp) {
		return BLOCKED_BY_WALL
	}
	if f.HasWallBetween(opp, dest) {
		return BLOCKED_BY_WALL
	}
	return OK
}

// wallBehind reports a wall or the board edge on the far side of opp,
// looking from from.
func wallBehind(f *FenceGrid, from, opp Cell) bool {
	d := opp.Sub(from)
	if !isOrtho(d) {
		return false
	}
	return f.HasWallBetween(opp, opp.Add(d))
}
