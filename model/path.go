package model

// PathLength runs a breadth-first search over the open-edge graph from start
// and returns the number of steps to the nearest cell on goalRow.
// Pawns are ignored; only walls close an edge.
func PathLength(f *FenceGrid, start Cell, goalRow int) (int, bool) {
	if !start.OnBoard() {
		return 0, false
	}
	var dist [Size][Size]int
	var visited [Size][Size]bool
	visited[start.Row][start.Col] = true
	queue := []Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.Row == goalRow {
			return dist[current.Row][current.Col], true
		}
		for _, d := range orthoDirs {
			next := current.Add(d)
			if !next.OnBoard() || visited[next.Row][next.Col] {
				continue
			}
			if f.HasWallBetween(current, next) {
				continue
			}
			visited[next.Row][next.Col] = true
			dist[next.Row][next.Col] = dist[current.Row][current.Col] + 1
			queue = append(queue, next)
		}
	}
	return 0, false
}

func HasPath(f *FenceGrid, start Cell, goalRow int) bool {
	_, ok := PathLength(f, start, goalRow)
	return ok
}

// Reachable returns every cell reachable from start, start included.
func Reachable(f *FenceGrid, start Cell) []Cell {
	if !start.OnBoard() {
		return nil
	}
	var visited [Size][Size]bool
	visited[start.Row][start.Col] = true
	cells := []Cell{start}
	for i := 0; i < len(cells); i++ {
		current := cells[i]
		for _, d := range orthoDirs {
			next := current.Add(d)
			if !next.OnBoard() || visited[next.Row][next.Col] || f.HasWallBetween(current, next) {
				continue
			}
			visited[next.Row][next.Col] = true
			cells = append(cells, next)
		}
	}
	return cells
}
