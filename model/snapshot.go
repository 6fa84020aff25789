package model

// Snapshot is a copy of everything the presentation layer draws.
type Snapshot struct {
	Turn         Player
	Status       Status
	Winner       Player
	Players      [2]PlayerInfo
	Segments     []Segment
	Destinations []Cell
}

type PlayerInfo struct {
	Id     Player
	Pawn   Cell
	Fences int
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Turn:         g.turn,
		Status:       g.status,
		Winner:       g.winner,
		Segments:     g.fences.Segments(),
		Destinations: g.LegalDestinations(g.turn),
	}
	for i, ps := range g.players {
		s.Players[i] = PlayerInfo{Id: Player(i + 1), Pawn: ps.Pawn, Fences: ps.Fences}
	}
	return s
}

func (s Snapshot) Player(p Player) PlayerInfo {
	if !p.Valid() {
		return PlayerInfo{}
	}
	return s.Players[p-1]
}
