package model

import (
	log "github.com/sirupsen/logrus"
)

type playerState struct {
	Pawn   Cell
	Fences int
}

// Game owns the board, the fence grid, both players and the turn marker.
// It is changed only by AttemptMove and AttemptPlaceFence; a rejected command
// leaves it untouched.
type Game struct {
	board   Board
	fences  *FenceGrid
	players [2]playerState
	turn    Player
	status  Status
	winner  Player
}

func NewGame() *Game {
	g := &Game{
		fences: NewFenceGrid(),
		turn:   PlayerA,
		status: IN_PROGRESS,
	}
	for _, p := range []Player{PlayerA, PlayerB} {
		start := Cell{Row: p.StartRow(), Col: Size / 2}
		g.players[p-1] = playerState{Pawn: start, Fences: FencesPerPlayer}
		g.board.Place(p, start)
	}
	return g
}

func (g *Game) Turn() Player {
	return g.turn
}

func (g *Game) Status() Status {
	return g.status
}

// Winner returns NoPlayer while the game is in progress.
func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) PawnPosition(p Player) (Cell, bool) {
	if !p.Valid() {
		return Cell{}, false
	}
	return g.players[p-1].Pawn, true
}

func (g *Game) FencesRemaining(p Player) int {
	if !p.Valid() {
		return 0
	}
	return g.players[p-1].Fences
}

func (g *Game) Occupant(c Cell) (Player, bool) {
	return g.board.Occupant(c)
}

func (g *Game) WallState() []Segment {
	return g.fences.Segments()
}

func (g *Game) Walls() []Wall {
	return g.fences.Walls()
}

func (g *Game) HasWallBetween(a, b Cell) bool {
	return g.fences.HasWallBetween(a, b)
}

// CanPlaceFence is the geometric check only; connectivity is decided when
// the fence is actually attempted.
func (g *Game) CanPlaceFence(o Orientation, v Vertex) bool {
	return g.fences.CanPlace(o, v)
}

// LegalDestinations lists where p could move now. Empty once the game is won.
func (g *Game) LegalDestinations(p Player) []Cell {
	if !p.Valid() || g.status == WON {
		return nil
	}
	return LegalDestinations(g.fences, g.players[p-1].Pawn, g.players[p.Opponent()-1].Pawn)
}

// PathLength is the number of steps p needs to reach its goal row ignoring
// the other pawn.
func (g *Game) PathLength(p Player) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	return PathLength(g.fences, g.players[p-1].Pawn, p.GoalRow())
}

func (g *Game) AttemptMove(p Player, dest Cell) (bool, Reason) {
	if r := g.move(p, dest); r != OK {
		log.WithFields(log.Fields{
			"player": p.Name(),
			"dest":   dest.String(),
			"reason": r.Name(),
		}).Debug("move rejected")
		return false, r
	}
	log.WithFields(log.Fields{
		"player": p.Name(),
		"dest":   dest.String(),
		"status": g.status.Name(),
	}).Debug("move")
	return true, OK
}

func (g *Game) move(p Player, dest Cell) Reason {
	if g.status == WON {
		return GAME_OVER
	}
	if p != g.turn {
		return NOT_YOUR_TURN
	}
	occupant, ok := g.board.Occupant(dest)
	if !ok {
		return OUT_OF_BOUNDS
	}
	if occupant != NoPlayer {
		return OCCUPIED
	}
	me := &g.players[p-1]
	opp := g.players[p.Opponent()-1]
	if r := CheckMove(g.fences, me.Pawn, opp.Pawn, dest); r != OK {
		return r
	}

	g.board.Place(p, dest)
	me.Pawn = dest
	g.turn = p.Opponent()
	if dest.Row == p.GoalRow() {
		g.status = WON
		g.winner = p
	}
	return OK
}

func (g *Game) AttemptPlaceFence(p Player, o Orientation, anchor Vertex) (bool, Reason) {
	if r := g.placeFence(p, o, anchor); r != OK {
		log.WithFields(log.Fields{
			"player": p.Name(),
			"fence":  o.Name() + anchor.String(),
			"reason": r.Name(),
		}).Debug("fence rejected")
		return false, r
	}
	log.WithFields(log.Fields{
		"player": p.Name(),
		"fence":  o.Name() + anchor.String(),
		"left":   g.FencesRemaining(p),
	}).Debug("fence")
	return true, OK
}

func (g *Game) placeFence(p Player, o Orientation, anchor Vertex) Reason {
	if g.status == WON {
		return GAME_OVER
	}
	if p != g.turn {
		return NOT_YOUR_TURN
	}
	me := &g.players[p-1]
	if me.Fences <= 0 {
		return NO_FENCES_LEFT
	}
	if !g.fences.Fits(o, anchor) {
		return OUT_OF_BOUNDS
	}
	if !g.fences.CanPlace(o, anchor) {
		return ILLEGAL_GEOMETRY
	}

	g.fences.Place(o, anchor)
	for _, q := range []Player{p, p.Opponent()} {
		if !HasPath(g.fences, g.players[q-1].Pawn, q.GoalRow()) {
			g.fences.Remove(o, anchor)
			return BREAKS_CONNECTIVITY
		}
	}

	me.Fences--
	g.turn = p.Opponent()
	return OK
}
