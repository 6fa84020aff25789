package model

import "fmt"

// Reason tells why a command was rejected. OK means it was accepted.
type Reason int

const (
	OK Reason = iota
	NOT_YOUR_TURN
	OUT_OF_BOUNDS
	OCCUPIED
	ILLEGAL_GEOMETRY
	BLOCKED_BY_WALL
	NO_FENCES_LEFT
	BREAKS_CONNECTIVITY
	GAME_OVER
)

func (r Reason) Name() string {
	switch r {
	case OK:
		return "OK"
	case NOT_YOUR_TURN:
		return "NOT_YOUR_TURN"
	case OUT_OF_BOUNDS:
		return "OUT_OF_BOUNDS"
	case OCCUPIED:
		return "OCCUPIED"
	case ILLEGAL_GEOMETRY:
		return "ILLEGAL_GEOMETRY"
	case BLOCKED_BY_WALL:
		return "BLOCKED_BY_WALL"
	case NO_FENCES_LEFT:
		return "NO_FENCES_LEFT"
	case BREAKS_CONNECTIVITY:
		return "BREAKS_CONNECTIVITY"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("n/a:%d", r)
	}
}

func (r Reason) String() string {
	return r.Name()
}

type Status int

const (
	IN_PROGRESS Status = iota
	WON
)

func (s Status) Name() string {
	switch s {
	case IN_PROGRESS:
		return "IN_PROGRESS"
	case WON:
		return "WON"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}
