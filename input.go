package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
)

// StrokeSource represents a input device to provide taps.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press until release. A press that wanders further than
// slop pixels is a drag, not a tap, and is dropped.
type Stroke struct {
	source StrokeSource

	initX, initY       int
	currentX, currentY int

	released  bool
	cancelled bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update(slop int) {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
	dx, dy := s.currentX-s.initX, s.currentY-s.initY
	if dx*dx+dy*dy > slop*slop {
		s.cancelled = true
		s.released = true
	}
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

// Tap reports where a completed tap landed.
func (s *Stroke) Tap() (int, int, bool) {
	if !s.released || s.cancelled {
		return 0, 0, false
	}
	return s.initX, s.initY, true
}
