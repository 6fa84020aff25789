package main

import (
	"github.com/hajimehoshi/ebiten"

	"github.com/zucenko/quoridor/model"
)

// PawnSprite is the on-screen pawn; x and y are its centre and trail the
// model position while a slide runs.
type PawnSprite struct {
	image    *ebiten.Image
	player   model.Player
	color    GameColor
	x, y     float64
	radius   float64
	selected bool
	moving   bool
}

func (s *PawnSprite) Draw(screen *ebiten.Image) {
	w, _ := s.image.Size()
	scale := 2 * s.radius / float64(w)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(s.x-s.radius, s.y-s.radius)
	op.ColorM.Scale(s.color.r, s.color.g, s.color.b, 1)
	if s.selected {
		op.ColorM.Translate(.25, .25, .25, 0)
	}
	screen.DrawImage(s.image, op)
}
