package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	frame     = float32(1.0 / 60)
	slideTime = float32(.25)
	fadeTime  = float32(.6)
)

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start once a finishes and returns the action driving it.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

// updateTweens advances every running tween by one frame.
func (g *Game) updateTweens() {
	for t, a := range g.Tweens {
		curr, finished := t.Update(frame)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// slide moves a pawn sprite between two screen points.
func (g *Game) slide(s *PawnSprite, toX, toY float64) *Action {
	fromX, fromY := s.x, s.y
	s.moving = true
	action := &Action{
		onChange: func(v float32) {
			s.x = fromX + (toX-fromX)*float64(v)
			s.y = fromY + (toY-fromY)*float64(v)
		},
	}
	action.addOnFinish(func() {
		s.x, s.y = toX, toY
		s.moving = false
	})
	g.Tweens[gween.New(0, 1, slideTime, ease.OutCubic)] = action
	return action
}

// fadeInBanner runs after a winning slide.
func (g *Game) fadeInBanner(after *Action) {
	banner := after.next(gween.New(0, 1, fadeTime, ease.InOutQuad))
	banner.onChange = func(v float32) {
		g.bannerAlpha = float64(v)
	}
}
