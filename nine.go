package main

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten"

	"github.com/zucenko/quoridor/layout"
)

// Nine draws an image stretched into a rectangle while keeping its corners
// unscaled: corners are copied, edges stretch along one axis, the centre
// along both.
type Nine struct {
	image      *ebiten.Image
	corner     int
	Scale      float64
	R, G, B, A float64
}

func NewNine(img *ebiten.Image, corner int, c GameColor) *Nine {
	return &Nine{
		image:  img,
		corner: corner,
		Scale:  1,
		R:      c.r, G: c.g, B: c.b, A: 1,
	}
}

func (n *Nine) SetColor(c GameColor, alpha float64) {
	n.R, n.G, n.B, n.A = c.r, c.g, c.b, alpha
}

func (n *Nine) Draw(screen *ebiten.Image, r layout.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	w, h := n.image.Size()
	// corners shrink when the target is thinner than two of them
	cs := math.Min(float64(n.corner)*n.Scale, math.Min(r.W, r.H)/2)

	sx := [4]int{0, n.corner, w - n.corner, w}
	sy := [4]int{0, n.corner, h - n.corner, h}
	dx := [4]float64{r.X, r.X + cs, r.X + r.W - cs, r.X + r.W}
	dy := [4]float64{r.Y, r.Y + cs, r.Y + r.H - cs, r.Y + r.H}

	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			srcW, srcH := sx[i+1]-sx[i], sy[j+1]-sy[j]
			dstW, dstH := dx[i+1]-dx[i], dy[j+1]-dy[j]
			if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dstW/float64(srcW), dstH/float64(srcH))
			op.GeoM.Translate(dx[i], dy[j])
			op.ColorM.Scale(n.R, n.G, n.B, n.A)
			sub := n.image.SubImage(image.Rect(sx[i], sy[j], sx[i+1], sy[j+1])).(*ebiten.Image)
			screen.DrawImage(sub, op)
		}
	}
}
