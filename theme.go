package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/quoridor/model"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

// GameColor scales white sprites through ColorM.
type GameColor struct {
	r, g, b float64
}

func (c GameColor) RGBA(alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(c.r * alpha * 255),
		G: uint8(c.g * alpha * 255),
		B: uint8(c.b * alpha * 255),
		A: uint8(alpha * 255),
	}
}

var (
	COLOR_TILE    = HexToF32(0xf7e4b7)
	COLOR_BASE    = HexToF32(0xdecaa2)
	COLOR_FENCE   = HexToF32(0x5e3e2d)
	COLOR_DIVIDER = HexToF32(0x947e73)
	COLOR_DEST    = HexToF32(0x969696)
	COLOR_TEXT    = HexToF32(0x000000)
	COLOR_WHITE   = HexToF32(0xffffff)
)

var PLAYER_COLORS = map[model.Player]GameColor{
	model.PlayerA: HexToF32(0xc75a24),
	model.PlayerB: HexToF32(0x79b599),
}

func loadFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %v", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// newDiscImage draws a white filled circle of the given radius.
func newDiscImage(radius int) (*ebiten.Image, error) {
	d := 2 * radius
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x-radius) + .5
			dy := float64(y-radius) + .5
			if dx*dx+dy*dy <= float64(radius*radius) {
				img.Set(x, y, color.White)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterDefault)
}

// newRoundedImage draws a white square with rounded corners, the source of
// the nine-slice used for fences and the status panel.
func newRoundedImage(size, radius int) (*ebiten.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := x, y
			if cx < radius {
				cx = radius
			} else if cx >= size-radius {
				cx = size - radius - 1
			}
			if cy < radius {
				cy = radius
			} else if cy >= size-radius {
				cy = size - radius - 1
			}
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= float64(radius*radius) {
				img.Set(x, y, color.White)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterDefault)
}
