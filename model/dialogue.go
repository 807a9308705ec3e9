package model

import (
	"fmt"
	"math"
)

// Side is the horizontal placement of a dialogue line.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{0xff, 0xff, 0xff}
	Black = Color{0, 0, 0}
)

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Mix blends c toward target channel by channel; weight 0 keeps c and
// weight 1 yields target.
func (c Color) Mix(target Color, weight float64) Color {
	mix := func(a, b uint8) uint8 {
		v := float64(a)*(1-weight) + float64(b)*weight
		return uint8(math.Max(0, math.Min(255, math.Round(v))))
	}
	return Color{
		R: mix(c.R, target.R),
		G: mix(c.G, target.G),
		B: mix(c.B, target.B),
	}
}

// Palette holds the presentation colors derived from one speaker name.
type Palette struct {
	Base       Color
	Background Color
	Border     Color
	Label      Color
}

// DialogueLine is one speaker/replica exchange.
type DialogueLine struct {
	Speaker string
	Replica string
	Side    Side
	Palette Palette
}
