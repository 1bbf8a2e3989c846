package overlay

import (
	"image/color"
	"math"
	"time"
)

// Color3 is an opaque RGB triple. Transparency lives on the shape.
type Color3 struct {
	R, G, B uint8
}

var (
	White = Color3{255, 255, 255}
	Black = Color3{0, 0, 0}
	Blue  = Color3{0, 0, 255}
)

// NRGBA pairs the color with a transparency in [0,1], 0 being opaque.
func (c Color3) NRGBA(transparency float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(1-transparency) * 255))}
}

const DefaultRainbowFrequency = 3.0

// Rainbow returns the cycling color at time t. Each channel is a sine wave
// around 128 with amplitude 127, phase-shifted by 0, 2 and 4 radians.
func Rainbow(t time.Time, frequency float64) Color3 {
	s := float64(t.UnixNano()) / float64(time.Second)
	return Color3{
		R: rainbowChannel(frequency*s + 0),
		G: rainbowChannel(frequency*s + 2),
		B: rainbowChannel(frequency*s + 4),
	}
}

func rainbowChannel(x float64) uint8 {
	v := math.Round(math.Sin(x)*127 + 128)
	if math.IsNaN(v) {
		return 128
	}
	return uint8(math.Max(0, math.Min(255, v)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
