package overlay

import (
	"image/color"

	"github.com/iburimskiy/esp-overlay/internal/geom"
)

// FontSpec selects a face for text operations.
type FontSpec struct {
	Name     string
	Size     float64
	Centered bool
}

// Canvas is a 2D drawing context. Coordinates are pixels with the origin at
// the top-left corner.
type Canvas interface {
	Clear()

	StrokeLine(from, to geom.Vec2, width float64, clr color.Color)
	FillRect(pos, size geom.Vec2, clr color.Color)
	StrokeRect(pos, size geom.Vec2, width float64, clr color.Color)
	FillPolygon(points []geom.Vec2, clr color.Color)
	StrokePolygon(points []geom.Vec2, width float64, clr color.Color)

	// Text is anchored at its vertical middle.
	FillText(s string, at geom.Vec2, font FontSpec, clr color.Color)
	StrokeText(s string, at geom.Vec2, font FontSpec, width float64, clr color.Color)
}
