package overlay

import (
	"math"

	"github.com/iburimskiy/esp-overlay/internal/fonts"
	"github.com/iburimskiy/esp-overlay/internal/geom"
)

// Line is a stroked segment.
type Line struct {
	Drawing
	From      geom.Vec2
	To        geom.Vec2
	Thickness float64
}

func NewLine() *Line {
	return &Line{
		Drawing:   newDrawing(KindLine),
		Thickness: 1,
	}
}

func (l *Line) Draw(c Canvas) {
	if !l.Visible {
		return
	}
	c.StrokeLine(l.From, l.To, l.Thickness, l.Color.NRGBA(l.Transparency))
}

// Square is an axis-aligned rectangle, despite the name.
type Square struct {
	Drawing
	Position  geom.Vec2
	Size      geom.Vec2
	Thickness float64
	Filled    bool
}

func NewSquare() *Square {
	return &Square{
		Drawing:   newDrawing(KindSquare),
		Size:      geom.V(50, 50),
		Thickness: 1,
	}
}

// BottomCenter is where tracers attach.
func (s *Square) BottomCenter() geom.Vec2 {
	return geom.V(s.Position.X+s.Size.X/2, s.Position.Y+s.Size.Y)
}

func (s *Square) Draw(c Canvas) {
	if !s.Visible {
		return
	}
	clr := s.Color.NRGBA(s.Transparency)
	if s.Filled {
		c.FillRect(s.Position, s.Size, clr)
		return
	}
	c.StrokeRect(s.Position, s.Size, s.Thickness, clr)
}

// Circle is drawn as a regular polygon with NumSides vertices.
type Circle struct {
	Drawing
	Position  geom.Vec2
	Radius    float64
	NumSides  int
	Thickness float64
	Filled    bool
}

func NewCircle() *Circle {
	return &Circle{
		Drawing:   newDrawing(KindCircle),
		Position:  geom.V(150, 150),
		Radius:    50,
		NumSides:  32,
		Thickness: 1,
	}
}

// Vertices returns the polygon approximation, starting at angle 0 and going
// clockwise in screen space.
func (ci *Circle) Vertices() []geom.Vec2 {
	if ci.NumSides < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(ci.NumSides)
	pts := make([]geom.Vec2, ci.NumSides)
	for i := range pts {
		angle := float64(i) * step
		pts[i] = geom.V(
			ci.Position.X+ci.Radius*math.Cos(angle),
			ci.Position.Y+ci.Radius*math.Sin(angle),
		)
	}
	return pts
}

func (ci *Circle) Draw(c Canvas) {
	if !ci.Visible {
		return
	}
	pts := ci.Vertices()
	if pts == nil {
		return
	}
	clr := ci.Color.NRGBA(ci.Transparency)
	if ci.Filled {
		c.FillPolygon(pts, clr)
		return
	}
	c.StrokePolygon(pts, ci.Thickness, clr)
}

const textOutlineWidth = 2

// Text is a label anchored at Position.
type Text struct {
	Drawing
	Position     geom.Vec2
	Text         string
	Size         float64
	Center       bool
	Outline      bool
	OutlineColor Color3
	Font         string
}

func NewText() *Text {
	return &Text{
		Drawing:      newDrawing(KindText),
		Size:         16,
		Center:       true,
		OutlineColor: Black,
		Font:         fonts.DefaultFont,
	}
}

func (t *Text) Draw(c Canvas) {
	if !t.Visible {
		return
	}
	spec := FontSpec{Name: t.Font, Size: t.Size, Centered: t.Center}
	if t.Outline {
		c.StrokeText(t.Text, t.Position, spec, textOutlineWidth, t.OutlineColor.NRGBA(t.Transparency))
	}
	c.FillText(t.Text, t.Position, spec, t.Color.NRGBA(t.Transparency))
}
