package overlay

import (
	"time"

	"github.com/google/uuid"
)

// List is an ordered render list. Later entries paint over earlier ones.
type List struct {
	shapes []Shape
}

func NewList(shapes ...Shape) *List {
	l := &List{}
	for _, s := range shapes {
		l.Add(s)
	}
	return l
}

// Add appends s and returns its id.
func (l *List) Add(s Shape) uuid.UUID {
	l.shapes = append(l.shapes, s)
	return s.ID()
}

// Remove drops the shape with the given id. It reports whether one was found.
func (l *List) Remove(id uuid.UUID) bool {
	for i, s := range l.shapes {
		if s.ID() == id {
			s.Base().Remove()
			l.shapes = append(l.shapes[:i], l.shapes[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List) Get(id uuid.UUID) (Shape, bool) {
	for _, s := range l.shapes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

func (l *List) Len() int { return len(l.shapes) }

// Shapes returns a copy of the list in paint order.
func (l *List) Shapes() []Shape {
	out := make([]Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

// ApplyRainbow recolors every shape with the rainbow color for now.
func (l *List) ApplyRainbow(now time.Time, frequency float64) {
	clr := Rainbow(now, frequency)
	for _, s := range l.shapes {
		s.Base().SetColor(clr)
	}
}

// DrawAll clears the canvas and paints every visible shape in order.
func (l *List) DrawAll(c Canvas) {
	c.Clear()
	for _, s := range l.shapes {
		s.Draw(c)
	}
}
