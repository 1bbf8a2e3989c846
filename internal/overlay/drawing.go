package overlay

import "github.com/google/uuid"

// Kind tags the shape variant.
type Kind string

const (
	KindLine   Kind = "Line"
	KindSquare Kind = "Square"
	KindCircle Kind = "Circle"
	KindText   Kind = "Text"
)

// Shape is anything that can paint itself onto a Canvas.
type Shape interface {
	ID() uuid.UUID
	Kind() Kind
	Base() *Drawing
	Draw(c Canvas)
}

// Drawing holds the styling every shape shares.
type Drawing struct {
	id           uuid.UUID
	kind         Kind
	Visible      bool
	Color        Color3
	Transparency float64
}

func newDrawing(kind Kind) Drawing {
	return Drawing{
		id:    uuid.New(),
		kind:  kind,
		Color: White,
	}
}

func (d *Drawing) ID() uuid.UUID { return d.id }
func (d *Drawing) Kind() Kind { return d.kind }
func (d *Drawing) Base() *Drawing { return d }
func (d *Drawing) SetColor(c Color3) { d.Color = c }

// Remove hides the shape and drops its color. The next redraw clears it off
// the canvas.
func (d *Drawing) Remove() {
	d.Visible = false
	d.Color = Color3{}
}
