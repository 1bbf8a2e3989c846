package scene

import (
	"time"

	"github.com/iburimskiy/esp-overlay/internal/geom"
	"github.com/iburimskiy/esp-overlay/internal/overlay"
)

const (
	nameLabelY = 260
	infoLabelY = 245
)

// Scene is the ESP demo: a target box with a tracer from its bottom edge to
// an FOV circle that follows the pointer, plus two labels.
type Scene struct {
	Tracer *overlay.Line
	FOV    *overlay.Circle
	Box    *overlay.Square
	Name   *overlay.Text
	Info   *overlay.Text

	Rainbow   bool
	Frequency float64

	list   *overlay.List
	locked bool
}

// New lays out the scene for a canvas of the given size.
func New(width, height float64) *Scene {
	tracer := overlay.NewLine()
	tracer.Visible = true
	tracer.Color = overlay.Blue
	tracer.Thickness = 1

	fov := overlay.NewCircle()
	fov.Visible = true
	fov.Color = overlay.Blue
	fov.Thickness = 2
	fov.Transparency = 0.3
	fov.Radius = 30
	fov.NumSides = 13
	fov.Position = geom.V(300, 150)

	box := overlay.NewSquare()
	box.Visible = true
	box.Color = overlay.Blue
	box.Size = geom.V(200, 300)
	box.Position = geom.V((width-box.Size.X)/2, (height-box.Size.Y)/2)
	box.Filled = true

	name := overlay.NewText()
	name.Visible = true
	name.Text = "arskware.scripts"
	name.Position = geom.V(100, 100)
	name.Size = 9
	name.Color = overlay.Blue

	info := overlay.NewText()
	info.Visible = true
	info.Text = "69 HP | 420 Studs"
	info.Position = geom.V(100, 100)
	info.Size = 7
	info.Color = overlay.Blue

	s := &Scene{
		Tracer:    tracer,
		FOV:       fov,
		Box:       box,
		Name:      name,
		Info:      info,
		Rainbow:   true,
		Frequency: overlay.DefaultRainbowFrequency,
		list:      overlay.NewList(tracer, fov, box, name, info),
	}
	s.locked = s.overlapping()
	return s
}

// List is the render list in paint order.
func (s *Scene) List() *overlay.List { return s.list }

// Locked reports whether the FOV circle currently overlaps the box.
func (s *Scene) Locked() bool { return s.locked }

// PointerMove repositions the scene for a pointer at p. The tracer is clipped
// against the FOV circle where it was before this move, then everything
// follows the pointer. It returns true when the FOV circle has just started
// overlapping the box.
func (s *Scene) PointerMove(p geom.Vec2, now time.Time) bool {
	s.recolor(now)

	bottom := s.Box.BottomCenter()
	s.Tracer.To, _ = geom.Intersect(s.Tracer.From, p, s.FOV.Position, s.FOV.Radius)
	s.Tracer.From = bottom
	s.FOV.Position = p
	s.Name.Position = geom.V(bottom.X, nameLabelY)
	s.Info.Position = geom.V(bottom.X, infoLabelY)

	was := s.locked
	s.locked = s.overlapping()
	return s.locked && !was
}

// Tick advances the timer-driven effects.
func (s *Scene) Tick(now time.Time) {
	s.recolor(now)
}

func (s *Scene) recolor(now time.Time) {
	if s.Rainbow {
		s.list.ApplyRainbow(now, s.Frequency)
	}
}

func (s *Scene) ToggleRainbow() bool {
	s.Rainbow = !s.Rainbow
	return s.Rainbow
}

// LabelsShown reports whether the name and info labels are in the render list.
func (s *Scene) LabelsShown() bool {
	_, ok := s.list.Get(s.Name.ID())
	return ok
}

// ToggleLabels takes the labels out of the render list or puts them back on
// top. It returns the new state.
func (s *Scene) ToggleLabels() bool {
	if s.LabelsShown() {
		s.list.Remove(s.Name.ID())
		s.list.Remove(s.Info.ID())
		return false
	}
	for _, label := range []*overlay.Text{s.Name, s.Info} {
		label.Visible = true
		label.Color = s.Box.Color
		s.list.Add(label)
	}
	return true
}

func (s *Scene) Draw(c overlay.Canvas) {
	s.list.DrawAll(c)
}

func (s *Scene) overlapping() bool {
	return geom.CircleIntersectsRect(s.FOV.Position, s.FOV.Radius, s.Box.Position, s.Box.Size)
}
