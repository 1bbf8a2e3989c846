package scene

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/esp-overlay/internal/geom"
	"github.com/iburimskiy/esp-overlay/internal/overlay"
)

type opCanvas struct {
	ops []string
}

func (c *opCanvas) Clear() { c.ops = append(c.ops, "clear") }
func (c *opCanvas) StrokeLine(_, _ geom.Vec2, _ float64, _ color.Color) {
	c.ops = append(c.ops, "line")
}
func (c *opCanvas) FillRect(_, _ geom.Vec2, _ color.Color) { c.ops = append(c.ops, "fillRect") }
func (c *opCanvas) StrokeRect(_, _ geom.Vec2, _ float64, _ color.Color) {
	c.ops = append(c.ops, "strokeRect")
}
func (c *opCanvas) FillPolygon(_ []geom.Vec2, _ color.Color) { c.ops = append(c.ops, "fillPolygon") }
func (c *opCanvas) StrokePolygon(_ []geom.Vec2, _ float64, _ color.Color) {
	c.ops = append(c.ops, "strokePolygon")
}
func (c *opCanvas) FillText(s string, _ geom.Vec2, _ overlay.FontSpec, _ color.Color) {
	c.ops = append(c.ops, "text:"+s)
}
func (c *opCanvas) StrokeText(s string, _ geom.Vec2, _ overlay.FontSpec, _ float64, _ color.Color) {
	c.ops = append(c.ops, "outline:"+s)
}

func TestNewLayout(t *testing.T) {
	s := New(600, 400)

	assert.Equal(t, geom.V(200, 50), s.Box.Position)
	assert.Equal(t, geom.V(300, 150), s.FOV.Position)
	assert.Equal(t, 13, s.FOV.NumSides)
	assert.Equal(t, 0.3, s.FOV.Transparency)
	assert.True(t, s.Box.Filled)
	assert.Equal(t, 5, s.List().Len())
	assert.True(t, s.Locked(), "FOV starts inside the box")
}

func TestDrawOrder(t *testing.T) {
	s := New(600, 400)
	c := &opCanvas{}
	s.Draw(c)

	assert.Equal(t, []string{
		"clear",
		"line",
		"strokePolygon",
		"fillRect",
		"text:arskware.scripts",
		"text:69 HP | 420 Studs",
	}, c.ops)
}

var epoch = time.Unix(0, 0)

func TestPointerMoveClipsAgainstPreviousFOV(t *testing.T) {
	s := New(600, 400)
	s.Rainbow = false

	// from (0,0) toward (300,20) misses the FOV at (300,150): end unchanged
	s.PointerMove(geom.V(300, 20), epoch)
	assert.Equal(t, geom.V(300, 20), s.Tracer.To)
	assert.Equal(t, geom.V(300, 350), s.Tracer.From)
	assert.Equal(t, geom.V(300, 20), s.FOV.Position)
	assert.Equal(t, geom.V(300, 260), s.Name.Position)
	assert.Equal(t, geom.V(300, 245), s.Info.Position)

	// the next clip uses the FOV left at (300,20) and stops on its lower edge
	s.PointerMove(geom.V(300, 10), epoch)
	assert.InDelta(t, 300, s.Tracer.To.X, 1e-9)
	assert.InDelta(t, 50, s.Tracer.To.Y, 1e-9)
	assert.Equal(t, geom.V(300, 10), s.FOV.Position)
}

func TestPointerMoveSequence(t *testing.T) {
	s := New(600, 400)

	s.PointerMove(geom.V(500, 50), epoch)
	assert.Equal(t, geom.V(500, 50), s.Tracer.To, "first move starts at the origin and misses")

	s.PointerMove(geom.V(100, 60), epoch)
	assert.Equal(t, geom.V(100, 60), s.Tracer.To, "FOV at (500,50) is off the new segment")
	assert.Equal(t, geom.V(100, 60), s.FOV.Position)
}

func TestPointerMoveMatchesIntersect(t *testing.T) {
	s := New(600, 400)
	s.PointerMove(geom.V(350, 80), epoch)

	from, fov := s.Tracer.From, s.FOV.Position
	p := geom.V(340, 60)
	want, _ := geom.Intersect(from, p, fov, s.FOV.Radius)

	s.PointerMove(p, epoch)
	assert.Equal(t, want, s.Tracer.To)
}

func TestPointerMoveReportsLockAcquired(t *testing.T) {
	s := New(600, 400)
	require.True(t, s.Locked())

	assert.False(t, s.PointerMove(geom.V(20, 20), epoch), "leaving the box")
	assert.False(t, s.Locked())

	assert.False(t, s.PointerMove(geom.V(40, 40), epoch), "still outside")

	assert.True(t, s.PointerMove(geom.V(190, 200), epoch), "edge within radius")
	assert.True(t, s.Locked())

	assert.False(t, s.PointerMove(geom.V(300, 200), epoch), "already locked")
}

func TestPointerMoveAppliesRainbow(t *testing.T) {
	s := New(600, 400)
	now := time.Unix(99, 0)

	s.PointerMove(geom.V(10, 10), now)

	want := overlay.Rainbow(now, overlay.DefaultRainbowFrequency)
	for _, sh := range s.List().Shapes() {
		assert.Equal(t, want, sh.Base().Color)
	}
}

func TestToggleLabels(t *testing.T) {
	s := New(600, 400)
	require.True(t, s.LabelsShown())

	assert.False(t, s.ToggleLabels())
	assert.False(t, s.LabelsShown())
	assert.Equal(t, 3, s.List().Len())

	c := &opCanvas{}
	s.Draw(c)
	assert.Equal(t, []string{"clear", "line", "strokePolygon", "fillRect"}, c.ops)

	assert.True(t, s.ToggleLabels())
	assert.Equal(t, 5, s.List().Len())
	assert.True(t, s.Name.Visible)
	assert.Equal(t, overlay.Blue, s.Info.Color)
}

func TestTickAppliesRainbow(t *testing.T) {
	s := New(600, 400)
	now := time.Unix(1234, 500_000_000)

	s.Tick(now)

	want := overlay.Rainbow(now, overlay.DefaultRainbowFrequency)
	for _, sh := range s.List().Shapes() {
		assert.Equal(t, want, sh.Base().Color)
	}
}

func TestTickWithoutRainbowKeepsColors(t *testing.T) {
	s := New(600, 400)
	assert.False(t, s.ToggleRainbow())

	s.Tick(time.Unix(1234, 0))

	for _, sh := range s.List().Shapes() {
		assert.Equal(t, overlay.Blue, sh.Base().Color)
	}
}
