package geom

import "math"

// Vec2 is a point in canvas pixel space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Intersect clips the segment start→end against a circle.
//
// The segment is parametrised as start + t*(end-start) and substituted into
// the circle equation. When the quadratic has real roots, the resulting point
// nearer to start is returned along with true. Otherwise end comes back
// unchanged and false.
func Intersect(start, end, center Vec2, radius float64) (Vec2, bool) {
	d := end.Sub(start)
	f := start.Sub(center)

	a := d.Dot(d)
	b := 2 * f.Dot(d)
	c := f.Dot(f) - radius*radius

	if a == 0 {
		return end, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return end, false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	p1 := start.Add(d.Scale(t1))
	p2 := start.Add(d.Scale(t2))

	if Distance(start, p1) < Distance(start, p2) {
		return p1, true
	}
	return p2, true
}

// CircleIntersectsRect reports whether a circle overlaps the axis-aligned
// rectangle at pos with the given size.
func CircleIntersectsRect(center Vec2, radius float64, pos, size Vec2) bool {
	nx := clamp(center.X, pos.X, pos.X+size.X)
	ny := clamp(center.Y, pos.Y, pos.Y+size.Y)
	dx, dy := center.X-nx, center.Y-ny
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
