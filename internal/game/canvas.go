package game

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/esp-overlay/internal/fonts"
	"github.com/iburimskiy/esp-overlay/internal/geom"
	"github.com/iburimskiy/esp-overlay/internal/overlay"
)

var whiteSubImage *ebiten.Image

// solidSource is the 1x1 white texture triangles are filled from.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenCanvas adapts an ebiten image to overlay.Canvas.
type screenCanvas struct {
	dst     *ebiten.Image
	fonts   *fonts.Library
	sources map[string]*text.GoTextFaceSource
	lastErr error
}

func newScreenCanvas(lib *fonts.Library) *screenCanvas {
	return &screenCanvas{
		fonts:   lib,
		sources: make(map[string]*text.GoTextFaceSource),
	}
}

// target points the canvas at the image for the current frame.
func (c *screenCanvas) target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *screenCanvas) Clear() {
	c.dst.Clear()
}

func (c *screenCanvas) StrokeLine(from, to geom.Vec2, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

func (c *screenCanvas) FillRect(pos, size geom.Vec2, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), clr, true)
}

func (c *screenCanvas) StrokeRect(pos, size geom.Vec2, width float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), float32(width), clr, true)
}

func (c *screenCanvas) FillPolygon(points []geom.Vec2, clr color.Color) {
	path := polygonPath(points)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawTriangles(vs, is, clr)
}

func (c *screenCanvas) StrokePolygon(points []geom.Vec2, width float64, clr color.Color) {
	path := polygonPath(points)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	c.drawTriangles(vs, is, clr)
}

func (c *screenCanvas) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(n.R) / 0xff
		vs[i].ColorG = float32(n.G) / 0xff
		vs[i].ColorB = float32(n.B) / 0xff
		vs[i].ColorA = float32(n.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	c.dst.DrawTriangles(vs, is, solidSource(), op)
}

func polygonPath(points []geom.Vec2) *vector.Path {
	var path vector.Path
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

func (c *screenCanvas) FillText(s string, at geom.Vec2, font overlay.FontSpec, clr color.Color) {
	face := c.face(font)
	if face == nil {
		return
	}
	c.drawText(s, at, face, font.Centered, clr)
}

// StrokeText has no native counterpart in ebiten, so the text is stamped in
// a ring around the anchor.
func (c *screenCanvas) StrokeText(s string, at geom.Vec2, font overlay.FontSpec, width float64, clr color.Color) {
	face := c.face(font)
	if face == nil {
		return
	}
	spread := width / 2
	for _, o := range outlineOffsets {
		c.drawText(s, at.Add(o.Scale(spread)), face, font.Centered, clr)
	}
}

var outlineOffsets = []geom.Vec2{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

func (c *screenCanvas) drawText(s string, at geom.Vec2, face text.Face, centered bool, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, face, op)
}

func (c *screenCanvas) face(spec overlay.FontSpec) text.Face {
	name, ttf := c.fonts.Resolve(spec.Name)
	src, ok := c.sources[name]
	if !ok {
		var err error
		src, err = text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			c.lastErr = err
			return nil
		}
		c.sources[name] = src
	}
	return &text.GoTextFace{Source: src, Size: spec.Size}
}
