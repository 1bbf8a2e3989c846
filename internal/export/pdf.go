package export

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/iburimskiy/esp-overlay/internal/fonts"
	"github.com/iburimskiy/esp-overlay/internal/geom"
	"github.com/iburimskiy/esp-overlay/internal/overlay"
)

// Drawer paints a whole frame.
type Drawer interface {
	Draw(c overlay.Canvas)
}

// PDFCanvas draws onto gofpdf pages sized to the overlay, one pixel per
// point.
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	fonts  *fonts.Library
	loaded map[string]bool
	dirty  bool
}

func NewPDFCanvas(width, height float64, lib *fonts.Library) *PDFCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	return &PDFCanvas{
		pdf:    pdf,
		fonts:  lib,
		loaded: make(map[string]bool),
	}
}

// Clear starts a fresh page. A page nothing was drawn on is reused.
func (c *PDFCanvas) Clear() {
	if c.dirty {
		c.pdf.AddPage()
		c.dirty = false
	}
}

func (c *PDFCanvas) PageCount() int { return c.pdf.PageCount() }

func (c *PDFCanvas) StrokeLine(from, to geom.Vec2, width float64, clr color.Color) {
	c.setDraw(clr, width)
	c.pdf.Line(from.X, from.Y, to.X, to.Y)
}

func (c *PDFCanvas) FillRect(pos, size geom.Vec2, clr color.Color) {
	c.setFill(clr)
	c.pdf.Rect(pos.X, pos.Y, size.X, size.Y, "F")
}

func (c *PDFCanvas) StrokeRect(pos, size geom.Vec2, width float64, clr color.Color) {
	c.setDraw(clr, width)
	c.pdf.Rect(pos.X, pos.Y, size.X, size.Y, "D")
}

func (c *PDFCanvas) FillPolygon(points []geom.Vec2, clr color.Color) {
	c.setFill(clr)
	c.pdf.Polygon(toPoints(points), "F")
}

func (c *PDFCanvas) StrokePolygon(points []geom.Vec2, width float64, clr color.Color) {
	c.setDraw(clr, width)
	c.pdf.Polygon(toPoints(points), "D")
}

func (c *PDFCanvas) FillText(s string, at geom.Vec2, font overlay.FontSpec, clr color.Color) {
	c.text(s, at, font, clr, 0)
}

// StrokeText approximates an outline by stamping the text around the anchor.
func (c *PDFCanvas) StrokeText(s string, at geom.Vec2, font overlay.FontSpec, width float64, clr color.Color) {
	c.text(s, at, font, clr, width/2)
}

func (c *PDFCanvas) text(s string, at geom.Vec2, font overlay.FontSpec, clr color.Color, spread float64) {
	c.useFont(font)
	c.setText(clr)

	_, unitSize := c.pdf.GetFontSize()
	x := at.X
	if font.Centered {
		x -= c.pdf.GetStringWidth(s) / 2
	}
	// baseline sits roughly a third of the em below the middle
	y := at.Y + unitSize*0.35

	if spread == 0 {
		c.pdf.Text(x, y, s)
		return
	}
	for _, o := range outlineOffsets {
		c.pdf.Text(x+o.X*spread, y+o.Y*spread, s)
	}
}

var outlineOffsets = []geom.Vec2{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

func (c *PDFCanvas) useFont(spec overlay.FontSpec) {
	name, ttf := c.fonts.Resolve(spec.Name)
	if !c.loaded[name] {
		c.pdf.AddUTF8FontFromBytes(name, "", ttf)
		c.loaded[name] = true
	}
	c.pdf.SetFont(name, "", spec.Size)
}

func (c *PDFCanvas) setDraw(clr color.Color, width float64) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	c.pdf.SetAlpha(float64(n.A)/255, "Normal")
	c.pdf.SetLineWidth(width)
	c.dirty = true
}

func (c *PDFCanvas) setFill(clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	c.pdf.SetAlpha(float64(n.A)/255, "Normal")
	c.dirty = true
}

func (c *PDFCanvas) setText(clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.pdf.SetTextColor(int(n.R), int(n.G), int(n.B))
	c.pdf.SetAlpha(float64(n.A)/255, "Normal")
	c.dirty = true
}

func toPoints(points []geom.Vec2) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(points))
	for i, p := range points {
		out[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	return out
}

// Write emits the document.
func (c *PDFCanvas) Write(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// WriteFile renders one frame of d into a PDF at path.
func WriteFile(path string, width, height float64, lib *fonts.Library, d Drawer) error {
	c := NewPDFCanvas(width, height, lib)
	d.Draw(c)
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}
	return nil
}

// WithPDFExt appends .pdf unless name already ends with it.
func WithPDFExt(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return name
	}
	return name + ".pdf"
}
