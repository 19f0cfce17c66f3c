package render

import (
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the disk, in pixels
const canvasPadding = 20

// Canvas rasterizes submitted polylines onto a square image centered on a
// disk of the given radius. The origin is at the center with y pointing up.
type Canvas struct {
	context    *gg.Context
	diskRadius float64
	submitted  int
}

func NewCanvas(size int, diskRadius float64) *Canvas {
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	// Move the origin to the center and flip so y points up
	scale := (float64(size)/2 - canvasPadding) / diskRadius
	c.Translate(float64(size)/2, float64(size)/2)
	c.Scale(scale, -scale)

	return &Canvas{context: c, diskRadius: diskRadius}
}

// DrawBoundary outlines the circle at infinity.
func (c *Canvas) DrawBoundary() {
	c.context.NewSubPath()
	c.context.DrawCircle(0, 0, c.diskRadius)
	c.context.SetColor(BoundaryStyle.Stroke)
	c.context.SetLineWidth(BoundaryStyle.StrokeWidth)
	c.context.Stroke()
}

func (c *Canvas) Submit(polyline []r2.Point, style Style) error {
	if len(polyline) < 2 {
		return errors.Wrapf(ErrShortPolyline, "got %d", len(polyline))
	}

	c.context.NewSubPath()
	c.context.MoveTo(polyline[0].X, polyline[0].Y)
	for _, p := range polyline[1:] {
		c.context.LineTo(p.X, p.Y)
	}
	if polyline[0] == polyline[len(polyline)-1] {
		c.context.ClosePath()
	}

	switch {
	case style.Fill != nil && style.Stroke != nil:
		c.context.SetColor(style.Fill)
		c.context.FillPreserve()
		c.stroke(style)
	case style.Fill != nil:
		c.context.SetColor(style.Fill)
		c.context.Fill()
	case style.Stroke != nil:
		c.stroke(style)
	default:
		c.context.ClearPath()
	}
	c.submitted++
	return nil
}

func (c *Canvas) stroke(style Style) {
	c.context.SetColor(style.Stroke)
	c.context.SetLineWidth(style.StrokeWidth)
	c.context.Stroke()
}

// How many polylines have been drawn.
func (c *Canvas) Submitted() int {
	return c.submitted
}

func (c *Canvas) Image() image.Image {
	return c.context.Image()
}

func (c *Canvas) WritePNG(w io.Writer) error {
	return c.context.EncodePNG(w)
}

// Preview prints the canvas to a terminal that understands the iTerm inline
// image protocol.
func (c *Canvas) Preview(w io.Writer) error {
	f, err := os.CreateTemp("", "poincare-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := c.WritePNG(f); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing preview")
	}
	return imgcat.CatFile(f.Name(), w)
}
