// Package render is the boundary between the disk geometry and whatever draws
// it. Geometry code hands over polylines and styles through Renderer and never
// depends on a concrete drawing library.
package render

import (
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var ErrShortPolyline = errors.New("polyline needs at least two points")

// How a polyline is drawn. A nil color skips that part.
type Style struct {
	Stroke      color.Color
	Fill        color.Color
	StrokeWidth float64
}

// Renderer consumes polylines. Implementations may draw immediately or queue
// them; callers must not modify a polyline after submitting it.
type Renderer interface {
	Submit(polyline []r2.Point, style Style) error
}

var (
	BoundaryStyle = Style{Stroke: colornames.White, StrokeWidth: 2}
	GridStyle     = Style{Stroke: colornames.Grey, StrokeWidth: 0.5}
)

// Colors handed out to successive triangles.
var Palette = []color.Color{
	colornames.Royalblue,
	colornames.Red,
	colornames.Limegreen,
	colornames.Mediumpurple,
}

// TriangleStyle gives the i'th triangle a palette color, outlined and filled
// half transparent.
func TriangleStyle(i int) Style {
	c := Palette[i%len(Palette)]
	return Style{
		Stroke:      c,
		Fill:        withAlpha(c, 0.5),
		StrokeWidth: 2,
	}
}

func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 255),
	}
}

// A Renderer that remembers everything submitted to it.
type Recorder struct {
	Polylines [][]r2.Point
	Styles    []Style
}

func (r *Recorder) Submit(polyline []r2.Point, style Style) error {
	if len(polyline) < 2 {
		return errors.Wrapf(ErrShortPolyline, "got %d", len(polyline))
	}
	r.Polylines = append(r.Polylines, polyline)
	r.Styles = append(r.Styles, style)
	return nil
}
