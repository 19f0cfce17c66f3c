package internal

import (
	"io"

	"github.com/osuushi/poincare/render"
	"github.com/pkg/errors"
)

// Submit the path's samples to a renderer.
func (p Path) Draw(r render.Renderer, style render.Style) error {
	return r.Submit(p.Points, style)
}

// Submit the closed outline to a renderer.
func (tri *IdealTriangle) Draw(r render.Renderer, style render.Style) error {
	return errors.Wrapf(r.Submit(tri.Points, style), "triangle %v", tri.Angles)
}

// This is for debugging purposes only. Draw the disk, the triangle and its
// vertices, and print the image to w (iTerm only).
func (tri *IdealTriangle) dbgDraw(size int, w io.Writer) error {
	canvas := render.NewCanvas(size, tri.Radius)
	canvas.DrawBoundary()
	if err := tri.Draw(canvas, render.TriangleStyle(0)); err != nil {
		return err
	}
	// Each side gets its own color so the orientation is visible
	for i, side := range tri.Sides {
		style := render.TriangleStyle(i + 1)
		style.Fill = nil
		if err := side.Draw(canvas, style); err != nil {
			return err
		}
	}
	return canvas.Preview(w)
}
