package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/poincare"
	"github.com/osuushi/poincare/internal/dbg"
	"github.com/osuushi/poincare/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Trace ideal triangles. Input on stdin is one triangle per line, given as
// three vertex angles in radians separated by whitespace. Each triangle's
// closed outline is written to stdout as "x y" lines, with a blank line after
// each triangle.
//
// Lines that cannot be parsed, and triangles that cannot be built (e.g. two
// equal angles), are reported on stderr and skipped.
var (
	app        = kingpin.New("idealtri", "Trace ideal triangles on the Poincaré disk.")
	configFile = app.Flag("config", "YAML file with disk and tolerance settings.").ExistingFile()
	radius     = app.Flag("radius", "Disk radius. Overrides the config file.").Float64()
	samples    = app.Flag("samples", "Samples per triangle side. Overrides the config file.").Int()
	grid       = app.Flag("grid", "Diameters to draw in the preview. Overrides the config file.").Int()
	preview    = app.Flag("preview", "Print a picture to the terminal instead of points.").Bool()
	size       = app.Flag("size", "Preview size in pixels.").Default("600").Int()
	verbose    = app.Flag("verbose", "Log debug detail to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	dbg.Enabled = *verbose

	settings, err := LoadSettings(*configFile)
	app.FatalIfError(err, "loading settings")
	if *radius != 0 {
		settings.Radius = *radius
	}
	if *samples != 0 {
		settings.Samples = *samples
	}
	if *grid != 0 {
		settings.Grid = *grid
	}
	app.FatalIfError(settings.Validate(), "invalid settings")

	list, parseErrs := readTriangles(os.Stdin)
	triangles, buildErrs := poincare.BuildTriangles(list, settings.Radius, settings.Samples, settings.Tolerances)
	for _, err := range append(parseErrs, buildErrs...) {
		fmt.Fprintln(os.Stderr, err)
	}
	dbg.Logf(dbg.Info, "built %d of %d triangles", len(list)-len(buildErrs), len(list))

	if *preview {
		app.FatalIfError(drawPreview(os.Stdout, triangles, settings), "drawing preview")
		return
	}
	app.FatalIfError(writePolylines(os.Stdout, triangles), "writing points")
}

func readTriangles(in io.Reader) (poincare.TriangleList, []error) {
	var (
		list poincare.TriangleList
		errs []error
	)
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		angles, err := parseAngles(line)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "line %d", lineNumber))
			continue
		}
		list = append(list, angles)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, errors.Wrap(err, "reading input"))
	}
	return list, errs
}

func parseAngles(line string) ([3]float64, error) {
	var angles [3]float64
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return angles, errors.Errorf("expected 3 angles, got %d", len(fields))
	}
	for i, field := range fields {
		angle, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return angles, errors.Wrapf(err, "angle %d", i)
		}
		angles[i] = angle
	}
	return angles, nil
}

func writePolylines(w io.Writer, triangles []*poincare.IdealTriangle) error {
	out := bufio.NewWriter(w)
	for _, tri := range triangles {
		if tri == nil {
			continue
		}
		for _, p := range tri.Points {
			fmt.Fprintf(out, "%s %s\n",
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			)
		}
		fmt.Fprintln(out)
	}
	return out.Flush()
}

func drawPreview(w io.Writer, triangles []*poincare.IdealTriangle, settings Settings) error {
	canvas := render.NewCanvas(*size, settings.Radius)
	if err := drawScene(canvas, triangles, settings); err != nil {
		return err
	}
	canvas.DrawBoundary()
	return canvas.Preview(w)
}

// Submit the grid, then the triangles, to any renderer.
func drawScene(r render.Renderer, triangles []*poincare.IdealTriangle, settings Settings) error {
	diameters, err := poincare.DiameterGrid(settings.Grid, settings.Radius, 2, settings.Tolerances)
	if err != nil {
		return err
	}
	for _, diameter := range diameters {
		if err := diameter.Draw(r, render.GridStyle); err != nil {
			return err
		}
	}
	for i, tri := range triangles {
		if tri == nil {
			continue
		}
		if err := tri.Draw(r, render.TriangleStyle(i)); err != nil {
			return err
		}
	}
	return nil
}
