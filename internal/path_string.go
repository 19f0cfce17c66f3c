package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/poincare/internal/dbg"
)

func (p Path) String() string {
	if len(p.Points) == 0 {
		return fmt.Sprintf("%s(empty %s)", p.DbgName(), p.Kind)
	}
	description := fmt.Sprintf("%s(%s, %d points, %v → %v",
		p.DbgName(),
		p.Kind,
		len(p.Points),
		p.Start(),
		p.End(),
	)
	if p.Kind == OrthogonalArc {
		description += fmt.Sprintf(", center %v, radius %.6g", p.Circle.Center, p.Circle.Radius)
	}
	return description + ")"
}

// Get a colorized name for the path, colored by kind. Copies of a path share
// their samples, and so their name.
func (p Path) DbgName() string {
	var name string
	if len(p.Points) == 0 {
		name = dbg.Name(nil)
	} else {
		name = dbg.Name(&p.Points[0])
	}
	switch p.Kind {
	case OrthogonalArc:
		name = aurora.Green(name).String()
	case Diameter:
		name = aurora.Cyan(name).String()
	case DegenerateDiameter:
		name = aurora.Red(name).String()
	}
	return name
}

func (tri *IdealTriangle) String() string {
	parts := []string{fmt.Sprintf("%s(angles %v, radius %g)", dbg.Name(tri), tri.Angles, tri.Radius)}
	for i := range tri.Sides {
		parts = append(parts, fmt.Sprintf("  side %d: %s", i, tri.Sides[i].String()))
	}
	return strings.Join(parts, "\n")
}
