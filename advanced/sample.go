package advanced

import (
	"github.com/osuushi/areamesh/svgpath"
	"github.com/pkg/errors"
)

// One drawing command resolved against the current point.
type segment struct {
	from, to Point
	c1, c2   Point
	curved   bool
}

// SamplePath walks the path and returns points sampled along it, in order.
//
// The path must begin with an absolute moveto, followed by absolute L, H, V or
// C commands. Each segment contributes its points at t = 0, 1/k, ..., (k-1)/k
// where k is samples for curves and samples/2 for straight edges, and the
// final destination is appended at the end, so every segment boundary appears
// exactly once. An empty path has no points, and neither does a lone moveto.
func SamplePath(cmds []svgpath.Command, samples int) ([]Point, error) {
	if samples <= 0 {
		return nil, errors.Wrapf(ErrInvalidOptions, "samples per segment must be positive, got %d", samples)
	}
	if len(cmds) == 0 {
		return nil, nil
	}

	move, ok := cmds[0].(svgpath.MoveTo)
	if !ok || move.Rel {
		return nil, errors.Wrapf(ErrMalformedPath, "path must begin with an absolute moveto, got '%c'", cmds[0].Letter())
	}

	current := Point{move.X, move.Y}
	if !current.finite() {
		return nil, errors.Wrapf(ErrMalformedPath, "moveto has a non-finite coordinate %v", current)
	}

	var points []Point
	for i, cmd := range cmds[1:] {
		seg, err := resolveSegment(current, cmd)
		if err != nil {
			return nil, errors.WithMessagef(err, "command %d", i+1)
		}
		if !seg.finite() {
			return nil, errors.Wrapf(ErrMalformedPath, "command %d has a non-finite coordinate", i+1)
		}
		points = seg.appendSamples(points, samples)
		current = seg.to
	}
	if len(cmds) > 1 {
		points = append(points, current)
	}
	return points, nil
}

func resolveSegment(current Point, cmd svgpath.Command) (segment, error) {
	if _, ok := cmd.(svgpath.MoveTo); ok {
		return segment{}, ErrSubpathsUnsupported
	}
	if cmd.Relative() {
		return segment{}, errors.Wrapf(ErrUnsupportedCommand, "relative command '%c'", cmd.Letter())
	}

	switch c := cmd.(type) {
	case svgpath.LineTo:
		return segment{from: current, to: Point{c.X, c.Y}}, nil
	case svgpath.HLineTo:
		return segment{from: current, to: Point{c.X, current.Y}}, nil
	case svgpath.VLineTo:
		return segment{from: current, to: Point{current.X, c.Y}}, nil
	case svgpath.CubicTo:
		return segment{
			from:   current,
			to:     Point{c.X, c.Y},
			c1:     Point{c.X1, c.Y1},
			c2:     Point{c.X2, c.Y2},
			curved: true,
		}, nil
	}
	return segment{}, errors.Wrapf(ErrUnsupportedCommand, "command '%c'", cmd.Letter())
}

func (s segment) finite() bool {
	return s.to.finite() && s.c1.finite() && s.c2.finite()
}

// Appends the samples for t in [0, 1). The destination itself is left for the
// next segment (or the caller, for the last one).
func (s segment) appendSamples(points []Point, samples int) []Point {
	n := samples
	if !s.curved {
		// less samples needed without curvature
		n /= 2
		if n < 1 {
			n = 1
		}
	}

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		if s.curved {
			points = append(points, s.from.Berp(s.to, s.c1, s.c2, t))
		} else {
			points = append(points, s.from.Lerp(s.to, t))
		}
	}
	return points
}
