// Package svgpath models SVG path data as a list of commands.
//
// Every command in the SVG grammar is represented so that a parsed path can be
// inspected faithfully, even though consumers such as the area mesher only
// accept a subset of them.
package svgpath

// Command is a single path data command. The set of implementations is closed.
type Command interface {
	isCommand()
	// Letter is the SVG command letter, lower case for relative commands.
	Letter() byte
	// Relative reports whether the coordinates are relative to the current
	// point.
	Relative() bool
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
	Rel  bool
}

// LineTo draws a straight line to (X, Y).
type LineTo struct {
	X, Y float64
	Rel  bool
}

// HLineTo draws a horizontal line to X, keeping the current Y.
type HLineTo struct {
	X   float64
	Rel bool
}

// VLineTo draws a vertical line to Y, keeping the current X.
type VLineTo struct {
	Y   float64
	Rel bool
}

// CubicTo draws a cubic Bézier curve to (X, Y) with control points (X1, Y1)
// and (X2, Y2).
type CubicTo struct {
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
	Rel    bool
}

// SmoothCubicTo is the SVG "S" shorthand cubic curve.
type SmoothCubicTo struct {
	X2, Y2 float64
	X, Y   float64
	Rel    bool
}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	X1, Y1 float64
	X, Y   float64
	Rel    bool
}

// SmoothQuadTo is the SVG "T" shorthand quadratic curve.
type SmoothQuadTo struct {
	X, Y float64
	Rel  bool
}

// ArcTo draws an elliptical arc.
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	X, Y     float64
	Rel      bool
}

// Close closes the current subpath.
type Close struct {
	Rel bool
}

func (MoveTo) isCommand()        {}
func (LineTo) isCommand()        {}
func (HLineTo) isCommand()       {}
func (VLineTo) isCommand()       {}
func (CubicTo) isCommand()       {}
func (SmoothCubicTo) isCommand() {}
func (QuadTo) isCommand()        {}
func (SmoothQuadTo) isCommand()  {}
func (ArcTo) isCommand()         {}
func (Close) isCommand()         {}

func (c MoveTo) Relative() bool        { return c.Rel }
func (c LineTo) Relative() bool        { return c.Rel }
func (c HLineTo) Relative() bool       { return c.Rel }
func (c VLineTo) Relative() bool       { return c.Rel }
func (c CubicTo) Relative() bool       { return c.Rel }
func (c SmoothCubicTo) Relative() bool { return c.Rel }
func (c QuadTo) Relative() bool        { return c.Rel }
func (c SmoothQuadTo) Relative() bool  { return c.Rel }
func (c ArcTo) Relative() bool         { return c.Rel }
func (c Close) Relative() bool         { return c.Rel }

func (c MoveTo) Letter() byte        { return letter('M', c.Rel) }
func (c LineTo) Letter() byte        { return letter('L', c.Rel) }
func (c HLineTo) Letter() byte       { return letter('H', c.Rel) }
func (c VLineTo) Letter() byte       { return letter('V', c.Rel) }
func (c CubicTo) Letter() byte       { return letter('C', c.Rel) }
func (c SmoothCubicTo) Letter() byte { return letter('S', c.Rel) }
func (c QuadTo) Letter() byte        { return letter('Q', c.Rel) }
func (c SmoothQuadTo) Letter() byte  { return letter('T', c.Rel) }
func (c ArcTo) Letter() byte         { return letter('A', c.Rel) }
func (c Close) Letter() byte         { return letter('Z', c.Rel) }

func letter(upper byte, rel bool) byte {
	if rel {
		return upper + ('a' - 'A')
	}
	return upper
}
