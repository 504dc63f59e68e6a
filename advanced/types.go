package advanced

// Primitive is the classification of one sampled cross-section between the
// top and bottom curves. It is either a Point (zero width) or a Line
// (measurable width).
type Primitive interface {
	isPrimitive()
}

// Line is a pair of points. For cross-sections the first point lies on the
// top curve and the second on the bottom curve. For chains the points are in
// path order.
type Line [2]Point

func (Line) isPrimitive() {}

func (l Line) Top() Point    { return l[0] }
func (l Line) Bottom() Point { return l[1] }

// Triangle vertices are always counterclockwise.
type Triangle [3]Point

// Part of the chart area with measurable width: consecutive cross-sections,
// plus the zero-width points that bound them, if any.
//
//	----Start·<|||Middle|||>·End----
//
// A nil Start or End means the run touches the beginning or end of the curve,
// and the area is left open on that side.
type Area struct {
	Start  *Point
	Middle []Line
	End    *Point
}

// Part of the chart area with no measurable width, drawn as a connected line
// strip.
//
//	---Chain---<||||Area||||>----
type Chain []Line

// Run is a half-open range [Start, End) of indexes into a primitive sequence.
type Run struct {
	Start, End int
}

func (r Run) Len() int {
	return r.End - r.Start
}

// Mesh is the renderable output: filled triangles and zero-width lines.
type Mesh struct {
	Triangles []Triangle
	Lines     []Line
}

func (m Mesh) Empty() bool {
	return len(m.Triangles) == 0 && len(m.Lines) == 0
}
