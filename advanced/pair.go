package advanced

// PairPoints classifies each cross-section of the area. When the top and
// bottom samples are further apart than epsilon the cross-section has width
// and becomes a Line from top to bottom; otherwise it collapses to their
// midpoint.
//
// top and bottom must have the same length.
func PairPoints(top, bottom []Point, epsilon float64) []Primitive {
	if len(top) != len(bottom) {
		fatalf(ErrPointCountMismatch, "%d top points, %d bottom points", len(top), len(bottom))
	}

	primitives := make([]Primitive, len(top))
	for i := range top {
		if top[i].Distance(bottom[i]) > epsilon {
			primitives[i] = Line{top[i], bottom[i]}
		} else {
			primitives[i] = top[i].Average(bottom[i])
		}
	}
	return primitives
}
