package advanced

// TriangulateArea converts an area into counterclockwise triangles: the start
// cap (if any), then two triangles per pair of adjacent cross-sections from
// left to right, then the end cap (if any).
func TriangulateArea(area Area) []Triangle {
	if len(area.Middle) == 0 {
		fatalf(ErrEmptyArea, "cannot triangulate %v", &area)
	}

	triangles := make([]Triangle, 0, 2*len(area.Middle))
	if area.Start != nil {
		first := area.Middle[0]
		triangles = append(triangles, Triangle{*area.Start, first.Bottom(), first.Top()})
	}
	for i := 0; i+1 < len(area.Middle); i++ {
		triangles = appendQuad(triangles, area.Middle[i], area.Middle[i+1])
	}
	if area.End != nil {
		last := area.Middle[len(area.Middle)-1]
		// The end cap is traversed the opposite way from the start cap, which
		// keeps both counterclockwise.
		triangles = append(triangles, Triangle{*area.End, last.Top(), last.Bottom()})
	}
	return triangles
}

// Splits the quad between two cross-sections into two triangles, assuming l1
// is left of l2 and both run from top to bottom.
/*
      p1    p3          ┌──────┐
      │      │          │ ╲    │tri2
    l1│    l2│    ->    │  ╲   │      tri1: p1 -> p2 -> p4
      │      │          │   ╲  │      tri2: p4 -> p3 -> p1
      │      │      tri1│    ╲ │
      p2    p4          └──────┘
*/
func appendQuad(triangles []Triangle, l1, l2 Line) []Triangle {
	return append(triangles,
		Triangle{l1.Top(), l1.Bottom(), l2.Bottom()},
		Triangle{l2.Bottom(), l2.Top(), l1.Top()},
	)
}
