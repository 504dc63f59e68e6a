package advanced

// This contains no actual tests. It is just a helper for checking meshes.

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is valid. The rules are:
// 1. Every triangle is counterclockwise, which also means no triangle has zero area.
// 2. If outline is given, the areas of the triangles sum to the area it encloses.
func AssertValidMesh(t *testing.T, mesh Mesh, outline []Point) {
	t.Helper()
	var triangleArea float64
	for i, tri := range mesh.Triangles {
		require.True(t, tri.IsCCW(), "triangle %d is not counterclockwise: %# v", i, pretty.Formatter(tri))
		triangleArea += tri.SignedArea()
	}
	if outline != nil {
		require.InDelta(t, polygonArea(outline), triangleArea, 1e-6, "triangle areas must sum to the outlined area")
	}
}

// Unsigned shoelace area
func polygonArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Outline of the area between the sampled curves: along the top, then back
// along the bottom.
func outlineOf(top, bottom []Point) []Point {
	outline := append([]Point{}, top...)
	for i := len(bottom) - 1; i >= 0; i-- {
		outline = append(outline, bottom[i])
	}
	return outline
}
