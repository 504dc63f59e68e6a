package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// For comparing computed areas and coordinates
const tolerance = 1e-9

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			// Counterclockwise on screen: left, down, then right (y grows down)
			tri := Triangle{{0, 0}, {0, 1}, {1, 1}}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.SignedArea(), tolerance)
				assert.Equal(t, cwI == 0, tri.IsCCW())
				assert.Equal(t, cwI == 1, tri.IsCW())
			}
			if cwI == 1 {
				tri[0], tri[1] = tri[1], tri[0]
			}
			assertArea(0.5)

			// Stretch the triangle out
			for i := range tri {
				tri[i].Y *= 2
			}
			assertArea(1)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				rotateTriangle(&tri, angle)
				assertArea(1)
			}

			// Translate the triangle and do the whole rotation thing again
			for i := range tri {
				tri[i].X += 5
				tri[i].Y += 3
			}
			for i := 0; i < 14; i++ {
				rotateTriangle(&tri, angle)
				assertArea(1)
			}
		})
	}
}

func TestDegenerateTriangle(t *testing.T) {
	tri := Triangle{{0, 0}, {1, 1}, {2, 2}}
	assert.Equal(t, 0.0, tri.SignedArea())
	assert.False(t, tri.IsCCW())
	assert.False(t, tri.IsCW())
}

// Helpers

func rotateTriangle(tri *Triangle, angle float64) {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	for i, p := range tri {
		tri[i] = Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
	}
}
