package advanced

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Padding around the mesh so edges on the bounding box stay visible
const dbgDrawPadding = 20

// DebugImage draws the mesh for inspection: triangles filled green with their
// edges outlined in cyan, and chain lines in red. scale is pixels per unit.
func (m Mesh) DebugImage(scale float64) image.Image {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	visit := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, tri := range m.Triangles {
		for _, p := range tri {
			visit(p)
		}
	}
	for _, line := range m.Lines {
		visit(line[0])
		visit(line[1])
	}
	if m.Empty() {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	// Mesh coordinates are already y-down, like the image
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, tri := range m.Triangles {
		c.MoveTo(tri[0].X, tri[0].Y)
		c.LineTo(tri[1].X, tri[1].Y)
		c.LineTo(tri[2].X, tri[2].Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(1)
	c.Stroke()

	for _, line := range m.Lines {
		c.MoveTo(line[0].X, line[0].Y)
		c.LineTo(line[1].X, line[1].Y)
	}
	c.SetRGB(1, 0, 0)
	c.SetLineWidth(2)
	c.Stroke()

	return c.Image()
}
