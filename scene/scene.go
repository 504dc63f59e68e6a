// Package scene collects area meshes as flat vertex buffers ready for upload
// to a GPU, and can rasterize them in software for previews.
package scene

import (
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/osuushi/areamesh"
)

type DrawMode int

const (
	Triangles DrawMode = iota
	Lines
)

func (m DrawMode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return "unknown"
}

// Object is a single draw call. Vertices holds x, y pairs; Count is the
// number of vertices, so len(Vertices) == 2*Count.
type Object struct {
	Color    Color
	Mode     DrawMode
	Vertices []float32
	Count    int
}

const DefaultLineWidth = 1

type Scene struct {
	// Used by AddArea
	Options areamesh.Options
	// Render settings
	Background Color
	LineWidth  float64

	mu      sync.Mutex
	objects []Object
}

func New() *Scene {
	return &Scene{
		Options:    areamesh.DefaultOptions(),
		Background: Black,
		LineWidth:  DefaultLineWidth,
	}
}

// AddArea meshes the area between two paths and adds it in the given color.
// On error the scene is left as it was.
func (s *Scene) AddArea(top, bottom, color string) error {
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	mesh, err := areamesh.GenMeshWithOptions(top, bottom, s.Options)
	if err != nil {
		return err
	}
	s.AddMesh(mesh, c)
	return nil
}

// AddMesh adds an object for the triangles of the mesh, then one for its
// lines. Empty classes produce no object.
func (s *Scene) AddMesh(mesh areamesh.Mesh, color Color) {
	var objects []Object
	if len(mesh.Triangles) > 0 {
		obj := Object{Color: color, Mode: Triangles, Count: 3 * len(mesh.Triangles)}
		obj.Vertices = make([]float32, 0, 2*obj.Count)
		for _, tri := range mesh.Triangles {
			for _, p := range tri {
				obj.Vertices = append(obj.Vertices, float32(p.X), float32(p.Y))
			}
		}
		objects = append(objects, obj)
	}
	if len(mesh.Lines) > 0 {
		obj := Object{Color: color, Mode: Lines, Count: 2 * len(mesh.Lines)}
		obj.Vertices = make([]float32, 0, 2*obj.Count)
		for _, line := range mesh.Lines {
			for _, p := range line {
				obj.Vertices = append(obj.Vertices, float32(p.X), float32(p.Y))
			}
		}
		objects = append(objects, obj)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, objects...)
}

// Objects returns a copy of the objects in draw order.
func (s *Scene) Objects() []Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Object, len(s.objects))
	copy(result, s.objects)
	return result
}

func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *Scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
}

// Render draws the scene in pixel coordinates, with y pointing down.
func (s *Scene) Render(width, height int) image.Image {
	c := gg.NewContext(width, height)
	c.SetRGB255(int(s.Background[0]), int(s.Background[1]), int(s.Background[2]))
	c.Clear()
	c.SetLineWidth(s.LineWidth)

	for _, obj := range s.Objects() {
		c.SetRGB255(int(obj.Color[0]), int(obj.Color[1]), int(obj.Color[2]))
		v := obj.Vertices
		switch obj.Mode {
		case Triangles:
			for i := 0; i+5 < len(v); i += 6 {
				c.MoveTo(float64(v[i]), float64(v[i+1]))
				c.LineTo(float64(v[i+2]), float64(v[i+3]))
				c.LineTo(float64(v[i+4]), float64(v[i+5]))
				c.ClosePath()
			}
			c.Fill()
		case Lines:
			for i := 0; i+3 < len(v); i += 4 {
				c.MoveTo(float64(v[i]), float64(v[i+1]))
				c.LineTo(float64(v[i+2]), float64(v[i+3]))
			}
			c.Stroke()
		}
	}
	return c.Image()
}
