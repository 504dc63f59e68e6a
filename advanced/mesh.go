package advanced

import (
	"github.com/osuushi/areamesh/svgpath"
	"github.com/pkg/errors"
)

// AssembleMesh triangulates every area and flattens every chain, each in the
// order its run appears along the curve. Nothing is merged or deduplicated.
func AssembleMesh(primitives []Primitive) Mesh {
	var mesh Mesh
	for _, area := range FindAreas(primitives) {
		mesh.Triangles = append(mesh.Triangles, TriangulateArea(area)...)
	}
	for _, chain := range FindChains(primitives) {
		mesh.Lines = append(mesh.Lines, chain...)
	}
	return mesh
}

// GenMesh builds the mesh for the area between the top and bottom paths. Both
// paths are expected to run in the same direction with the same number of
// segments, so that they sample to the same number of points.
//
// On error the returned mesh is empty; partial results are never returned.
func GenMesh(top, bottom []svgpath.Command, opts Options) (result Mesh, err error) {
	defer func() {
		if recoveredErr := HandleMeshPanicRecover(recover()); recoveredErr != nil {
			result = Mesh{}
			err = recoveredErr
		}
	}()

	if err := opts.Validate(); err != nil {
		return Mesh{}, err
	}
	if opts.AllowRelative {
		top = svgpath.ToAbsolute(top)
		bottom = svgpath.ToAbsolute(bottom)
	}

	topPoints, err := SamplePath(top, opts.SamplesPerSegment)
	if err != nil {
		return Mesh{}, errors.WithMessage(err, "top path")
	}
	bottomPoints, err := SamplePath(bottom, opts.SamplesPerSegment)
	if err != nil {
		return Mesh{}, errors.WithMessage(err, "bottom path")
	}

	primitives := PairPoints(topPoints, bottomPoints, opts.Epsilon)
	result = AssembleMesh(primitives)

	if debugEnabled() {
		Logger().Debug("generated mesh",
			"samples", len(topPoints),
			"cross_sections", countLines(primitives),
			"triangles", len(result.Triangles),
			"lines", len(result.Lines),
		)
	}
	return result, nil
}

func countLines(primitives []Primitive) int {
	n := 0
	for _, p := range primitives {
		if isLine(p) {
			n++
		}
	}
	return n
}
