// Meshing of filled chart areas for GPU rendering.
//
// This package takes the top and bottom boundary curves of an area (as drawn
// by a stacked area chart, for example) and converts the region between them
// into counterclockwise triangles. Wherever the two curves meet, the area has
// no width and is emitted as line segments instead, so that areas can taper
// to a point without producing degenerate triangles.
package areamesh

import (
	"log/slog"

	"github.com/osuushi/areamesh/advanced"
	"github.com/osuushi/areamesh/svgpath"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Line = advanced.Line
type Triangle = advanced.Triangle
type Mesh = advanced.Mesh
type Options = advanced.Options

var (
	ErrMalformedPath       = advanced.ErrMalformedPath
	ErrSubpathsUnsupported = advanced.ErrSubpathsUnsupported
	ErrUnsupportedCommand  = advanced.ErrUnsupportedCommand
	ErrInvalidOptions      = advanced.ErrInvalidOptions
	ErrPointCountMismatch  = advanced.ErrPointCountMismatch
	ErrEmptyArea           = advanced.ErrEmptyArea
	ErrUnexpectedPrimitive = advanced.ErrUnexpectedPrimitive
)

// Sample density and classification threshold used by GenMesh.
func DefaultOptions() Options {
	return advanced.DefaultOptions()
}

// Generate the mesh for the area between two SVG paths.
//
// Each path must start with an absolute moveto, followed only by absolute
// L, H, V and C commands, and both paths must have the same number of
// segments. The paths should run in the positive x direction, with top above
// bottom on screen.
func GenMesh(top, bottom string) (Mesh, error) {
	return GenMeshWithOptions(top, bottom, DefaultOptions())
}

func GenMeshWithOptions(top, bottom string, opts Options) (Mesh, error) {
	topCmds, err := svgpath.Parse(top)
	if err != nil {
		return Mesh{}, errors.Wrapf(ErrMalformedPath, "top path: %v", err)
	}
	bottomCmds, err := svgpath.Parse(bottom)
	if err != nil {
		return Mesh{}, errors.Wrapf(ErrMalformedPath, "bottom path: %v", err)
	}
	return GenMeshFromCommands(topCmds, bottomCmds, opts)
}

// Like GenMeshWithOptions, for paths that are already parsed.
func GenMeshFromCommands(top, bottom []svgpath.Command, opts Options) (Mesh, error) {
	return advanced.GenMesh(top, bottom, opts)
}

// Set the logger for mesh generation. By default nothing is logged.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}
