// Package svgdoc reads chart areas out of SVG documents.
//
// This is not a general SVG reader. An area is a group carrying a data-area
// attribute, holding one path for each of its edges:
//
//	<g data-area="rock" fill="#d62728">
//	  <path data-edge="top" d="M0,0 C..."/>
//	  <path data-edge="bottom" d="M0,40 C..."/>
//	</g>
//
// Everything else in the document is ignored.
package svgdoc

import (
	"io"
	"os"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

const DefaultFill = "white"

var (
	ErrMissingEdge   = errors.New("area is missing an edge")
	ErrDuplicateEdge = errors.New("area has more than one path for an edge")
)

// Source is one area as found in the document.
type Source struct {
	Name   string
	Top    string
	Bottom string
	Fill   string
}

// Load returns the areas in document order.
func Load(r io.Reader) ([]Source, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var sources []Source
	for _, group := range root.FindAll("g") {
		name, ok := group.Attributes["data-area"]
		if !ok {
			continue
		}
		source := Source{Name: name, Fill: group.Attributes["fill"]}
		if source.Fill == "" {
			source.Fill = DefaultFill
		}

		for _, child := range group.Children {
			if child.Name != "path" {
				continue
			}
			var edge *string
			switch child.Attributes["data-edge"] {
			case "top":
				edge = &source.Top
			case "bottom":
				edge = &source.Bottom
			default:
				continue
			}
			if *edge != "" {
				return nil, errors.Wrapf(ErrDuplicateEdge, "area %q has two %s paths", name, child.Attributes["data-edge"])
			}
			*edge = child.Attributes["d"]
		}
		if source.Top == "" {
			return nil, errors.Wrapf(ErrMissingEdge, "area %q has no top path", name)
		}
		if source.Bottom == "" {
			return nil, errors.Wrapf(ErrMissingEdge, "area %q has no bottom path", name)
		}
		sources = append(sources, source)
	}
	return sources, nil
}

func LoadFile(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
