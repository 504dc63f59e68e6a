package areamesh

import (
	"embed"
	"log"

	"github.com/osuushi/areamesh/svgdoc"
)

// Fixtures are SVG charts in the fixtures/ directory, available by name sans
// extension. Each holds one or more areas in the form svgdoc reads. If
// anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []svgdoc.Source {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	sources, err := svgdoc.Load(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(sources) == 0 {
		log.Fatalf("No areas found in fixture %q", name)
	}
	return sources
}
