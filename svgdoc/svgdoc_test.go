package svgdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoAreas = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <rect width="100" height="100" fill="black"/>
  <g class="areas">
    <g data-area="rock" fill="#d62728">
      <path data-edge="top" d="M0,0 L100,0"/>
      <path data-edge="bottom" d="M0,40 L100,40"/>
    </g>
    <g data-area="jazz">
      <path data-edge="bottom" d="M0,80 L100,80"/>
      <path data-edge="top" d="M0,40 L100,40"/>
      <circle r="3"/>
    </g>
  </g>
</svg>`

func TestLoad(t *testing.T) {
	sources, err := Load(strings.NewReader(twoAreas))
	require.NoError(t, err)
	assert.Equal(t, []Source{
		{Name: "rock", Top: "M0,0 L100,0", Bottom: "M0,40 L100,40", Fill: "#d62728"},
		{Name: "jazz", Top: "M0,40 L100,40", Bottom: "M0,80 L100,80", Fill: DefaultFill},
	}, sources)
}

func TestLoadNoAreas(t *testing.T) {
	sources, err := Load(strings.NewReader(`<svg><g><path d="M0,0 L1,1"/></g></svg>`))
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestLoadMissingEdge(t *testing.T) {
	doc := `<svg><g data-area="lonely"><path data-edge="top" d="M0,0 L1,0"/></g></svg>`
	_, err := Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrMissingEdge)
	assert.Contains(t, err.Error(), "lonely")
}

func TestLoadDuplicateEdge(t *testing.T) {
	for _, edge := range []string{"top", "bottom"} {
		doc := `<svg><g data-area="twice">
  <path data-edge="top" d="M0,0 L1,0"/>
  <path data-edge="bottom" d="M0,1 L1,1"/>
  <path data-edge="` + edge + `" d="M0,2 L1,2"/>
</g></svg>`
		_, err := Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrDuplicateEdge, edge)
		assert.Contains(t, err.Error(), "twice")
	}
}

func TestLoadInvalidDocument(t *testing.T) {
	_, err := Load(strings.NewReader(`<svg><g data-area="x"></svg>`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, os.WriteFile(path, []byte(twoAreas), 0o644))

	sources, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, sources, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.svg"))
	assert.Error(t, err)
}
