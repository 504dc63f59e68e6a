package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cmds, err := Parse("")
		require.NoError(t, err)
		assert.Empty(t, cmds)

		cmds, err = Parse("  \n\t")
		require.NoError(t, err)
		assert.Empty(t, cmds)
	})

	t.Run("absolute line", func(t *testing.T) {
		cmds, err := Parse("M0,0 L10,0")
		require.NoError(t, err)
		assert.Equal(t, []Command{MoveTo{X: 0, Y: 0}, LineTo{X: 10, Y: 0}}, cmds)
	})

	t.Run("compact numbers", func(t *testing.T) {
		cmds, err := Parse("M-1.5-2L.5.25")
		require.NoError(t, err)
		assert.Equal(t, []Command{MoveTo{X: -1.5, Y: -2}, LineTo{X: 0.5, Y: 0.25}}, cmds)
	})

	t.Run("implicit lineto after moveto", func(t *testing.T) {
		cmds, err := Parse("M0 0 10 10 20 0")
		require.NoError(t, err)
		assert.Equal(t, []Command{
			MoveTo{X: 0, Y: 0},
			LineTo{X: 10, Y: 10},
			LineTo{X: 20, Y: 0},
		}, cmds)

		cmds, err = Parse("m1 1 2 2")
		require.NoError(t, err)
		assert.Equal(t, []Command{MoveTo{X: 1, Y: 1, Rel: true}, LineTo{X: 2, Y: 2, Rel: true}}, cmds)
	})

	t.Run("repeated cubic", func(t *testing.T) {
		// d3's curveBasis emits long runs of C commands like this one
		cmds, err := Parse("M0,10C1,9,2,8,3,7C4,6,5,5,6,4")
		require.NoError(t, err)
		require.Len(t, cmds, 3)
		assert.Equal(t, CubicTo{X1: 1, Y1: 9, X2: 2, Y2: 8, X: 3, Y: 7}, cmds[1])
		assert.Equal(t, CubicTo{X1: 4, Y1: 6, X2: 5, Y2: 5, X: 6, Y: 4}, cmds[2])
	})

	t.Run("horizontal and vertical", func(t *testing.T) {
		cmds, err := Parse("M0 0H5V5h-5v-5z")
		require.NoError(t, err)
		assert.Equal(t, []Command{
			MoveTo{},
			HLineTo{X: 5},
			VLineTo{Y: 5},
			HLineTo{X: -5, Rel: true},
			VLineTo{Y: -5, Rel: true},
			Close{Rel: true},
		}, cmds)
	})

	t.Run("arc flags", func(t *testing.T) {
		cmds, err := Parse("M0 0A5 5 0 1110 0")
		require.NoError(t, err)
		require.Len(t, cmds, 2)
		assert.Equal(t, ArcTo{RX: 5, RY: 5, LargeArc: true, Sweep: true, X: 10, Y: 0}, cmds[1])
	})

	t.Run("errors", func(t *testing.T) {
		for _, bad := range []string{
			"10 10",
			"M0",
			"M0 0 L",
			"M0 0 X5",
			"M0 0 Z 5",
			"M0 0 A5 5 0 2 0 1 1",
			"M0 0 L1e400 0",
			"M-1e400,0",
		} {
			_, err := Parse(bad)
			assert.ErrorIs(t, err, ErrSyntax, "input %q", bad)
		}
	})
}

func TestMustParse(t *testing.T) {
	assert.Panics(t, func() { MustParse("L") })
	assert.NotPanics(t, func() { MustParse("M0 0") })
}

func TestFormat(t *testing.T) {
	src := "M0,0 L10,0 H12 v-2 C1,2,3,4,5,6 Z"
	cmds := MustParse(src)
	assert.Equal(t, src, Format(cmds))
	assert.Equal(t, cmds, MustParse(Format(cmds)))
}

func TestToAbsolute(t *testing.T) {
	cmds := ToAbsolute(MustParse("m10 10 l5 0 h5 v5 c1 1 2 2 3 3 L0 0 z m1 1"))
	assert.Equal(t, []Command{
		MoveTo{X: 10, Y: 10},
		LineTo{X: 15, Y: 10},
		HLineTo{X: 20},
		VLineTo{Y: 15},
		CubicTo{X1: 21, Y1: 16, X2: 22, Y2: 17, X: 23, Y: 18},
		LineTo{X: 0, Y: 0},
		Close{},
		// close returns the cursor to the subpath start
		MoveTo{X: 11, Y: 11},
	}, cmds)

	for _, cmd := range cmds {
		assert.False(t, cmd.Relative())
	}
}
