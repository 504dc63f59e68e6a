package svgpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	parsenum "github.com/tdewolff/parse/v2/strconv"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("bad path")

// Number of arguments following each command letter.
var argCounts = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// MustParse parses SVG path data and panics if it fails.
func MustParse(s string) []Command {
	cmds, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return cmds
}

// Parse parses SVG path data. Commands are returned exactly as written:
// relative commands stay relative and shorthand curves are not expanded. An
// empty (or all whitespace) string yields no commands.
func Parse(s string) ([]Command, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if len(path) <= i {
		return nil, nil
	}
	if !isLetter(path[i]) {
		return nil, errors.Wrapf(ErrSyntax, "path should start with a command at position %d", i+1)
	}

	var cmds []Command
	var f [7]float64
	var prev byte
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prev
		if isLetter(path[i]) {
			cmd = path[i]
			i++
			i += skipCommaWhitespace(path[i:])
		} else if prev == 0 || prev == 'Z' || prev == 'z' {
			return nil, errors.Wrapf(ErrSyntax, "expected command at position %d", i+1)
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := argCounts[upper]
		if !ok {
			return nil, errors.Wrapf(ErrSyntax, "unknown command '%c' at position %d", cmd, i)
		}

		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				// arc flags are single digits and may be packed without separators
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					f[j] = float64(path[i] - '0')
					i++
				} else {
					return nil, errors.Wrapf(ErrSyntax, "largeArc and sweep flags should be 0 or 1 in command '%c' at position %d", cmd, i+1)
				}
			} else {
				num, m := parsenum.ParseFloat(path[i:])
				if m == 0 {
					if n > 1 {
						return nil, errors.Wrapf(ErrSyntax, "sets of %d numbers should follow command '%c' at position %d", n, cmd, i+1)
					}
					return nil, errors.Wrapf(ErrSyntax, "number should follow command '%c' at position %d", cmd, i+1)
				}
				if math.IsInf(num, 0) || math.IsNaN(num) {
					return nil, errors.Wrapf(ErrSyntax, "number out of range in command '%c' at position %d", cmd, i+1)
				}
				f[j] = num
				i += m
			}
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != upper
		switch upper {
		case 'M':
			cmds = append(cmds, MoveTo{X: f[0], Y: f[1], Rel: rel})
		case 'Z':
			cmds = append(cmds, Close{Rel: rel})
		case 'L':
			cmds = append(cmds, LineTo{X: f[0], Y: f[1], Rel: rel})
		case 'H':
			cmds = append(cmds, HLineTo{X: f[0], Rel: rel})
		case 'V':
			cmds = append(cmds, VLineTo{Y: f[0], Rel: rel})
		case 'C':
			cmds = append(cmds, CubicTo{X1: f[0], Y1: f[1], X2: f[2], Y2: f[3], X: f[4], Y: f[5], Rel: rel})
		case 'S':
			cmds = append(cmds, SmoothCubicTo{X2: f[0], Y2: f[1], X: f[2], Y: f[3], Rel: rel})
		case 'Q':
			cmds = append(cmds, QuadTo{X1: f[0], Y1: f[1], X: f[2], Y: f[3], Rel: rel})
		case 'T':
			cmds = append(cmds, SmoothQuadTo{X: f[0], Y: f[1], Rel: rel})
		case 'A':
			cmds = append(cmds, ArcTo{
				RX: f[0], RY: f[1], Rotation: f[2],
				LargeArc: f[3] == 1, Sweep: f[4] == 1,
				X: f[5], Y: f[6], Rel: rel,
			})
		}

		// Coordinates repeated after a moveto are implicit linetos.
		prev = cmd
		if upper == 'M' {
			prev = letter('L', rel)
		}
	}
	return cmds, nil
}

// Format writes commands back out as SVG path data.
func Format(cmds []Command) string {
	sb := strings.Builder{}
	for i, cmd := range cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd.Letter())
		var args []float64
		switch c := cmd.(type) {
		case MoveTo:
			args = []float64{c.X, c.Y}
		case LineTo:
			args = []float64{c.X, c.Y}
		case HLineTo:
			args = []float64{c.X}
		case VLineTo:
			args = []float64{c.Y}
		case CubicTo:
			args = []float64{c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y}
		case SmoothCubicTo:
			args = []float64{c.X2, c.Y2, c.X, c.Y}
		case QuadTo:
			args = []float64{c.X1, c.Y1, c.X, c.Y}
		case SmoothQuadTo:
			args = []float64{c.X, c.Y}
		case ArcTo:
			args = []float64{c.RX, c.RY, c.Rotation, flag(c.LargeArc), flag(c.Sweep), c.X, c.Y}
		}
		for j, a := range args {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		}
	}
	return sb.String()
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
