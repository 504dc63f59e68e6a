package scene

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var ErrBadColor = errors.New("bad color")

// Color is an 8 bit RGB triple. Areas are opaque, so there is no alpha.
type Color [3]uint8

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ParseColor reads a CSS color in one of the forms charts emit: #rgb,
// #rrggbb, rgb(r, g, b), or a named color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s)
	}
	if named, ok := colornames.Map[s]; ok {
		return Color{named.R, named.G, named.B}, nil
	}
	return Color{}, errors.Wrapf(ErrBadColor, "%q", s)
}

func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return Color{}, errors.Wrapf(ErrBadColor, "%q: expected 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(ErrBadColor, "%q: %v", s, err)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func parseRGB(s string) (Color, error) {
	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return Color{}, errors.Wrapf(ErrBadColor, "%q: expected 3 components", s)
	}
	var c Color
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, errors.Wrapf(ErrBadColor, "%q: %v", s, err)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

func (c Color) String() string {
	return "#" + hexByte(c[0]) + hexByte(c[1]) + hexByte(c[2])
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
