package svgpath

// ToAbsolute returns a copy of cmds with every relative command rewritten in
// absolute coordinates. Command kinds are preserved, so an "h" becomes an "H"
// rather than an "L".
func ToAbsolute(cmds []Command) []Command {
	out := make([]Command, 0, len(cmds))
	var curX, curY float64
	var startX, startY float64
	for _, cmd := range cmds {
		var dx, dy float64
		if cmd.Relative() {
			dx, dy = curX, curY
		}
		switch c := cmd.(type) {
		case MoveTo:
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			startX, startY = c.X, c.Y
			out = append(out, c)
		case LineTo:
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			out = append(out, c)
		case HLineTo:
			c.X, c.Rel = c.X+dx, false
			curX = c.X
			out = append(out, c)
		case VLineTo:
			c.Y, c.Rel = c.Y+dy, false
			curY = c.Y
			out = append(out, c)
		case CubicTo:
			c.X1, c.Y1 = c.X1+dx, c.Y1+dy
			c.X2, c.Y2 = c.X2+dx, c.Y2+dy
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			out = append(out, c)
		case SmoothCubicTo:
			c.X2, c.Y2 = c.X2+dx, c.Y2+dy
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			out = append(out, c)
		case QuadTo:
			c.X1, c.Y1 = c.X1+dx, c.Y1+dy
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			out = append(out, c)
		case SmoothQuadTo:
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			out = append(out, c)
		case ArcTo:
			c.X, c.Y, c.Rel = c.X+dx, c.Y+dy, false
			curX, curY = c.X, c.Y
			out = append(out, c)
		case Close:
			c.Rel = false
			curX, curY = startX, startY
			out = append(out, c)
		}
	}
	return out
}
