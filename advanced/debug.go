package advanced

import (
	"fmt"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/areamesh/dbg"
)

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', 6, 64) + ", " + strconv.FormatFloat(p.Y, 'g', 6, 64) + ")"
}

func (a *Area) String() string {
	return fmt.Sprintf("Area %s { start: %s, lines: %d, end: %s }",
		a.DbgName(),
		optionalPoint(a.Start),
		len(a.Middle),
		optionalPoint(a.End),
	)
}

// DbgName colors the name by how the area is closed off: green when capped on
// both sides, cyan when open on either side, red when it has no lines at all.
func (a *Area) DbgName() string {
	name := dbg.Name(a)
	if len(a.Middle) == 0 {
		return aurora.Red(name).String()
	}
	if a.Start == nil || a.End == nil {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (c *Chain) String() string {
	if len(*c) == 0 {
		return fmt.Sprintf("Chain %s { }", c.DbgName())
	}
	return fmt.Sprintf("Chain %s { %s -> %s, segments: %d }",
		c.DbgName(),
		(*c)[0].Top(),
		(*c)[len(*c)-1].Bottom(),
		len(*c),
	)
}

func (c *Chain) DbgName() string {
	return aurora.Yellow(dbg.Name(c)).String()
}

func optionalPoint(p *Point) string {
	if p == nil {
		return "Ø"
	}
	return p.String()
}
