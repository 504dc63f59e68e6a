package advanced

import "github.com/osuushi/areamesh/dbg"

// Areas and chains are two independent views of the same primitive sequence:
//
//	..[?point][any number of lines][?point]..   area
//	..[any number of points]..                  chain
//
// Each is found with a single scan that records index ranges, so no
// intermediate slices of primitives are built.

func isLine(p Primitive) bool {
	_, ok := p.(Line)
	return ok
}

func isPoint(p Primitive) bool {
	_, ok := p.(Point)
	return ok
}

// LineRuns returns the maximal runs of consecutive lines.
func LineRuns(primitives []Primitive) []Run {
	return maximalRuns(primitives, isLine)
}

// PointRuns returns the maximal runs of consecutive points.
func PointRuns(primitives []Primitive) []Run {
	return maximalRuns(primitives, isPoint)
}

func maximalRuns(primitives []Primitive, keep func(Primitive) bool) []Run {
	var runs []Run
	start := -1
	for i, p := range primitives {
		if keep(p) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, Run{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Run{start, len(primitives)})
	}
	return runs
}

// FindAreas returns one Area per run of lines, capped by the points on either
// side of the run when they exist.
func FindAreas(primitives []Primitive) []Area {
	runs := LineRuns(primitives)
	areas := make([]Area, len(runs))
	for i, run := range runs {
		area := &areas[i]
		area.Middle = make([]Line, 0, run.Len())
		for _, p := range primitives[run.Start:run.End] {
			area.Middle = append(area.Middle, asLine(p))
		}
		if run.Start > 0 {
			start := asPoint(primitives[run.Start-1])
			area.Start = &start
		}
		if run.End < len(primitives) {
			end := asPoint(primitives[run.End])
			area.End = &end
		}
		if debugEnabled() {
			Logger().Debug("found area",
				"name", dbg.Name(area),
				"first", run.Start,
				"lines", run.Len(),
				"capped_start", area.Start != nil,
				"capped_end", area.End != nil,
			)
		}
	}
	return areas
}

// FindChains returns one Chain per run of two or more points, connecting each
// point to the next. A lone point has nothing to connect to and is dropped.
func FindChains(primitives []Primitive) []Chain {
	var chains []Chain
	for _, run := range PointRuns(primitives) {
		if run.Len() < 2 {
			continue
		}
		chain := make(Chain, 0, run.Len()-1)
		for i := run.Start; i+1 < run.End; i++ {
			chain = append(chain, Line{asPoint(primitives[i]), asPoint(primitives[i+1])})
		}
		chains = append(chains, chain)
		if debugEnabled() {
			Logger().Debug("found chain",
				"name", dbg.Name(&chains[len(chains)-1]),
				"first", run.Start,
				"points", run.Len(),
			)
		}
	}
	return chains
}

func asPoint(p Primitive) Point {
	point, ok := p.(Point)
	if !ok {
		fatalf(ErrUnexpectedPrimitive, "%v is not a point", p)
	}
	return point
}

func asLine(p Primitive) Line {
	line, ok := p.(Line)
	if !ok {
		fatalf(ErrUnexpectedPrimitive, "%v is not a line", p)
	}
	return line
}
