package year2022

import (
	"fmt"

	"github.com/vancomm/advent/internal/geom"
	"github.com/vancomm/advent/internal/graph"
	"github.com/vancomm/advent/internal/grid"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[*day12Heightmap]{
		Year:  2022,
		Day:   12,
		Parse: day12Parse,
		Part1: day12Part1,
		Part2: day12Part2,
	}))
}

type day12Heightmap struct {
	elevation  *grid.Grid[rune]
	start, end geom.V2
}

func day12Parse(lines []string) (*day12Heightmap, error) {
	g, err := grid.Runes(lines)
	if err != nil {
		return nil, err
	}
	hm := &day12Heightmap{elevation: g}
	foundS, foundE := false, false
	for p, r := range g.All() {
		switch r {
		case 'S':
			hm.start, foundS = p, true
			g.Set(p, 'a')
		case 'E':
			hm.end, foundE = p, true
			g.Set(p, 'z')
		}
	}
	if !foundS || !foundE {
		return nil, fmt.Errorf("heightmap has no start or end marker")
	}
	return hm, nil
}

// day12Ascent walks forward: one step up at most, any drop allowed.
type day12Ascent struct{ hm *day12Heightmap }

func (a day12Ascent) Neighbors(p geom.V2) []graph.Edge[geom.V2] {
	here, _ := a.hm.elevation.At(p)
	var edges []graph.Edge[geom.V2]
	for _, q := range a.hm.elevation.Adjacent(p, grid.Rook) {
		if there, _ := a.hm.elevation.At(q); there <= here+1 {
			edges = append(edges, graph.Edge[geom.V2]{To: q, Weight: 1})
		}
	}
	return edges
}

func (a day12Ascent) Estimate(from, to geom.V2) (int64, bool) {
	return int64(from.Manhattan(to)), true
}

// day12Descent walks the same edges backwards, used to search from
// the summit toward all low ground at once.
type day12Descent struct{ hm *day12Heightmap }

func (d day12Descent) Neighbors(p geom.V2) []graph.Edge[geom.V2] {
	here, _ := d.hm.elevation.At(p)
	var edges []graph.Edge[geom.V2]
	for _, q := range d.hm.elevation.Adjacent(p, grid.Rook) {
		if there, _ := d.hm.elevation.At(q); here <= there+1 {
			edges = append(edges, graph.Edge[geom.V2]{To: q, Weight: 1})
		}
	}
	return edges
}

func day12Part1(hm *day12Heightmap) (any, error) {
	_, steps, err := graph.ShortestPath[geom.V2](day12Ascent{hm}, hm.start, hm.end)
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func day12Part2(hm *day12Heightmap) (any, error) {
	for p, info := range graph.Search[geom.V2](day12Descent{hm}, hm.end, nil) {
		if r, _ := hm.elevation.At(p); r == 'a' {
			return info.Dist, nil
		}
	}
	return nil, fmt.Errorf("no low ground reachable from the summit")
}
