package year2021

import (
	"fmt"

	"github.com/vancomm/advent/internal/geom"
	"github.com/vancomm/advent/internal/grid"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[*grid.Grid[int]]{
		Year:  2021,
		Day:   11,
		Parse: grid.Digits,
		Part1: day11Part1,
		Part2: day11Part2,
	}))
}

// day11Step advances the octopus grid one step in place and returns
// how many flashes happened.
func day11Step(energy *grid.Grid[int]) int {
	var ready []geom.V2
	for p, e := range energy.All() {
		energy.Set(p, e+1)
		if e+1 > 9 {
			ready = append(ready, p)
		}
	}

	flashed := make(map[geom.V2]bool)
	for len(ready) > 0 {
		p := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, q := range energy.Adjacent(p, grid.Queen) {
			e, _ := energy.At(q)
			energy.Set(q, e+1)
			if e+1 > 9 && !flashed[q] {
				ready = append(ready, q)
			}
		}
	}

	for p := range flashed {
		energy.Set(p, 0)
	}
	return len(flashed)
}

func day11Part1(energy *grid.Grid[int]) (any, error) {
	energy = energy.Clone()
	flashes := 0
	for step := 0; step < 100; step++ {
		flashes += day11Step(energy)
	}
	return flashes, nil
}

func day11Part2(energy *grid.Grid[int]) (any, error) {
	energy = energy.Clone()
	all := energy.Width() * energy.Height()
	for step := 1; step <= 10000; step++ {
		if day11Step(energy) == all {
			return step, nil
		}
	}
	return nil, fmt.Errorf("no synchronized flash within 10000 steps")
}
