package year2021

import (
	"fmt"

	"github.com/vancomm/advent/internal/geom"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[]day05Vent]{
		Year:  2021,
		Day:   5,
		Parse: day05Parse,
		Part1: day05Part1,
		Part2: day05Part2,
	}))
}

type day05Vent struct {
	from, to geom.V2
}

func (v day05Vent) axisAligned() bool {
	return v.from.X == v.to.X || v.from.Y == v.to.Y
}

func day05Parse(lines []string) ([]day05Vent, error) {
	vents := make([]day05Vent, 0, len(lines))
	for _, line := range lines {
		var v day05Vent
		_, err := fmt.Sscanf(line, "%d,%d -> %d,%d",
			&v.from.X, &v.from.Y, &v.to.X, &v.to.Y)
		if err != nil {
			return nil, fmt.Errorf("bad vent line %q: %w", line, err)
		}
		vents = append(vents, v)
	}
	return vents, nil
}

func day05Overlaps(vents []day05Vent) int {
	covered := make(map[geom.V2]int)
	for _, v := range vents {
		step := v.from.Toward(v.to)
		for p := v.from; ; p = p.Add(step) {
			covered[p]++
			if p == v.to {
				break
			}
		}
	}
	count := 0
	for _, n := range covered {
		if n >= 2 {
			count++
		}
	}
	return count
}

func day05Part1(vents []day05Vent) (any, error) {
	var straight []day05Vent
	for _, v := range vents {
		if v.axisAligned() {
			straight = append(straight, v)
		}
	}
	return day05Overlaps(straight), nil
}

func day05Part2(vents []day05Vent) (any, error) {
	return day05Overlaps(vents), nil
}
