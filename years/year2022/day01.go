package year2022

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[]int]{
		Year:  2022,
		Day:   1,
		Parse: day01Parse,
		Part1: day01Part1,
		Part2: day01Part2,
	}))
}

// day01Parse sums each blank-line separated group and returns the
// totals sorted descending.
func day01Parse(lines []string) ([]int, error) {
	var totals []int
	current := 0
	flush := func() {
		totals = append(totals, current)
		current = 0
	}
	for _, line := range lines {
		if line == "" {
			flush()
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad calorie count %q: %w", line, err)
		}
		current += n
	}
	flush()
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))
	return totals, nil
}

func day01Part1(totals []int) (any, error) {
	if len(totals) == 0 {
		return nil, fmt.Errorf("no elves")
	}
	return totals[0], nil
}

func day01Part2(totals []int) (any, error) {
	if len(totals) < 3 {
		return nil, fmt.Errorf("fewer than three elves")
	}
	return totals[0] + totals[1] + totals[2], nil
}
