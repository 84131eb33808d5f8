package year2021

import (
	"fmt"
	"strconv"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[]int]{
		Year:  2021,
		Day:   1,
		Parse: day01Parse,
		Part1: day01Part1,
		Part2: day01Part2,
	}))
}

func day01Parse(lines []string) ([]int, error) {
	depths := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad depth %q: %w", line, err)
		}
		depths = append(depths, n)
	}
	return depths, nil
}

func day01Increases(depths []int, window int) int {
	count := 0
	for i := window; i < len(depths); i++ {
		// Sliding windows share all but the endpoints, so comparing
		// sums reduces to comparing the elements that differ.
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}

func day01Part1(depths []int) (any, error) {
	return day01Increases(depths, 1), nil
}

func day01Part2(depths []int) (any, error) {
	return day01Increases(depths, 3), nil
}
