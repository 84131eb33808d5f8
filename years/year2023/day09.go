package year2023

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[][]int]{
		Year:  2023,
		Day:   9,
		Parse: day09Parse,
		Part1: day09Part1,
		Part2: day09Part2,
	}))
}

func day09Parse(lines []string) ([][]int, error) {
	histories := make([][]int, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty history line")
		}
		history := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("bad reading %q: %w", f, err)
			}
			history = append(history, n)
		}
		histories = append(histories, history)
	}
	return histories, nil
}

// day09Next extrapolates the value after the last reading by summing
// the final element of each difference level.
func day09Next(history []int) int {
	diffs := make([]int, len(history))
	copy(diffs, history)

	next := 0
	for n := len(diffs); n > 1; n-- {
		next += diffs[n-1]
		allZero := true
		for i := 1; i < n; i++ {
			diffs[i-1] = diffs[i] - diffs[i-1]
			if diffs[i-1] != 0 {
				allZero = false
			}
		}
		if allZero {
			break
		}
	}
	return next
}

func day09Reverse(history []int) []int {
	out := make([]int, len(history))
	for i, v := range history {
		out[len(history)-1-i] = v
	}
	return out
}

func day09Part1(histories [][]int) (any, error) {
	sum := 0
	for _, h := range histories {
		sum += day09Next(h)
	}
	return sum, nil
}

// Extrapolating backwards is extrapolating the reversed history
// forwards.
func day09Part2(histories [][]int) (any, error) {
	sum := 0
	for _, h := range histories {
		sum += day09Next(day09Reverse(h))
	}
	return sum, nil
}
