package year2021

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[9]int64]{
		Year:  2021,
		Day:   6,
		Parse: day06Parse,
		Part1: day06Part1,
		Part2: day06Part2,
	}))
}

// day06Parse buckets the fish by timer value. Individual fish are
// indistinguishable, only the count per timer matters.
func day06Parse(lines []string) ([9]int64, error) {
	var timers [9]int64
	if len(lines) == 0 {
		return timers, fmt.Errorf("empty input")
	}
	for _, field := range strings.Split(lines[0], ",") {
		t, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || t < 0 || t > 8 {
			return timers, fmt.Errorf("bad timer %q", field)
		}
		timers[t]++
	}
	return timers, nil
}

func day06Simulate(timers [9]int64, days int) int64 {
	for ; days > 0; days-- {
		spawning := timers[0]
		copy(timers[:8], timers[1:])
		timers[6] += spawning
		timers[8] = spawning
	}
	var total int64
	for _, n := range timers {
		total += n
	}
	return total
}

func day06Part1(timers [9]int64) (any, error) {
	return day06Simulate(timers, 80), nil
}

func day06Part2(timers [9]int64) (any, error) {
	return day06Simulate(timers, 256), nil
}
