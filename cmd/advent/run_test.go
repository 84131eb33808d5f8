package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

type staticFetcher struct {
	lines map[int][]string
}

func (f staticFetcher) PuzzleInput(_ context.Context, req puzzle.Request) ([]string, error) {
	lines, ok := f.lines[req.Day]
	if !ok {
		return nil, fmt.Errorf("no input for day %d", req.Day)
	}
	return lines, nil
}

func init() {
	// Throwaway solutions under a year no real solution uses.
	for _, day := range []int{1, 3, 5} {
		registry.Register(puzzle.New(puzzle.Solution[int]{
			Year:  1999,
			Day:   day,
			Parse: func(lines []string) (int, error) { return len(lines), nil },
			Part1: func(n int) (any, error) { return n, nil },
			Part2: func(n int) (any, error) { return nil, fmt.Errorf("part 2 unsolved") },
		}))
	}
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	fetcher := staticFetcher{lines: map[int][]string{
		1: {"a", "b"},
		3: {"c"},
	}}

	var out strings.Builder
	runBatch(context.Background(), &out, fetcher, 1999, []int{1, 2, 5, 3}, puzzle.UserInput)
	got := out.String()

	// A failing part is printed and the other part still runs.
	assert.Contains(t, got, "1999-12-01, Part 1\n  2\n")
	assert.Contains(t, got, "1999-12-01, Part 2\n  error: part 2 unsolved\n")

	// An unregistered day and a day with no input are reported without
	// stopping the batch.
	assert.Contains(t, got, "1999-12-02\n  error: puzzle 1999-12-02 is not registered\n")
	assert.Contains(t, got, "1999-12-05\n  error: parsing user input: no input for day 5\n")

	// The last selected day still ran after the failures before it.
	assert.Contains(t, got, "1999-12-03, Part 1\n  1\n")
	assert.Less(t, strings.Index(got, "1999-12-05"), strings.Index(got, "1999-12-03"))
}
