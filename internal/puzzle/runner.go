package puzzle

import (
	"context"
	"fmt"
)

// Solution bundles the typed parse and compute steps of one day.
// New wraps it into a Runner so days with different parsed-input types
// can be stored and invoked uniformly.
type Solution[T any] struct {
	Year, Day int

	// ExampleIndex selects which worked example of the description the
	// ExampleInput source refers to. Zero is almost always right.
	ExampleIndex int

	Parse func(lines []string) (T, error)
	Part1 func(input T) (any, error)
	Part2 func(input T) (any, error)
}

type runner[T any] struct {
	sol   Solution[T]
	cache map[InputSource]T
}

// New type-erases a typed solution into a Runner. At most one parsed
// value is cached per input source.
func New[T any](sol Solution[T]) Runner {
	return &runner[T]{
		sol:   sol,
		cache: make(map[InputSource]T),
	}
}

func (r *runner[T]) Year() int { return r.sol.Year }
func (r *runner[T]) Day() int { return r.sol.Day }

func (r *runner[T]) ParseInputs(ctx context.Context, f Fetcher, source InputSource, verbose bool) error {
	req := Request{
		Year:   r.sol.Year,
		Day:    r.sol.Day,
		Source: source,
	}
	if source == ExampleInput {
		req.ExampleIndex = r.sol.ExampleIndex
	}

	lines, err := f.PuzzleInput(ctx, req)
	if err != nil {
		return err
	}
	if verbose {
		for _, line := range lines {
			Log.Debugf("parsing line %q", line)
		}
	}

	parsed, err := r.sol.Parse(lines)
	if err != nil {
		return err
	}
	r.cache[source] = parsed
	return nil
}

func (r *runner[T]) RunPart(part Part, source InputSource) (string, error) {
	input, ok := r.cache[source]
	if !ok {
		return "", ErrNoCachedInput
	}

	run := r.sol.Part1
	if part == Part2 {
		run = r.sol.Part2
	}
	result, err := run(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(result), nil
}
