// Package puzzle defines the capability interface every daily solution
// implements and the type-erased runner that lets heterogeneous puzzle
// types live in one collection.
package puzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var (
	// ErrNoCachedInput is returned by RunPart when ParseInputs was not
	// previously called for that input source.
	ErrNoCachedInput = errors.New("no cached input available; call ParseInputs first")

	// ErrNoSessionID is returned when no adventofcode.com session
	// credential is configured.
	ErrNoSessionID = errors.New("no session id configured (set AOC_SESSION_ID)")
)

// Part selects one of the two computations of a day.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

func Parts() []Part { return []Part{Part1, Part2} }

func (p Part) String() string { return fmt.Sprintf("Part %d", int(p)) }

// InputSource selects between the user's real puzzle input and a
// worked example embedded in the puzzle description.
type InputSource int

const (
	UserInput InputSource = iota
	ExampleInput
)

func (s InputSource) String() string {
	if s == ExampleInput {
		return "example"
	}
	return "user"
}

// Request identifies one input text to fetch. ExampleIndex is only
// meaningful when Source is ExampleInput.
type Request struct {
	Year, Day    int
	Source       InputSource
	ExampleIndex int
}

// Fetcher produces the input lines for a request, from cache or
// network. The download client is the production implementation.
type Fetcher interface {
	PuzzleInput(ctx context.Context, req Request) ([]string, error)
}

// Runner is the uniform, type-erased interface over one day's puzzle.
type Runner interface {
	Year() int
	Day() int

	// ParseInputs fetches and parses the input for one source, caching
	// the parsed value. Re-parsing the same source overwrites it.
	ParseInputs(ctx context.Context, f Fetcher, source InputSource, verbose bool) error

	// RunPart computes one part against the cached parsed input,
	// returning its printable result. Fails with ErrNoCachedInput when
	// ParseInputs has not run for that source.
	RunPart(part Part, source InputSource) (string, error)
}

// ExampleNotFoundError reports a worked-example index that does not
// exist in the fetched puzzle description.
type ExampleNotFoundError struct {
	Year, Day, Index int
}

func (e ExampleNotFoundError) Error() string {
	return fmt.Sprintf("%04d-12-%02d has no example block %d", e.Year, e.Day, e.Index)
}
