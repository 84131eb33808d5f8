package puzzle

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetLevel(logrus.ErrorLevel)
	m.Run()
}

// fakeFetcher serves canned lines per input source.
type fakeFetcher struct {
	user    []string
	example []string
	err     error
	calls   []Request
}

func (f *fakeFetcher) PuzzleInput(_ context.Context, req Request) ([]string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	if req.Source == ExampleInput {
		return f.example, nil
	}
	return f.user, nil
}

func sumSolution() Solution[[]int] {
	return Solution[[]int]{
		Year: 2021,
		Day:  1,
		Parse: func(lines []string) ([]int, error) {
			out := make([]int, 0, len(lines))
			for _, line := range lines {
				v, err := strconv.Atoi(line)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		},
		Part1: func(in []int) (any, error) {
			total := 0
			for _, v := range in {
				total += v
			}
			return total, nil
		},
		Part2: func(in []int) (any, error) {
			return len(in), nil
		},
	}
}

func TestRunnerRoundTrip(t *testing.T) {
	r := New(sumSolution())
	f := &fakeFetcher{user: []string{"1", "2", "3"}, example: []string{"10", "20"}}

	require.NoError(t, r.ParseInputs(context.Background(), f, UserInput, false))
	require.NoError(t, r.ParseInputs(context.Background(), f, ExampleInput, false))

	got, err := r.RunPart(Part1, UserInput)
	require.NoError(t, err)
	assert.Equal(t, "6", got)

	got, err = r.RunPart(Part1, ExampleInput)
	require.NoError(t, err)
	assert.Equal(t, "30", got)

	got, err = r.RunPart(Part2, UserInput)
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestRunPartWithoutParseFails(t *testing.T) {
	r := New(sumSolution())

	_, err := r.RunPart(Part1, UserInput)
	assert.ErrorIs(t, err, ErrNoCachedInput)

	// Parsing one source does not populate the other.
	f := &fakeFetcher{user: []string{"1"}}
	require.NoError(t, r.ParseInputs(context.Background(), f, UserInput, false))
	_, err = r.RunPart(Part1, ExampleInput)
	assert.ErrorIs(t, err, ErrNoCachedInput)
}

func TestParseInputsOverwritesCache(t *testing.T) {
	r := New(sumSolution())
	f := &fakeFetcher{user: []string{"1", "2"}}

	require.NoError(t, r.ParseInputs(context.Background(), f, UserInput, false))
	f.user = []string{"5", "5", "5"}
	require.NoError(t, r.ParseInputs(context.Background(), f, UserInput, false))

	got, err := r.RunPart(Part1, UserInput)
	require.NoError(t, err)
	assert.Equal(t, "15", got)
}

func TestParseInputsPropagatesErrors(t *testing.T) {
	r := New(sumSolution())

	fetchErr := errors.New("boom")
	err := r.ParseInputs(context.Background(), &fakeFetcher{err: fetchErr}, UserInput, false)
	assert.ErrorIs(t, err, fetchErr)

	err = r.ParseInputs(context.Background(), &fakeFetcher{user: []string{"nope"}}, UserInput, false)
	assert.Error(t, err)
	_, err = r.RunPart(Part1, UserInput)
	assert.ErrorIs(t, err, ErrNoCachedInput)
}

func TestExampleIndexForwarded(t *testing.T) {
	sol := sumSolution()
	sol.ExampleIndex = 2
	r := New(sol)

	f := &fakeFetcher{example: []string{"1"}}
	require.NoError(t, r.ParseInputs(context.Background(), f, ExampleInput, false))

	require.Len(t, f.calls, 1)
	assert.Equal(t, Request{
		Year: 2021, Day: 1, Source: ExampleInput, ExampleIndex: 2,
	}, f.calls[0])

	// The user-input request carries no example index.
	f.user = []string{"1"}
	require.NoError(t, r.ParseInputs(context.Background(), f, UserInput, false))
	assert.Equal(t, Request{Year: 2021, Day: 1, Source: UserInput}, f.calls[1])
}
