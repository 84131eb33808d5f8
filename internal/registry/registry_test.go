package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/advent/internal/puzzle"
)

type stubRunner struct {
	year, day int
}

func (s stubRunner) Year() int { return s.year }
func (s stubRunner) Day() int { return s.day }

func (s stubRunner) ParseInputs(context.Context, puzzle.Fetcher, puzzle.InputSource, bool) error {
	return nil
}

func (s stubRunner) RunPart(puzzle.Part, puzzle.InputSource) (string, error) {
	return "", nil
}

func withEmptyRegistry(t *testing.T) {
	t.Helper()
	saved := puzzles
	puzzles = make(map[ID]puzzle.Runner)
	t.Cleanup(func() { puzzles = saved })
}

func TestRegisterAndLookup(t *testing.T) {
	withEmptyRegistry(t)

	Register(stubRunner{2021, 5})
	Register(stubRunner{2021, 1})
	Register(stubRunner{2015, 2})

	r, err := Lookup(2021, 5)
	require.NoError(t, err)
	assert.Equal(t, 2021, r.Year())
	assert.Equal(t, 5, r.Day())

	_, err = Lookup(2021, 3)
	assert.ErrorContains(t, err, "2021-12-03")
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	withEmptyRegistry(t)

	Register(stubRunner{2022, 1})
	assert.Panics(t, func() {
		Register(stubRunner{2022, 1})
	})
}

func TestAllSorted(t *testing.T) {
	withEmptyRegistry(t)

	Register(stubRunner{2022, 1})
	Register(stubRunner{2015, 2})
	Register(stubRunner{2015, 1})
	Register(stubRunner{2021, 9})

	var got []ID
	for _, r := range All() {
		got = append(got, ID{r.Year(), r.Day()})
	}
	assert.Equal(t, []ID{{2015, 1}, {2015, 2}, {2021, 9}, {2022, 1}}, got)
}

func TestYearsAndLatest(t *testing.T) {
	withEmptyRegistry(t)

	_, err := LatestYear()
	assert.Error(t, err)

	Register(stubRunner{2021, 6})
	Register(stubRunner{2021, 15})
	Register(stubRunner{2015, 1})

	assert.Equal(t, []int{2015, 2021}, Years())

	year, err := LatestYear()
	require.NoError(t, err)
	assert.Equal(t, 2021, year)

	day, err := LatestDay(2021)
	require.NoError(t, err)
	assert.Equal(t, 15, day)

	_, err = LatestDay(2019)
	assert.ErrorContains(t, err, "2019")

	assert.Equal(t, []int{6, 15}, Days(2021))
}

func TestVerify(t *testing.T) {
	withEmptyRegistry(t)

	Register(stubRunner{2021, 1})

	assert.NoError(t, Verify([]ID{{2021, 1}}))
	assert.ErrorContains(t, Verify([]ID{{2021, 1}, {2021, 2}}), "2021-12-02")
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "2015-12-03", ID{2015, 3}.String())
}
