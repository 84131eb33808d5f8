package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/advent/internal/geom"
)

func TestDigitsLookup(t *testing.T) {
	lines := []string{
		"219",
		"398",
	}
	g, err := Digits(lines)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	for y, line := range lines {
		for x, r := range line {
			v, ok := g.At(geom.V2{X: x, Y: y})
			require.True(t, ok)
			assert.Equal(t, int(r-'0'), v)
		}
	}

	for _, p := range []geom.V2{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 2},
	} {
		_, ok := g.At(p)
		assert.False(t, ok, "lookup at %v should fail", p)
	}
}

func TestFromLinesErrors(t *testing.T) {
	_, err := Runes(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Runes([]string{"abc", "ab"})
	assert.ErrorIs(t, err, ErrRaggedLines)

	_, err = Digits([]string{"12", "3x"})
	assert.Error(t, err)
}

func TestNewAndSet(t *testing.T) {
	g, err := New(2, 2, 7)
	require.NoError(t, err)

	v, ok := g.At(geom.V2{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 7, v)

	assert.True(t, g.Set(geom.V2{X: 0, Y: 1}, 42))
	v, _ = g.At(geom.V2{X: 0, Y: 1})
	assert.Equal(t, 42, v)

	assert.False(t, g.Set(geom.V2{X: 2, Y: 0}, 1))

	_, err = New[int](0, 3, 0)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAllRowMajor(t *testing.T) {
	g, err := Digits([]string{"12", "34"})
	require.NoError(t, err)

	var ps []geom.V2
	var vs []int
	for p, v := range g.All() {
		ps = append(ps, p)
		vs = append(vs, v)
	}
	assert.Equal(t, []geom.V2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}, ps)
	assert.Equal(t, []int{1, 2, 3, 4}, vs)
}

func TestAdjacent(t *testing.T) {
	g, err := New(3, 3, 0)
	require.NoError(t, err)

	center := geom.V2{X: 1, Y: 1}
	corner := geom.V2{X: 0, Y: 0}

	assert.Len(t, g.Adjacent(center, Rook), 4)
	assert.Len(t, g.Adjacent(center, Queen), 8)
	assert.Len(t, g.Adjacent(center, Region3x3), 9)

	assert.ElementsMatch(t, []geom.V2{
		{X: 1, Y: 0}, {X: 0, Y: 1},
	}, g.Adjacent(corner, Rook))
	assert.Len(t, g.Adjacent(corner, Queen), 3)
}

func TestString(t *testing.T) {
	g, err := Digits([]string{"12", "34"})
	require.NoError(t, err)
	assert.Equal(t, "12\n34\n", g.String())
}
