package year2015

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay01(t *testing.T) {
	tests := []struct {
		moves string
		floor any
	}{
		{"(())", 0},
		{"(((", 3},
		{"))(((((", 3},
		{"())", -1},
		{")))", -3},
	}
	for _, test := range tests {
		t.Run(test.moves, func(t *testing.T) {
			got, err := day01Part1(test.moves)
			require.NoError(t, err)
			assert.Equal(t, test.floor, got)
		})
	}

	pos, err := day01Part2("()())")
	require.NoError(t, err)
	assert.Equal(t, 5, pos)

	_, err = day01Part2("(((")
	assert.Error(t, err)
}

func TestDay02(t *testing.T) {
	boxes, err := day02Parse([]string{"2x3x4", "1x1x10"})
	require.NoError(t, err)

	paper, err := day02Part1(boxes)
	require.NoError(t, err)
	assert.Equal(t, 58+43, paper)

	ribbon, err := day02Part2(boxes)
	require.NoError(t, err)
	assert.Equal(t, 34+14, ribbon)
}

func TestDay02Malformed(t *testing.T) {
	_, err := day02Parse([]string{"2x3"})
	assert.Error(t, err)
	_, err = day02Parse([]string{"2x3xq"})
	assert.Error(t, err)
}
