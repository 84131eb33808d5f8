package year2021

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/advent/internal/grid"
)

func TestDay01(t *testing.T) {
	depths, err := day01Parse([]string{
		"199", "200", "208", "210", "200", "207", "240", "269", "260", "263",
	})
	require.NoError(t, err)

	p1, err := day01Part1(depths)
	require.NoError(t, err)
	assert.Equal(t, 7, p1)

	p2, err := day01Part2(depths)
	require.NoError(t, err)
	assert.Equal(t, 5, p2)
}

func TestDay05(t *testing.T) {
	vents, err := day05Parse([]string{
		"0,9 -> 5,9",
		"8,0 -> 0,8",
		"9,4 -> 3,4",
		"2,2 -> 2,1",
		"7,0 -> 7,4",
		"6,4 -> 2,0",
		"0,9 -> 2,9",
		"3,4 -> 1,4",
		"0,0 -> 8,8",
		"5,5 -> 8,2",
	})
	require.NoError(t, err)

	p1, err := day05Part1(vents)
	require.NoError(t, err)
	assert.Equal(t, 5, p1)

	p2, err := day05Part2(vents)
	require.NoError(t, err)
	assert.Equal(t, 12, p2)
}

func TestDay06(t *testing.T) {
	timers, err := day06Parse([]string{"3,4,3,1,2"})
	require.NoError(t, err)

	assert.Equal(t, int64(26), day06Simulate(timers, 18))

	p1, err := day06Part1(timers)
	require.NoError(t, err)
	assert.Equal(t, int64(5934), p1)

	p2, err := day06Part2(timers)
	require.NoError(t, err)
	assert.Equal(t, int64(26984457539), p2)
}

var day09Example = []string{
	"2199943210",
	"3987894921",
	"9856789892",
	"8767896789",
	"9899965678",
}

func TestDay09(t *testing.T) {
	heights, err := grid.Digits(day09Example)
	require.NoError(t, err)

	p1, err := day09Part1(heights)
	require.NoError(t, err)
	assert.Equal(t, 15, p1)

	p2, err := day09Part2(heights)
	require.NoError(t, err)
	assert.Equal(t, 1134, p2)
}

var day11Example = []string{
	"5483143223",
	"2745854711",
	"5264556173",
	"6141336146",
	"6357385478",
	"4167524645",
	"2176841721",
	"6882881134",
	"4846848554",
	"5283751526",
}

func TestDay11(t *testing.T) {
	energy, err := grid.Digits(day11Example)
	require.NoError(t, err)

	p1, err := day11Part1(energy)
	require.NoError(t, err)
	assert.Equal(t, 1656, p1)

	p2, err := day11Part2(energy)
	require.NoError(t, err)
	assert.Equal(t, 195, p2)
}

var day15Example = []string{
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
}

func TestDay15(t *testing.T) {
	risk, err := grid.Digits(day15Example)
	require.NoError(t, err)

	p1, err := day15Part1(risk)
	require.NoError(t, err)
	assert.Equal(t, int64(40), p1)

	p2, err := day15Part2(risk)
	require.NoError(t, err)
	assert.Equal(t, int64(315), p2)
}

func TestDay11StepResetsFlashed(t *testing.T) {
	energy, err := grid.Digits([]string{
		"11111",
		"19991",
		"19191",
		"19991",
		"11111",
	})
	require.NoError(t, err)

	assert.Equal(t, 9, day11Step(energy))
	assert.Equal(t, 0, day11Step(energy))
}

func TestDay09TooFewBasins(t *testing.T) {
	heights, err := grid.Digits([]string{
		"19",
		"99",
	})
	require.NoError(t, err)

	_, err = day09Part2(heights)
	assert.ErrorContains(t, err, "fewer than three basins")
}
