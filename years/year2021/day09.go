package year2021

import (
	"fmt"
	"sort"

	"github.com/vancomm/advent/internal/geom"
	"github.com/vancomm/advent/internal/grid"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[*grid.Grid[int]]{
		Year:  2021,
		Day:   9,
		Parse: grid.Digits,
		Part1: day09Part1,
		Part2: day09Part2,
	}))
}

func day09LowPoints(heights *grid.Grid[int]) []geom.V2 {
	var low []geom.V2
	for p, h := range heights.All() {
		isLow := true
		for _, q := range heights.Adjacent(p, grid.Rook) {
			if n, _ := heights.At(q); n <= h {
				isLow = false
				break
			}
		}
		if isLow {
			low = append(low, p)
		}
	}
	return low
}

func day09Part1(heights *grid.Grid[int]) (any, error) {
	risk := 0
	for _, p := range day09LowPoints(heights) {
		h, _ := heights.At(p)
		risk += h + 1
	}
	return risk, nil
}

// day09Basin flood-fills outward from a low point, stopping at height
// 9 cells. Every non-9 cell drains to exactly one low point, so the
// fills never overlap.
func day09Basin(heights *grid.Grid[int], low geom.V2, seen map[geom.V2]bool) int {
	size := 0
	stack := []geom.V2{low}
	seen[low] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, q := range heights.Adjacent(p, grid.Rook) {
			if h, _ := heights.At(q); h == 9 || seen[q] {
				continue
			}
			seen[q] = true
			stack = append(stack, q)
		}
	}
	return size
}

func day09Part2(heights *grid.Grid[int]) (any, error) {
	seen := make(map[geom.V2]bool)
	var sizes []int
	for _, low := range day09LowPoints(heights) {
		sizes = append(sizes, day09Basin(heights, low, seen))
	}
	if len(sizes) < 3 {
		return nil, fmt.Errorf("fewer than three basins")
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes[0] * sizes[1] * sizes[2], nil
}
