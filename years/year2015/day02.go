package year2015

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[]day02Box]{
		Year:  2015,
		Day:   2,
		Parse: day02Parse,
		Part1: day02Part1,
		Part2: day02Part2,
	}))
}

// day02Box keeps its dimensions sorted ascending, so [0] and [1] are
// always the two smallest sides.
type day02Box [3]int

func day02Parse(lines []string) ([]day02Box, error) {
	boxes := make([]day02Box, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "x")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed box %q", line)
		}
		var box day02Box
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("malformed box %q: %w", line, err)
			}
			box[i] = n
		}
		sort.Ints(box[:])
		boxes = append(boxes, box)
	}
	return boxes, nil
}

func day02Part1(boxes []day02Box) (any, error) {
	total := 0
	for _, b := range boxes {
		l, w, h := b[0], b[1], b[2]
		total += 2*l*w + 2*w*h + 2*h*l + l*w
	}
	return total, nil
}

func day02Part2(boxes []day02Box) (any, error) {
	total := 0
	for _, b := range boxes {
		total += 2*(b[0]+b[1]) + b[0]*b[1]*b[2]
	}
	return total, nil
}
