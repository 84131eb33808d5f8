package year2015

import (
	"fmt"
	"strings"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[string]{
		Year:  2015,
		Day:   1,
		Parse: day01Parse,
		Part1: day01Part1,
		Part2: day01Part2,
	}))
}

func day01Parse(lines []string) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("empty input")
	}
	return strings.TrimSpace(lines[0]), nil
}

func day01Part1(moves string) (any, error) {
	floor := 0
	for _, c := range moves {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	return floor, nil
}

func day01Part2(moves string) (any, error) {
	floor := 0
	for i, c := range moves {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
		if floor == -1 {
			return i + 1, nil
		}
	}
	return nil, fmt.Errorf("never entered the basement")
}
