// Package grid implements a dense 2D container addressed by integer
// coordinates. Dimensions are fixed at construction; cells are mutated
// in place by Set and iterated in row-major order.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/vancomm/advent/internal/geom"
)

var (
	ErrRaggedLines = errors.New("grid lines must all have the same length")
	ErrEmpty       = errors.New("grid must have at least one cell")
)

type Grid[T any] struct {
	width, height int
	cells         []T
}

// Adjacency selects which neighborhood Adjacent walks.
type Adjacency int

const (
	// Rook is the four orthogonal neighbors.
	Rook Adjacency = iota
	// Queen adds the four diagonals.
	Queen
	// Region3x3 is the full 3x3 block including the center.
	Region3x3
)

var (
	rookOffsets = []geom.V2{
		{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
	}
	queenOffsets = []geom.V2{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1},
		{X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	}
	region3x3Offsets = []geom.V2{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
)

func (a Adjacency) offsets() []geom.V2 {
	switch a {
	case Queen:
		return queenOffsets
	case Region3x3:
		return region3x3Offsets
	default:
		return rookOffsets
	}
}

// New returns a width x height grid with every cell set to fill.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// FromLines builds a grid from equal-length text lines, one cell per
// rune, converting each rune with conv.
func FromLines[T any](lines []string, conv func(r rune) (T, error)) (*Grid[T], error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrEmpty
	}
	cells := make([]T, 0, width*len(lines))
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, ErrRaggedLines
		}
		for _, r := range runes {
			v, err := conv(r)
			if err != nil {
				return nil, err
			}
			cells = append(cells, v)
		}
	}
	return &Grid[T]{width: width, height: len(lines), cells: cells}, nil
}

// Runes builds a grid keeping each character as-is.
func Runes(lines []string) (*Grid[rune], error) {
	return FromLines(lines, func(r rune) (rune, error) { return r, nil })
}

// Digits builds a grid of single decimal digits.
func Digits(lines []string) (*Grid[int], error) {
	return FromLines(lines, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a digit: %q", r)
		}
		return int(r - '0'), nil
	})
}

func (g *Grid[T]) Width() int { return g.width }
func (g *Grid[T]) Height() int { return g.height }

func (g *Grid[T]) In(p geom.V2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the value at p, or ok=false when p is out of range.
func (g *Grid[T]) At(p geom.V2) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.width+p.X], true
}

// Set assigns the value at p, reporting whether p was in range.
func (g *Grid[T]) Set(p geom.V2, v T) bool {
	if !g.In(p) {
		return false
	}
	g.cells[p.Y*g.width+p.X] = v
	return true
}

func (g *Grid[T]) TopLeft() geom.V2 { return geom.V2{} }

func (g *Grid[T]) BottomRight() geom.V2 {
	return geom.V2{X: g.width - 1, Y: g.height - 1}
}

// All iterates (position, value) pairs in row-major order.
func (g *Grid[T]) All() iter.Seq2[geom.V2, T] {
	return func(yield func(geom.V2, T) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(geom.V2{X: x, Y: y}, g.cells[y*g.width+x]) {
					return
				}
			}
		}
	}
}

// Adjacent returns the in-range neighbors of p for the given adjacency.
func (g *Grid[T]) Adjacent(p geom.V2, adj Adjacency) []geom.V2 {
	offsets := adj.offsets()
	out := make([]geom.V2, 0, len(offsets))
	for _, d := range offsets {
		if q := p.Add(d); g.In(q) {
			out = append(out, q)
		}
	}
	return out
}

func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

func (g *Grid[T]) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fmt.Fprint(&b, g.cells[y*g.width+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
