package year2021

import (
	"github.com/vancomm/advent/internal/geom"
	"github.com/vancomm/advent/internal/graph"
	"github.com/vancomm/advent/internal/grid"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[*grid.Grid[int]]{
		Year:  2021,
		Day:   15,
		Parse: grid.Digits,
		Part1: day15Part1,
		Part2: day15Part2,
	}))
}

// day15Cave adapts a risk grid to the search interface. Entering a
// cell costs that cell's risk.
type day15Cave struct {
	risk *grid.Grid[int]
	goal geom.V2
}

func (c day15Cave) Neighbors(p geom.V2) []graph.Edge[geom.V2] {
	adjacent := c.risk.Adjacent(p, grid.Rook)
	edges := make([]graph.Edge[geom.V2], 0, len(adjacent))
	for _, q := range adjacent {
		r, _ := c.risk.At(q)
		edges = append(edges, graph.Edge[geom.V2]{To: q, Weight: int64(r)})
	}
	return edges
}

// Estimate is an admissible lower bound: every step costs at least 1.
func (c day15Cave) Estimate(from, to geom.V2) (int64, bool) {
	return int64(from.Manhattan(to)), true
}

func day15LowestRisk(risk *grid.Grid[int]) (int64, error) {
	cave := day15Cave{risk: risk, goal: risk.BottomRight()}
	_, total, err := graph.ShortestPath[geom.V2](cave, risk.TopLeft(), cave.goal)
	return total, err
}

// day15Enlarge tiles the cave 5x5 with risks incremented per tile and
// wrapped from 9 back to 1.
func day15Enlarge(risk *grid.Grid[int]) *grid.Grid[int] {
	w, h := risk.Width(), risk.Height()
	big, _ := grid.New(w*5, h*5, 0)
	for p, r := range risk.All() {
		for ty := 0; ty < 5; ty++ {
			for tx := 0; tx < 5; tx++ {
				v := (r+tx+ty-1)%9 + 1
				big.Set(geom.V2{X: p.X + tx*w, Y: p.Y + ty*h}, v)
			}
		}
	}
	return big
}

func day15Part1(risk *grid.Grid[int]) (any, error) {
	total, err := day15LowestRisk(risk)
	if err != nil {
		return nil, err
	}
	return total, nil
}

func day15Part2(risk *grid.Grid[int]) (any, error) {
	total, err := day15LowestRisk(day15Enlarge(risk))
	if err != nil {
		return nil, err
	}
	return total, nil
}
