package year2022

import (
	"fmt"

	"github.com/vancomm/advent/internal/geom"
	"github.com/vancomm/advent/internal/graph"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[*day18Lava]{
		Year:  2022,
		Day:   18,
		Parse: day18Parse,
		Part1: day18Part1,
		Part2: day18Part2,
	}))
}

var day18Faces = []geom.V3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// day18Lava holds the lava droplet voxels and a bounding box padded by
// one cell of air on every side, so all exterior air is connected.
type day18Lava struct {
	voxels   map[geom.V3]bool
	min, max geom.V3
}

func day18Parse(lines []string) (*day18Lava, error) {
	lava := &day18Lava{voxels: make(map[geom.V3]bool, len(lines))}
	for i, line := range lines {
		var v geom.V3
		if _, err := fmt.Sscanf(line, "%d,%d,%d", &v.X, &v.Y, &v.Z); err != nil {
			return nil, fmt.Errorf("bad voxel line %q: %w", line, err)
		}
		lava.voxels[v] = true
		if i == 0 {
			lava.min, lava.max = v, v
			continue
		}
		lava.min = geom.V3{X: min(lava.min.X, v.X), Y: min(lava.min.Y, v.Y), Z: min(lava.min.Z, v.Z)}
		lava.max = geom.V3{X: max(lava.max.X, v.X), Y: max(lava.max.Y, v.Y), Z: max(lava.max.Z, v.Z)}
	}
	if len(lava.voxels) == 0 {
		return nil, fmt.Errorf("no voxels")
	}
	one := geom.V3{X: 1, Y: 1, Z: 1}
	lava.min = lava.min.Sub(one)
	lava.max = lava.max.Add(one)
	return lava, nil
}

func (l *day18Lava) inBounds(p geom.V3) bool {
	return p.X >= l.min.X && p.X <= l.max.X &&
		p.Y >= l.min.Y && p.Y <= l.max.Y &&
		p.Z >= l.min.Z && p.Z <= l.max.Z
}

// Neighbors walks the air cells around the droplet, never entering a
// lava voxel or leaving the padded bounding box.
func (l *day18Lava) Neighbors(p geom.V3) []graph.Edge[geom.V3] {
	var edges []graph.Edge[geom.V3]
	for _, face := range day18Faces {
		q := p.Add(face)
		if l.inBounds(q) && !l.voxels[q] {
			edges = append(edges, graph.Edge[geom.V3]{To: q, Weight: 1})
		}
	}
	return edges
}

func day18Part1(lava *day18Lava) (any, error) {
	surface := 0
	for v := range lava.voxels {
		for _, face := range day18Faces {
			if !lava.voxels[v.Add(face)] {
				surface++
			}
		}
	}
	return surface, nil
}

func day18Part2(lava *day18Lava) (any, error) {
	outside := make(map[geom.V3]bool)
	for p := range graph.Search[geom.V3](lava, lava.min, nil) {
		outside[p] = true
	}

	surface := 0
	for v := range lava.voxels {
		for _, face := range day18Faces {
			if outside[v.Add(face)] {
				surface++
			}
		}
	}
	return surface, nil
}
