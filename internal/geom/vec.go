// Package geom provides small fixed-arity integer vector types used as
// grid coordinates and geometric deltas by the puzzle solutions.
package geom

import "golang.org/x/exp/constraints"

type Vec2[T constraints.Signed] struct {
	X, Y T
}

type Vec3[T constraints.Signed] struct {
	X, Y, Z T
}

// V2 is the coordinate type used by almost every puzzle.
type V2 = Vec2[int]

type V3 = Vec3[int]

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (a Vec2[T]) Scale(k T) Vec2[T] { return Vec2[T]{a.X * k, a.Y * k} }
func (a Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-a.X, -a.Y} }
func (a Vec2[T]) Manhattan(b Vec2[T]) T { return abs(a.X-b.X) + abs(a.Y-b.Y) }
func (a Vec2[T]) Cartesian2(b Vec2[T]) T { return (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) }

// Toward returns the unit step (componentwise sign) from a to b.
func (a Vec2[T]) Toward(b Vec2[T]) Vec2[T] {
	return Vec2[T]{sign(b.X - a.X), sign(b.Y - a.Y)}
}

// Less orders vectors lexicographically, for deterministic iteration.
func (a Vec2[T]) Less(b Vec2[T]) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3[T]) Scale(k T) Vec3[T] { return Vec3[T]{a.X * k, a.Y * k, a.Z * k} }
func (a Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-a.X, -a.Y, -a.Z} }

func (a Vec3[T]) Manhattan(b Vec3[T]) T {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
}

func (a Vec3[T]) Less(b Vec3[T]) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
