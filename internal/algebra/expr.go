// Package algebra implements a small symbolic expression tree over
// integer constants and named variables, with bottom-up simplification
// and a constraint-propagation system solver.
//
// Expressions are immutable; Simplify and Substitute build new trees.
package algebra

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Expr is one node of an expression tree.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Var is a variable identifier. It doubles as the leaf expression
// referencing that variable.
type Var int

var varCounter atomic.Int64

// NewVar allocates a fresh variable identifier.
func NewVar() Var {
	return Var(varCounter.Add(1) - 1)
}

// Int is an integer literal.
type Int int64

// Op selects the operation of a Binary node.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	// OpEqual evaluates to 1 when both sides are equal, 0 otherwise.
	OpEqual
)

// Binary is a two-operand node.
type Binary struct {
	Op   Op
	L, R Expr
}

// Not evaluates to 1 when its operand is 0, and to 0 otherwise.
type Not struct {
	X Expr
}

// If selects Then when Cond is non-zero, Else otherwise.
type If struct {
	Cond, Then, Else Expr
}

type impossible struct{}

// Impossible marks a subtree no value can satisfy, such as a division
// by a literal zero.
var Impossible Expr = impossible{}

func (Var) isExpr() {}
func (Int) isExpr() {}
func (Binary) isExpr() {}
func (Not) isExpr() {}
func (If) isExpr() {}
func (impossible) isExpr() {}

func Add(a, b Expr) Expr { return Binary{Op: OpAdd, L: a, R: b} }
func Sub(a, b Expr) Expr { return Binary{Op: OpSub, L: a, R: b} }
func Mul(a, b Expr) Expr { return Binary{Op: OpMul, L: a, R: b} }
func Div(a, b Expr) Expr { return Binary{Op: OpDiv, L: a, R: b} }
func Mod(a, b Expr) Expr { return Binary{Op: OpMod, L: a, R: b} }
func Eq(a, b Expr) Expr { return Binary{Op: OpEqual, L: a, R: b} }
func Cond(c, t, e Expr) Expr { return If{Cond: c, Then: t, Else: e} }

// IsImpossible reports whether e is the impossible marker.
func IsImpossible(e Expr) bool {
	_, ok := e.(impossible)
	return ok
}

// HasVar reports whether v occurs anywhere in e.
func HasVar(e Expr, v Var) bool {
	switch n := e.(type) {
	case Var:
		return n == v
	case Binary:
		return HasVar(n.L, v) || HasVar(n.R, v)
	case Not:
		return HasVar(n.X, v)
	case If:
		return HasVar(n.Cond, v) || HasVar(n.Then, v) || HasVar(n.Else, v)
	default:
		return false
	}
}

// Vars collects every variable occurring in e.
func Vars(e Expr) map[Var]struct{} {
	out := make(map[Var]struct{})
	collectVars(e, out)
	return out
}

func collectVars(e Expr, out map[Var]struct{}) {
	switch n := e.(type) {
	case Var:
		out[n] = struct{}{}
	case Binary:
		collectVars(n.L, out)
		collectVars(n.R, out)
	case Not:
		collectVars(n.X, out)
	case If:
		collectVars(n.Cond, out)
		collectVars(n.Then, out)
		collectVars(n.Else, out)
	}
}

// Substitute returns e with every occurrence of v replaced by with.
func Substitute(e Expr, v Var, with Expr) Expr {
	switch n := e.(type) {
	case Var:
		if n == v {
			return with
		}
		return n
	case Binary:
		return Binary{Op: n.Op, L: Substitute(n.L, v, with), R: Substitute(n.R, v, with)}
	case Not:
		return Not{X: Substitute(n.X, v, with)}
	case If:
		return If{
			Cond: Substitute(n.Cond, v, with),
			Then: Substitute(n.Then, v, with),
			Else: Substitute(n.Else, v, with),
		}
	default:
		return e
	}
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEqual:
		return "=="
	default:
		return "?"
	}
}

func (v Var) String() string { return fmt.Sprintf("v%d", int(v)) }
func (n Int) String() string { return fmt.Sprintf("%d", int64(n)) }
func (impossible) String() string { return "impossible" }

func (n Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.L, n.Op, n.R)
}

func (n Not) String() string {
	return fmt.Sprintf("!%s", n.X)
}

func (n If) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", n.Cond, n.Then, n.Else)
}
