package year2022

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/advent/internal/algebra"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[day21Monkeys]{
		Year:  2022,
		Day:   21,
		Parse: day21Parse,
		Part1: day21Part1,
		Part2: day21Part2,
	}))
}

type day21Job struct {
	num         int64
	op          algebra.Op
	left, right string
	isNum       bool
}

type day21Monkeys map[string]day21Job

func day21Parse(lines []string) (day21Monkeys, error) {
	monkeys := make(day21Monkeys, len(lines))
	for _, line := range lines {
		name, job, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("bad monkey line %q", line)
		}
		if n, err := strconv.ParseInt(job, 10, 64); err == nil {
			monkeys[name] = day21Job{num: n, isNum: true}
			continue
		}
		fields := strings.Fields(job)
		if len(fields) != 3 {
			return nil, fmt.Errorf("bad monkey job %q", line)
		}
		var op algebra.Op
		switch fields[1] {
		case "+":
			op = algebra.OpAdd
		case "-":
			op = algebra.OpSub
		case "*":
			op = algebra.OpMul
		case "/":
			op = algebra.OpDiv
		default:
			return nil, fmt.Errorf("bad monkey operator %q", fields[1])
		}
		monkeys[name] = day21Job{op: op, left: fields[0], right: fields[2]}
	}
	if _, ok := monkeys["root"]; !ok {
		return nil, fmt.Errorf("no root monkey")
	}
	return monkeys, nil
}

// day21Expr builds the expression a monkey yells, treating every name
// in vars as a free variable instead of its job.
func day21Expr(monkeys day21Monkeys, name string, vars map[string]algebra.Var) (algebra.Expr, error) {
	if v, ok := vars[name]; ok {
		return v, nil
	}
	job, ok := monkeys[name]
	if !ok {
		return nil, fmt.Errorf("unknown monkey %q", name)
	}
	if job.isNum {
		return algebra.Int(job.num), nil
	}
	left, err := day21Expr(monkeys, job.left, vars)
	if err != nil {
		return nil, err
	}
	right, err := day21Expr(monkeys, job.right, vars)
	if err != nil {
		return nil, err
	}
	return algebra.Binary{Op: job.op, L: left, R: right}, nil
}

func day21Part1(monkeys day21Monkeys) (any, error) {
	expr, err := day21Expr(monkeys, "root", nil)
	if err != nil {
		return nil, err
	}
	result, ok := algebra.Simplify(expr).(algebra.Int)
	if !ok {
		return nil, fmt.Errorf("root does not reduce to a number")
	}
	return int64(result), nil
}

func day21Part2(monkeys day21Monkeys) (any, error) {
	root := monkeys["root"]
	if root.isNum {
		return nil, fmt.Errorf("root yells a plain number")
	}

	humn := algebra.NewVar()
	vars := map[string]algebra.Var{"humn": humn}

	left, err := day21Expr(monkeys, root.left, vars)
	if err != nil {
		return nil, err
	}
	right, err := day21Expr(monkeys, root.right, vars)
	if err != nil {
		return nil, err
	}

	// The sides are simplified separately so the equality itself is
	// never folded away.
	eq := algebra.Eq(algebra.Simplify(left), algebra.Simplify(right))
	result, err := day21Isolate(eq, humn)
	if err != nil {
		return nil, err
	}
	return int64(result), nil
}

// day21Isolate peels arithmetic off the variable side of an equality
// one operation at a time until the variable stands alone. The other
// operand of each peeled operation must already be constant, which
// holds whenever the variable occurs exactly once in the tree.
func day21Isolate(eq algebra.Expr, v algebra.Var) (algebra.Int, error) {
	rel, ok := eq.(algebra.Binary)
	if !ok || rel.Op != algebra.OpEqual {
		return 0, fmt.Errorf("expected an equality, got %s", eq)
	}

	varSide, target := rel.L, rel.R
	if !algebra.HasVar(varSide, v) {
		varSide, target = rel.R, rel.L
	}
	if !algebra.HasVar(varSide, v) || algebra.HasVar(target, v) {
		return 0, fmt.Errorf("variable must occur on exactly one side of %s", eq)
	}

	for {
		if got, ok := varSide.(algebra.Var); ok && got == v {
			result, ok := algebra.Simplify(target).(algebra.Int)
			if !ok {
				return 0, fmt.Errorf("solution %s is not a constant", target)
			}
			return result, nil
		}
		b, ok := varSide.(algebra.Binary)
		if !ok {
			return 0, fmt.Errorf("cannot invert %s", varSide)
		}
		if algebra.HasVar(b.L, v) {
			switch b.Op {
			case algebra.OpAdd:
				target = algebra.Sub(target, b.R)
			case algebra.OpSub:
				target = algebra.Add(target, b.R)
			case algebra.OpMul:
				target = algebra.Div(target, b.R)
			case algebra.OpDiv:
				target = algebra.Mul(target, b.R)
			default:
				return 0, fmt.Errorf("cannot invert operator %s", b.Op)
			}
			varSide = b.L
		} else {
			switch b.Op {
			case algebra.OpAdd:
				target = algebra.Sub(target, b.L)
			case algebra.OpSub:
				target = algebra.Sub(b.L, target)
			case algebra.OpMul:
				target = algebra.Div(target, b.L)
			case algebra.OpDiv:
				target = algebra.Div(b.L, target)
			default:
				return 0, fmt.Errorf("cannot invert operator %s", b.Op)
			}
			varSide = b.R
		}
		target = algebra.Simplify(target)
	}
}
