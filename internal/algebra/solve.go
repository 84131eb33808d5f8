package algebra

import "sort"

// Solution is the result of SolveSystem: a closed-form definition per
// solved variable, plus the constraints that could not be reduced to a
// single-variable assignment before the fixed point was reached.
type Solution struct {
	Definitions map[Var]Expr
	Leftover    []Expr
}

// SolveFor rewrites e so that v appears alone on one side, returning
// the other side. It succeeds only when v occurs on exactly one side
// of the top-level relation and only a small set of invertible
// constructs (the bare variable, an equality tested against one, a
// logical not) need unwrapping; ok=false otherwise.
func SolveFor(e Expr, v Var) (Expr, bool) {
	solved, ok := solveFor(v, e, Int(1))
	if !ok {
		return nil, false
	}
	return Simplify(solved), true
}

func solveFor(v Var, left, right Expr) (Expr, bool) {
	var varSide, constSide Expr
	switch l, r := HasVar(left, v), HasVar(right, v); {
	case l && !r:
		varSide, constSide = left, right
	case r && !l:
		varSide, constSide = right, left
	default:
		return nil, false
	}

	if IsImpossible(varSide) || IsImpossible(constSide) {
		return nil, false
	}

	switch n := varSide.(type) {
	case Var:
		return constSide, true
	case Binary:
		if c, ok := constSide.(Int); n.Op == OpEqual && ok && c == 1 {
			return solveFor(v, n.L, n.R)
		}
	case Not:
		return solveFor(v, n.X, Not{X: constSide})
	}
	return nil, false
}

// SolveSystem repeatedly scans the given equality constraints for one
// from which a still-unknown variable can be isolated, preferring the
// greatest variable identifier when several are isolable. Each new
// definition is substituted into every pending constraint and every
// prior definition. The loop halts once every remaining constraint has
// been retried since the last success with none succeeding; those
// constraints are returned unresolved rather than as an error.
func SolveSystem(constraints []Expr, known []Var) Solution {
	definitions := make(map[Var]Expr, len(known))
	for _, v := range known {
		definitions[v] = v
	}

	pending := make([]Expr, len(constraints))
	copy(pending, constraints)
	sinceSuccess := 0

	for len(pending) > 0 && sinceSuccess < len(pending) {
		eq := pending[0]
		pending = pending[1:]

		v, def, ok := isolateAny(eq, definitions)
		if !ok {
			// Requeue; a later substitution may unlock it.
			pending = append(pending, eq)
			sinceSuccess++
			continue
		}

		Log.Debugf("solved %s = %s", v, def)

		for i, prev := range pending {
			if HasVar(prev, v) {
				pending[i] = Simplify(Substitute(prev, v, def))
			}
		}
		for prevVar, prev := range definitions {
			if HasVar(prev, v) {
				definitions[prevVar] = Simplify(Substitute(prev, v, def))
			}
		}
		definitions[v] = def
		sinceSuccess = 0
	}

	return Solution{Definitions: definitions, Leftover: pending}
}

func isolateAny(eq Expr, definitions map[Var]Expr) (Var, Expr, bool) {
	var candidates []Var
	for v := range Vars(eq) {
		if _, done := definitions[v]; !done {
			candidates = append(candidates, v)
		}
	}
	// Greatest identifier first.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] > candidates[j] })

	for _, v := range candidates {
		if def, ok := SolveFor(eq, v); ok {
			return v, def, true
		}
	}
	return 0, nil, false
}
