package algebra

// Simplify rewrites e bottom-up: constant pairs are folded per ordinary
// integer arithmetic (division truncates toward zero), operator
// identities are eliminated, and division or modulo by a literal zero
// collapses to the Impossible marker. A simplified tree never contains
// a composite node whose inputs are all constants, and Simplify is
// idempotent.
func Simplify(e Expr) Expr {
	switch n := e.(type) {
	case Binary:
		return simplifyBinary(n.Op, Simplify(n.L), Simplify(n.R))
	case Not:
		return simplifyNot(Simplify(n.X))
	case If:
		return simplifyIf(Simplify(n.Cond), Simplify(n.Then), Simplify(n.Else))
	default:
		return e
	}
}

func simplifyBinary(op Op, a, b Expr) Expr {
	if IsImpossible(a) || IsImpossible(b) {
		return Impossible
	}
	ca, aConst := a.(Int)
	cb, bConst := b.(Int)

	switch op {
	case OpAdd:
		switch {
		case aConst && bConst:
			return ca + cb
		case aConst && ca == 0:
			return b
		case bConst && cb == 0:
			return a
		}
	case OpSub:
		switch {
		case aConst && bConst:
			return ca - cb
		case aConst && ca == 0:
			return Mul(Int(-1), b)
		case bConst && cb == 0:
			return a
		}
	case OpMul:
		switch {
		case aConst && bConst:
			return ca * cb
		case aConst && ca == 1:
			return b
		case bConst && cb == 1:
			return a
		case aConst && ca == 0, bConst && cb == 0:
			return Int(0)
		}
	case OpDiv:
		switch {
		case bConst && cb == 0:
			return Impossible
		case aConst && bConst:
			return ca / cb
		case bConst && cb == 1:
			return a
		case aConst && ca == 0:
			return Int(0)
		}
	case OpMod:
		switch {
		case bConst && cb == 0:
			return Impossible
		case aConst && bConst:
			return ca % cb
		case bConst && cb == 1:
			return Int(0)
		case aConst && ca == 0:
			return Int(0)
		case aConst && ca == 1:
			return Int(1)
		}
	case OpEqual:
		switch {
		case aConst && bConst:
			if ca == cb {
				return Int(1)
			}
			return Int(0)
		case bConst && cb == 0:
			return Not{X: a}
		case aConst && ca == 0:
			return Not{X: b}
		}
	}
	return Binary{Op: op, L: a, R: b}
}

func simplifyNot(x Expr) Expr {
	if IsImpossible(x) {
		return Impossible
	}
	if c, ok := x.(Int); ok {
		if c == 0 {
			return Int(1)
		}
		return Int(0)
	}
	// Not(Not(x)) is left alone: it normalizes x to 0 or 1, so
	// unwrapping it would change the value for any x outside {0, 1}.
	return Not{X: x}
}

func simplifyIf(cond, then, els Expr) Expr {
	if IsImpossible(cond) {
		return Impossible
	}
	if c, ok := cond.(Int); ok {
		if c == 0 {
			return els
		}
		return then
	}
	return If{Cond: cond, Then: then, Else: els}
}
