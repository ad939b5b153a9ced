package symkernel

// FastDiff returns the symbolic partial derivative of e with respect
// to the variable v, built by straightforward structural recursion
// over the operator tree (sum rule, product rule, quotient rule, and
// the chain rule through Power via logarithmic differentiation). The
// result is not simplified, so differentiating a deep expression
// repeatedly (as higher-order derivatives do) tends to blow up into a
// large tree full of Constant(0) and Times(1, ...) noise; use Diff
// when that noise needs to be folded away.
//
// FastDiff fails if e contains a Wildcard or Sign node anywhere along
// the path taken to differentiate it, since neither has a defined
// derivative.
func FastDiff(e, v *Expr) (*Expr, error) {
	if !e.tag.differentiable() {
		return nil, nonDifferentiableErrorf("%s is not differentiable", e.Head())
	}
	return fastDiff(e, v)
}

// Diff is FastDiff followed by Simplify: the derivative most callers
// actually want, with constant folding and the identity/zero rules
// applied so the result doesn't accumulate dead structure across
// repeated differentiation.
func Diff(e, v *Expr) (*Expr, error) {
	raw, err := FastDiff(e, v)
	if err != nil {
		return nil, err
	}
	return Simplify(raw), nil
}

func fastDiff(e, v *Expr) (*Expr, error) {
	switch e.tag {
	case TagConstant:
		return NewConstant(IntValue(0)), nil
	case TagVariable:
		if string(e.identity) == string(v.identity) {
			return NewConstant(IntValue(1)), nil
		}
		return NewConstant(IntValue(0)), nil
	case TagPlus:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		db, err := fastDiff(e.b, v)
		if err != nil {
			return nil, err
		}
		return Plus(da, db), nil
	case TagMinus:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		db, err := fastDiff(e.b, v)
		if err != nil {
			return nil, err
		}
		return Minus(da, db), nil
	case TagNeg:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		return Neg(da), nil
	case TagTimes:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		db, err := fastDiff(e.b, v)
		if err != nil {
			return nil, err
		}
		return Plus(Times(e.a, db), Times(da, e.b)), nil
	case TagDivide:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		db, err := fastDiff(e.b, v)
		if err != nil {
			return nil, err
		}
		return Divide(
			Minus(Times(da, e.b), Times(e.a, db)),
			Power(e.b, NewConstant(IntValue(2))),
		), nil
	case TagModulo:
		// The derivative of a % b is discontinuous at multiples of b;
		// the kernel follows the source's convention of treating b as
		// locally constant and differentiating only through a.
		return fastDiff(e.a, v)
	case TagPower:
		f, g := e.a, e.b
		df, err := fastDiff(f, v)
		if err != nil {
			return nil, err
		}
		dg, err := fastDiff(g, v)
		if err != nil {
			return nil, err
		}
		return Times(
			Plus(Times(Times(f, dg), LogOf(f)), Times(g, df)),
			Power(f, Minus(g, NewConstant(IntValue(1)))),
		), nil
	case TagExp:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		return Times(ExpOf(e.a), da), nil
	case TagLog:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		return Divide(da, e.a), nil
	case TagAbs:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		return Times(SignOf(e.a), da), nil
	case TagCos:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		return Neg(Times(SinOf(e.a), da)), nil
	case TagSin:
		da, err := fastDiff(e.a, v)
		if err != nil {
			return nil, err
		}
		return Times(da, CosOf(e.a)), nil
	default:
		return nil, nonDifferentiableErrorf("%s is not differentiable", e.Head())
	}
}
