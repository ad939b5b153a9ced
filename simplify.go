package symkernel

import "log"

// DefaultMaxSimplifyIters bounds how many fixed-point passes Simplify
// will run before giving up and logging a warning.
const DefaultMaxSimplifyIters = 100

type rewriteRule struct {
	source, target *Expr
}

// simplificationRules is the fixed table of identity and constant-
// folding rewrites Simplify applies every pass, in order, until none
// of them change anything. Distributivity rules are deliberately
// absent: rewriting w1*w2 + w1*w3 into w1*(w2+w3) needs a canonical
// form for Plus/Times to find the shared factor reliably, which this
// kernel doesn't build.
var simplificationRules = buildSimplificationRules()

func buildSimplificationRules() []rewriteRule {
	w1, w2, w3 := Wild(1), Wild(2), Wild(3)
	zero := NewConstant(IntValue(0))
	one := NewConstant(IntValue(1))

	return []rewriteRule{
		{Plus(w1, zero), w1},
		{Plus(zero, w1), w1},
		{Times(one, w1), w1},
		{Times(w1, one), w1},
		{Minus(w1, zero), w1},
		{Divide(w1, one), w1},
		{Power(w1, one), w1},
		{Times(zero, w1), zero},
		{Times(w1, zero), zero},
		{Power(one, w1), one},
		{Power(w1, zero), one},
		{Minus(w1, Neg(w2)), Plus(w1, w2)},
		{Neg(Neg(w1)), w1},
		{Plus(w1, Neg(w2)), Minus(w1, w2)},
		{Plus(Neg(w1), w2), Minus(w2, w1)},
		{LogOf(one), zero},
		{ExpOf(zero), one},
		{Times(Power(w1, w2), Power(w1, w3)), Power(w1, Plus(w2, w3))},
		{Times(ExpOf(w1), ExpOf(w2)), ExpOf(Plus(w1, w2))},
		{Plus(LogOf(w1), LogOf(w2)), LogOf(Times(w1, w2))},
	}
}

// Simplify folds constants and applies the fixed rewrite rule table to
// a fixed point, capped at DefaultMaxSimplifyIters passes.
func Simplify(e *Expr) *Expr {
	return SimplifyWithMaxIters(e, DefaultMaxSimplifyIters)
}

// SimplifyWithMaxIters is Simplify with an explicit iteration cap.
func SimplifyWithMaxIters(e *Expr, maxIters int) *Expr {
	current := e
	for i := 0; i < maxIters; i++ {
		next := reduceConstants(current)

		for _, rule := range simplificationRules {
			rewritten, err := Substitute(next, rule.source, rule.target)
			if err != nil {
				continue
			}
			next = rewritten
		}

		if next.FullIdentity(current) {
			return next
		}
		current = next
	}

	log.Printf("symkernel: reached max_iters (=%d) in simplification", maxIters)
	return current
}

// reduceConstants folds every subtree whose operands are all already
// Constant leaves down to a single Constant, leaving everything else
// structurally unchanged.
func reduceConstants(e *Expr) *Expr {
	switch e.tag {
	case TagConstant, TagVariable, TagWildcard:
		return e
	}

	if e.tag.arity() == 1 {
		a := reduceConstants(e.a)
		if a.tag == TagConstant {
			if v, err := applyUnary(e.tag, a.value); err == nil {
				return NewConstant(v)
			}
		}
		return unary(e.tag, a)
	}

	a := reduceConstants(e.a)
	b := reduceConstants(e.b)
	if a.tag == TagConstant && b.tag == TagConstant {
		if v, err := applyBinary(e.tag, a.value, b.value); err == nil {
			return NewConstant(v)
		}
	}
	return binary(e.tag, a, b)
}
