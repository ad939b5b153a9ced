package symkernel

// Binding maps a wildcard id to the subexpression it matched.
type Binding map[int]*Expr

// Match attempts to unify pattern (which may contain Wildcard leaves)
// against expr, returning the wildcard bindings on success. A wildcard
// matches anything the first time it is seen; every later occurrence
// of the same wildcard number must bind to a structurally identical
// (FullIdentity) subexpression, so `Plus(Wild(0), Wild(0))` only
// matches `a + a`, never `a + b`.
//
// expr is the concrete side of the match and must itself contain no
// wildcards — passing one is a caller error, not a failed match.
func Match(pattern, expr *Expr) (Binding, bool, error) {
	if len(expr.WildcardNumbers()) != 0 {
		return nil, false, matchErrorf("expression to match against contains a wildcard")
	}

	b := Binding{}
	if matchInto(pattern, expr, b) {
		return b, true, nil
	}
	return nil, false, nil
}

func matchInto(pattern, expr *Expr, b Binding) bool {
	if pattern.tag == TagWildcard {
		if existing, bound := b[pattern.wildcardNum]; bound {
			return existing.FullIdentity(expr)
		}
		b[pattern.wildcardNum] = expr
		return true
	}

	if pattern.tag != expr.tag {
		return false
	}

	switch pattern.tag {
	case TagConstant:
		return pattern.value.Equal(expr.value)
	case TagVariable:
		return string(pattern.identity) == string(expr.identity)
	default:
		pTerms, eTerms := pattern.Terms(), expr.Terms()
		for i := range pTerms {
			if !matchInto(pTerms[i], eTerms[i], b) {
				return false
			}
		}
		return true
	}
}
