package symkernel

// Substitute rewrites every subtree of root that matches the pattern
// source with target, with target's wildcards filled in from the
// bindings captured at each match site. It walks bottom-up: children
// are rewritten before their parent is checked against source, so a
// match that only appears after an inner rewrite is still found.
//
// Every wildcard number appearing in target must also appear in
// source, otherwise the result could contain a wildcard no match site
// ever binds. A root containing a Wildcard node is also rejected:
// wildcards are pattern-only and have no rewrite of their own.
func Substitute(root, source, target *Expr) (*Expr, error) {
	sourceWildcards := source.WildcardNumbers()
	for id := range target.WildcardNumbers() {
		if _, ok := sourceWildcards[id]; !ok {
			return nil, substitutionErrorf("target references wildcard #%d not present in source", id)
		}
	}

	return substituteInto(root, source, target)
}

func substituteInto(node, source, target *Expr) (*Expr, error) {
	if node.tag == TagWildcard {
		return nil, substitutionErrorf("attempted to substitute into an expression containing a wildcard")
	}

	rewritten := node
	if node.tag.arity() > 0 {
		terms := node.Terms()
		newTerms := make([]*Expr, len(terms))
		changed := false
		for i, t := range terms {
			newTerm, err := substituteInto(t, source, target)
			if err != nil {
				return nil, err
			}
			newTerms[i] = newTerm
			if newTerm != t {
				changed = true
			}
		}
		if changed {
			if len(newTerms) == 1 {
				rewritten = unary(node.tag, newTerms[0])
			} else {
				rewritten = binary(node.tag, newTerms[0], newTerms[1])
			}
		}
	}

	binding, ok, err := Match(source, rewritten)
	if err != nil {
		return nil, err
	}
	if ok {
		result := target
		for id, repl := range binding {
			result = result.WildcardSubstitute(id, repl)
		}
		return result, nil
	}
	return rewritten, nil
}
