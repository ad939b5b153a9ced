package symkernel

// Bindings maps a Variable's identity to the numeric Value it takes
// during evaluation. Use Set to populate one from identity bytes.
type Bindings map[string]Value

// Set records the value bound to the variable with the given identity.
func (b Bindings) Set(identity []byte, v Value) {
	b[string(identity)] = v
}

// Evaluate computes e's numeric value under bindings, recursing
// through every operator node and looking up Variable leaves by
// identity. It fails if a Variable is unbound or if e contains a
// Wildcard, which has no numeric meaning.
func Evaluate(e *Expr, b Bindings) (Value, error) {
	switch e.tag {
	case TagConstant:
		return e.value, nil
	case TagVariable:
		v, ok := b[string(e.identity)]
		if !ok {
			return Value{}, evaluationErrorf("no binding for variable %q", e.Alias())
		}
		return v, nil
	case TagWildcard:
		return Value{}, evaluationErrorf("wildcards cannot be evaluated")
	}

	if e.tag.arity() == 1 {
		a, err := Evaluate(e.a, b)
		if err != nil {
			return Value{}, err
		}
		return applyUnary(e.tag, a)
	}

	a, err := Evaluate(e.a, b)
	if err != nil {
		return Value{}, err
	}
	c, err := Evaluate(e.b, b)
	if err != nil {
		return Value{}, err
	}
	return applyBinary(e.tag, a, c)
}

// applyBinary and applyUnary are the numeric counterpart of each
// operator tag, shared between Evaluate and the simplifier's
// constant-folding pass.
func applyBinary(tag Tag, a, b Value) (Value, error) {
	switch tag {
	case TagPlus:
		return addValues(a, b)
	case TagMinus:
		return subValues(a, b)
	case TagTimes:
		return mulValues(a, b)
	case TagDivide:
		return divValues(a, b)
	case TagModulo:
		return modValues(a, b)
	case TagPower:
		return powValues(a, b)
	default:
		return Value{}, evaluationErrorf("tag %s is not a binary operator", tagNames[tag])
	}
}

func applyUnary(tag Tag, a Value) (Value, error) {
	switch tag {
	case TagNeg:
		return negValue(a)
	case TagExp:
		return expValue(a)
	case TagLog:
		return logValue(a)
	case TagCos:
		return cosValue(a)
	case TagSin:
		return sinValue(a)
	case TagAbs:
		return absValue(a)
	case TagSign:
		return signValue(a)
	default:
		return Value{}, evaluationErrorf("tag %s is not a unary operator", tagNames[tag])
	}
}
