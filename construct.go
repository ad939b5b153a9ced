package symkernel

// NewConstant wraps a numeric Value as a leaf expression.
func NewConstant(v Value) *Expr {
	return &Expr{tag: TagConstant, value: v}
}

// NewVariable builds a leaf identified by identity (opaque, caller
// assigned bytes used for equality and serialization) and an optional
// human-readable alias used only for printing.
func NewVariable(identity []byte, alias string) *Expr {
	id := make([]byte, len(identity))
	copy(id, identity)
	return &Expr{tag: TagVariable, identity: id, alias: alias}
}

// Wild builds a pattern-only wildcard leaf. Wildcards are never
// differentiable and are rejected by Serialize.
func Wild(id int) *Expr {
	return &Expr{tag: TagWildcard, wildcardNum: id}
}

func unary(tag Tag, a *Expr) *Expr {
	return &Expr{tag: tag, a: a}
}

func binary(tag Tag, a, b *Expr) *Expr {
	return &Expr{tag: tag, a: a, b: b}
}

// Plus, Minus, ... build interior nodes directly from already-built
// subexpressions. Num provides the coercion these take `any` operands
// through at the call sites that need it.
func Plus(a, b *Expr) *Expr   { return binary(TagPlus, a, b) }
func Minus(a, b *Expr) *Expr  { return binary(TagMinus, a, b) }
func Neg(a *Expr) *Expr       { return unary(TagNeg, a) }
func Times(a, b *Expr) *Expr  { return binary(TagTimes, a, b) }
func Divide(a, b *Expr) *Expr { return binary(TagDivide, a, b) }
func Modulo(a, b *Expr) *Expr { return binary(TagModulo, a, b) }
func Power(a, b *Expr) *Expr  { return binary(TagPower, a, b) }
func ExpOf(a *Expr) *Expr     { return unary(TagExp, a) }
func LogOf(a *Expr) *Expr     { return unary(TagLog, a) }
func CosOf(a *Expr) *Expr     { return unary(TagCos, a) }
func SinOf(a *Expr) *Expr     { return unary(TagSin, a) }
func AbsOf(a *Expr) *Expr     { return unary(TagAbs, a) }
func SignOf(a *Expr) *Expr    { return unary(TagSign, a) }

// Num coerces a Go value into an Expr: an *Expr passes through
// unchanged, and int/int32/float64/Value operands are wrapped as
// Constant leaves. Anything else is a usage error, mirroring the
// source's sanitise-every-operand-on-the-way-in convention so operator
// helpers can accept bare numeric literals.
func Num(v interface{}) (*Expr, error) {
	switch x := v.(type) {
	case *Expr:
		return x, nil
	case Value:
		return NewConstant(x), nil
	case int:
		return NewConstant(IntValue(int32(x))), nil
	case int32:
		return NewConstant(IntValue(x)), nil
	case float64:
		return NewConstant(FloatValue(x)), nil
	default:
		return nil, typeErrorf("cannot coerce %T into an expression", v)
	}
}

func sanitisePair(a, b interface{}) (*Expr, *Expr, error) {
	ae, err := Num(a)
	if err != nil {
		return nil, nil, err
	}
	be, err := Num(b)
	if err != nil {
		return nil, nil, err
	}
	return ae, be, nil
}

// Add returns e + other, coercing other through Num.
func (e *Expr) Add(other interface{}) (*Expr, error) {
	a, b, err := sanitisePair(e, other)
	if err != nil {
		return nil, err
	}
	return Plus(a, b), nil
}

// Sub returns e - other, coercing other through Num.
func (e *Expr) Sub(other interface{}) (*Expr, error) {
	a, b, err := sanitisePair(e, other)
	if err != nil {
		return nil, err
	}
	return Minus(a, b), nil
}

// Mul returns e * other, coercing other through Num.
func (e *Expr) Mul(other interface{}) (*Expr, error) {
	a, b, err := sanitisePair(e, other)
	if err != nil {
		return nil, err
	}
	return Times(a, b), nil
}

// Quo returns e / other, coercing other through Num.
func (e *Expr) Quo(other interface{}) (*Expr, error) {
	a, b, err := sanitisePair(e, other)
	if err != nil {
		return nil, err
	}
	return Divide(a, b), nil
}

// Rem returns e % other, coercing other through Num.
func (e *Expr) Rem(other interface{}) (*Expr, error) {
	a, b, err := sanitisePair(e, other)
	if err != nil {
		return nil, err
	}
	return Modulo(a, b), nil
}

// Pow returns e ^ other, coercing other through Num.
func (e *Expr) Pow(other interface{}) (*Expr, error) {
	a, b, err := sanitisePair(e, other)
	if err != nil {
		return nil, err
	}
	return Power(a, b), nil
}

// Negate returns -e.
func (e *Expr) Negate() *Expr { return Neg(e) }
