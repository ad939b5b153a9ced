package symkernel

import "github.com/scigolib/symkernel/internal/numeric"

// These thin wrappers adapt internal/numeric's broadcasting arithmetic
// to the evaluator's error kind, so callers of Evaluate only ever see
// KindEvaluation rather than a mix of kinds leaking out of the numeric
// package.

func addValues(a, b Value) (Value, error) { return wrapNumericOp(numeric.Add(a, b)) }
func subValues(a, b Value) (Value, error) { return wrapNumericOp(numeric.Sub(a, b)) }
func mulValues(a, b Value) (Value, error) { return wrapNumericOp(numeric.Mul(a, b)) }
func divValues(a, b Value) (Value, error) { return wrapNumericOp(numeric.Div(a, b)) }
func modValues(a, b Value) (Value, error) { return wrapNumericOp(numeric.Mod(a, b)) }
func powValues(a, b Value) (Value, error) { return wrapNumericOp(numeric.Pow(a, b)) }

func negValue(a Value) (Value, error)  { return wrapNumericOp(numeric.Neg(a)) }
func expValue(a Value) (Value, error)  { return wrapNumericOp(numeric.ExpOf(a)) }
func logValue(a Value) (Value, error)  { return wrapNumericOp(numeric.LogOf(a)) }
func cosValue(a Value) (Value, error)  { return wrapNumericOp(numeric.CosOf(a)) }
func sinValue(a Value) (Value, error)  { return wrapNumericOp(numeric.SinOf(a)) }
func absValue(a Value) (Value, error)  { return wrapNumericOp(numeric.AbsOf(a)) }
func signValue(a Value) (Value, error) { return wrapNumericOp(numeric.SignOf(a)) }

func wrapNumericOp(v Value, err error) (Value, error) {
	if err != nil {
		return Value{}, evaluationErrorf("%s", err.Error())
	}
	return v, nil
}
