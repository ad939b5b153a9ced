package symkernel

// Tag discriminates the tagged-variant Expr type. Ordinals 1..15 match
// the wire format exactly; Wildcard has no wire ordinal and is never
// serialized.
type Tag uint8

const (
	TagConstant Tag = 1
	TagVariable Tag = 2
	TagPlus     Tag = 3
	TagMinus    Tag = 4
	TagNeg      Tag = 5
	TagTimes    Tag = 6
	TagDivide   Tag = 7
	TagModulo   Tag = 8
	TagPower    Tag = 9
	TagExp      Tag = 10
	TagLog      Tag = 11
	TagCos      Tag = 12
	TagSin      Tag = 13
	TagAbs      Tag = 14
	TagSign     Tag = 15

	// TagWildcard is pattern-only and carries no wire ordinal.
	TagWildcard Tag = 255
)

var tagNames = map[Tag]string{
	TagConstant: "Constant",
	TagVariable: "Variable",
	TagPlus:     "Plus",
	TagMinus:    "Minus",
	TagNeg:      "Neg",
	TagTimes:    "Times",
	TagDivide:   "Divide",
	TagModulo:   "Modulo",
	TagPower:    "Power",
	TagExp:      "Exp",
	TagLog:      "Log",
	TagCos:      "Cos",
	TagSin:      "Sin",
	TagAbs:      "Abs",
	TagSign:     "Sign",
	TagWildcard: "Wildcard",
}

// arity reports how many child expressions a node of this tag owns.
func (t Tag) arity() int {
	switch t {
	case TagConstant, TagVariable, TagWildcard:
		return 0
	case TagNeg, TagExp, TagLog, TagCos, TagSin, TagAbs, TagSign:
		return 1
	default:
		return 2
	}
}

// differentiable reports whether diff() is defined for nodes of this tag.
func (t Tag) differentiable() bool {
	return t != TagWildcard && t != TagSign
}

// tagFromOrdinal maps a wire ordinal back to a Tag; ok is false for an
// unknown or unserializable ordinal.
func tagFromOrdinal(ordinal byte) (Tag, bool) {
	t := Tag(ordinal)
	if t == TagWildcard {
		return 0, false
	}
	if _, known := tagNames[t]; !known {
		return 0, false
	}
	return t, true
}
