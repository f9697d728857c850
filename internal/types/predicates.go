package types

// Predicates over basic types and values.

// IsNumeric reports whether t is int or double.
func IsNumeric(t *Basic) bool {
	return t != nil && (t.kind == Int || t.kind == Double)
}

// Subsumes reports whether every literal of t is also a literal of b.
// Grammars nest: int inside double inside boolean.
func (b *Basic) Subsumes(t *Basic) bool {
	switch b.kind {
	case Boolean:
		return IsNumeric(t) || t.kind == Boolean
	case Double:
		return IsNumeric(t)
	}
	return b.kind == t.kind
}

// Accepts reports whether a variable of type b may hold v.
// Literal values are matched against b's grammar; opaque values are
// accepted when their type is subsumed by b. An unset value is never
// accepted.
func (b *Basic) Accepts(v Value) bool {
	switch {
	case !v.IsSet():
		return false
	case v.IsOpaque():
		return b.Subsumes(v.Type())
	}
	return b.CheckValue(v.Lit())
}
