// Package types implements the type system and symbol tables of the
// verifier: the five primitive types with their literal grammars,
// variables and their values, method signatures, and the scope tree.
// This package has no knowledge of statements or checking rules.
package types

// Value is the value held by a variable.
// The zero Value is unset: the variable is declared but unresolved.
//
// A set value is either a literal, the source text that matched a type
// grammar, or opaque: a value known only by its type. Method parameters
// hold opaque values since their literal is supplied by the caller.
type Value struct {
	lit string
	typ *Basic // non-nil for opaque values
	set bool
}

// LitValue returns a value holding the literal lit.
func LitValue(lit string) Value {
	return Value{lit: lit, set: true}
}

// OpaqueValue returns a value of type t whose literal is unknown.
func OpaqueValue(t *Basic) Value {
	return Value{typ: t, set: true}
}

// IsSet reports whether v holds a value.
func (v Value) IsSet() bool {
	return v.set
}

// IsOpaque reports whether v is an opaque value.
func (v Value) IsOpaque() bool {
	return v.typ != nil
}

// Lit returns the literal of v; it is empty for unset and opaque values.
func (v Value) Lit() string {
	return v.lit
}

// Type returns the type of an opaque value, or nil.
func (v Value) Type() *Basic {
	return v.typ
}

// String returns a human-readable representation of v.
func (v Value) String() string {
	switch {
	case !v.set:
		return "<unset>"
	case v.typ != nil:
		return "<" + v.typ.name + ">"
	}
	return v.lit
}
