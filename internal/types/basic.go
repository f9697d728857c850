package types

import "regexp"

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Int
	Double
	String
	Boolean
	Char
)

// Literal grammars. Each grammar must match a literal in full.
const (
	intGrammar     = `-?\d+`
	decimalGrammar = `-?\d+\.\d+`
	doubleGrammar  = intGrammar + `|` + decimalGrammar
	booleanGrammar = doubleGrammar + `|true|false` // numeric literals are booleans too
	stringGrammar  = `"[^>]*"`
	charGrammar    = `'[^>]'`
)

// Basic represents one of the primitive types: int, double, String,
// boolean and char.
type Basic struct {
	kind    BasicKind
	name    string
	grammar *regexp.Regexp
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String returns the name of the basic type.
func (b *Basic) String() string {
	return b.name
}

// CheckValue reports whether lit matches the literal grammar of b in full.
func (b *Basic) CheckValue(lit string) bool {
	return b.grammar.MatchString(lit)
}

func anchored(grammar string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + grammar + `)$`)
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Int:     {kind: Int, name: "int", grammar: anchored(intGrammar)},
	Double:  {kind: Double, name: "double", grammar: anchored(doubleGrammar)},
	String:  {kind: String, name: "String", grammar: anchored(stringGrammar)},
	Boolean: {kind: Boolean, name: "boolean", grammar: anchored(booleanGrammar)},
	Char:    {kind: Char, name: "char", grammar: anchored(charGrammar)},
}
