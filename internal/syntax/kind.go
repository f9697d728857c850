// Package syntax classifies and decomposes the lines of a source file.
//
// The language is line-oriented: every line is exactly one statement, so
// there is no token stream. A line is first classified into one of the
// Kinds below by Classify and then broken into a statement node by Parse.
package syntax

import "fmt"

// Kind is the statement kind of a source line.
type Kind uint8

const (
	Invalid Kind = iota // no classification rule matched

	Declaration     // [final] int x = 5;
	Assignment      // x = 5;
	MethodSignature // void foo(int a) {
	MethodCall      // foo(5);
	Condition       // if (a || b) {
	EmptyLine       //
	Comment         // // text
	CloseScope      // }
	Return          // return;

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	Invalid:         "Invalid",
	Declaration:     "Declaration",
	Assignment:      "Assignment",
	MethodSignature: "MethodSignature",
	MethodCall:      "MethodCall",
	Condition:       "Condition",
	EmptyLine:       "EmptyLine",
	Comment:         "Comment",
	CloseScope:      "CloseScope",
	Return:          "Return",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// OpensScope reports whether lines of kind k open a new scope.
func (k Kind) OpensScope() bool {
	return k == MethodSignature || k == Condition
}

// Keyword spellings.
const (
	kwFinal  = "final"
	kwVoid   = "void"
	kwIf     = "if"
	kwWhile  = "while"
	kwReturn = "return"
	kwTrue   = "true"
	kwFalse  = "false"
)

// TypeNames lists the primitive type keywords.
var TypeNames = [...]string{"int", "double", "String", "boolean", "char"}

// keywords holds every reserved word of the language.
var keywords = map[string]bool{
	"int":     true,
	"double":  true,
	"String":  true,
	"boolean": true,
	"char":    true,
	kwFinal:   true,
	kwVoid:    true,
	kwIf:      true,
	kwWhile:   true,
	kwReturn:  true,
	kwTrue:    true,
	kwFalse:   true,
}

// IsKeyword reports whether word is a reserved word.
func IsKeyword(word string) bool {
	return keywords[word]
}

// IsTypeName reports whether word names a primitive type.
func IsTypeName(word string) bool {
	for _, name := range TypeNames {
		if word == name {
			return true
		}
	}
	return false
}
