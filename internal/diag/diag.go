// Package diag defines the faults reported by the verifier.
//
// Every check in the verifier either succeeds or fails with exactly one
// Kind. The first fault stops verification; the fault is reported as an
// *Error carrying the kind and the 1-based line it was detected on.
package diag

import (
	"errors"
	"fmt"
)

// Kind identifies a verification fault.
type Kind uint8

const (
	_ Kind = iota // the zero Kind is not a fault

	InvalidSyntax
	InvalidType
	InvalidVariableName
	InvalidCondition
	InvalidMethodCall
	InvalidMethodStructure
	InvalidScope
	DuplicateVariable
	FinalAssignmentMissing
	FinalReassignment
	IncompatibleValueType
	UndeclaredVariable
	UninitializedVariable

	kindCount
)

var kindNames = [...]string{
	InvalidSyntax:          "InvalidSyntax",
	InvalidType:            "InvalidType",
	InvalidVariableName:    "InvalidVariableName",
	InvalidCondition:       "InvalidCondition",
	InvalidMethodCall:      "InvalidMethodCall",
	InvalidMethodStructure: "InvalidMethodStructure",
	InvalidScope:           "InvalidScope",
	DuplicateVariable:      "DuplicateVariable",
	FinalAssignmentMissing: "FinalAssignmentMissing",
	FinalReassignment:      "FinalReassignment",
	IncompatibleValueType:  "IncompatibleValueType",
	UndeclaredVariable:     "UndeclaredVariable",
	UninitializedVariable:  "UninitializedVariable",
}

var kindMessages = [...]string{
	InvalidSyntax:          "Invalid syntax",
	InvalidType:            "Variable type is invalid",
	InvalidVariableName:    "Variable name is invalid",
	InvalidCondition:       "Condition is invalid",
	InvalidMethodCall:      "Invalid method call",
	InvalidMethodStructure: "Method is invalid",
	InvalidScope:           "Scope issue",
	DuplicateVariable:      "Duplicate variable name inside a scope",
	FinalAssignmentMissing: "Final variable declared without a value",
	FinalReassignment:      "Reassignment to a final variable occurred",
	IncompatibleValueType:  "Incompatible value and type",
	UndeclaredVariable:     "Undeclared variable assignment",
	UninitializedVariable:  "Uninitialized variable assignment",
}

// Kinds returns every fault kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := InvalidSyntax; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && k < kindCount
}

// String returns the kind's name, e.g. "DuplicateVariable".
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Message returns a human-readable description of the fault.
func (k Kind) Message() string {
	if k.IsValid() {
		return kindMessages[k]
	}
	return "unknown fault"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("diag: invalid kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("diag: unknown kind %q", text)
	}
	*k = kind
	return nil
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k := InvalidSyntax; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// Error is the record of the fault that stopped verification.
type Error struct {
	Kind Kind
	File string // may be empty
	Line uint32 // 1-based
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Kind.Message())
	}
	return fmt.Sprintf("%s in line %d", e.Kind.Message(), e.Line)
}

// KindOf returns the fault kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
