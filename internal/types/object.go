package types

import (
	"strings"

	"github.com/you-not-fish/sjavac/internal/syntax"
)

// Var represents a declared variable or method parameter.
type Var struct {
	name  string
	typ   *Basic
	pos   syntax.Pos
	scope ScopeID // declaring scope, set by Insert
	final bool
	param bool
	val   Value
}

// NewVar creates a new variable object with an unset value.
func NewVar(pos syntax.Pos, name string, typ *Basic, final bool) *Var {
	return &Var{name: name, typ: typ, pos: pos, scope: NoScope, final: final}
}

// NewParam creates a method parameter. Parameters are initialized with
// an opaque value of their type.
func NewParam(pos syntax.Pos, name string, typ *Basic, final bool) *Var {
	v := NewVar(pos, name, typ, final)
	v.param = true
	v.val = OpaqueValue(typ)
	return v
}

func (v *Var) Name() string    { return v.name }
func (v *Var) Type() *Basic    { return v.typ }
func (v *Var) Pos() syntax.Pos { return v.pos }

// Scope returns the ID of the declaring scope, or NoScope if the
// variable has not been inserted into a scope.
func (v *Var) Scope() ScopeID { return v.scope }

// IsFinal reports whether the variable was declared final.
func (v *Var) IsFinal() bool { return v.final }

// IsParam reports whether the variable is a method parameter.
func (v *Var) IsParam() bool { return v.param }

// Value returns the current value of the variable.
func (v *Var) Value() Value { return v.val }

// SetValue replaces the variable's value.
func (v *Var) SetValue(val Value) { v.val = val }

// Method represents a method signature. Methods return no value.
type Method struct {
	name   string
	params []*Basic
	pos    syntax.Pos
}

// NewMethod creates a new method signature.
func NewMethod(pos syntax.Pos, name string, params []*Basic) *Method {
	return &Method{name: name, params: params, pos: pos}
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// Pos returns the position of the method signature.
func (m *Method) Pos() syntax.Pos { return m.pos }

// Params returns the parameter types in order.
func (m *Method) Params() []*Basic { return m.params }

// NumParams returns the number of parameters.
func (m *Method) NumParams() int { return len(m.params) }

// Param returns the i'th parameter type.
func (m *Method) Param(i int) *Basic { return m.params[i] }

// String returns the signature, e.g. "void foo(int, String)".
func (m *Method) String() string {
	names := make([]string, len(m.params))
	for i, p := range m.params {
		names[i] = p.name
	}
	return "void " + m.name + "(" + strings.Join(names, ", ") + ")"
}
