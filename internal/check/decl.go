package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
	"github.com/you-not-fish/sjavac/internal/types"
)

// varDecl checks a variable declaration line, declaring each name in
// the current scope from left to right.
func (c *Checker) varDecl(d *syntax.VarDecl) error {
	typ := types.Lookup(d.Type)
	if typ == nil {
		return c.error(diag.InvalidType)
	}
	for _, spec := range d.Specs {
		if err := c.declareVar(typ, spec.Name, spec.Value, d.Final); err != nil {
			return err
		}
	}
	return nil
}

// declareVar declares one variable of type typ in the current scope.
// An empty value declares the variable without a value.
func (c *Checker) declareVar(typ *types.Basic, name, value string, final bool) error {
	if !validVarName(name) {
		return c.error(diag.InvalidVariableName)
	}
	v := types.NewVar(c.pos, name, typ, final)
	if value == "" {
		if final {
			return c.error(diag.FinalAssignmentMissing)
		}
	} else if err := c.setValue(v, value); err != nil {
		return err
	}
	return c.declare(v)
}

// setValue gives target the value spelled by the token value, as seen
// from the current scope. A literal must satisfy the target type; a
// variable reference is resolved with resolveAsVariable.
func (c *Checker) setValue(target *types.Var, value string) error {
	if syntax.IsVariableRef(value) {
		return c.resolveAsVariable(target, value)
	}
	if !target.Type().CheckValue(value) {
		return c.error(diag.IncompatibleValueType)
	}
	target.SetValue(types.LitValue(value))
	return nil
}

// resolveAsVariable copies the value of the variable name into target.
//
// If name is not yet usable, the copy is deferred when the file may still
// supply it: a global variable without a value may be assigned later by
// a method that runs first, and an unknown name in a local scope may be
// a global declared further down. The target stays unset until the
// deferred copy is resolved.
func (c *Checker) resolveAsVariable(target *types.Var, name string) error {
	src, owner := c.lookup(name)
	if src == nil {
		if c.scope == types.GlobalID {
			return c.error(diag.UndeclaredVariable)
		}
		target.SetValue(types.Value{})
		c.deferAssign(&pendingAssign{target: target, name: name, scope: c.scope, pos: c.pos})
		return nil
	}

	if val := src.Value(); val.IsSet() {
		if !target.Type().Accepts(val) {
			return c.error(diag.IncompatibleValueType)
		}
		target.SetValue(val)
		return nil
	}

	if owner != types.GlobalID || c.scope == types.GlobalID {
		return c.error(diag.UndeclaredVariable)
	}
	target.SetValue(types.Value{})
	c.deferAssign(&pendingAssign{target: target, src: src, name: name, scope: c.scope, pos: c.pos})
	return nil
}

func (c *Checker) deferAssign(a *pendingAssign) {
	c.assigns = append(c.assigns, a)
	c.log.Debug("defer assignment",
		zap.String("target", a.target.Name()),
		zap.String("source", a.name),
		zap.Bool("resolved", a.src != nil),
		zap.Uint32("line", a.pos.Line()))
}

// validVarName reports whether name may be declared as a variable.
func validVarName(name string) bool {
	return syntax.IsIdentifier(name) && !syntax.IsKeyword(name)
}
