package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
	"github.com/you-not-fish/sjavac/internal/types"
)

// assignStmt checks an assignment line.
//
// Assigning to a variable of an enclosing scope does not modify it: the
// assignment declares a non-final variable of the same name and type in
// the current scope instead.
func (c *Checker) assignStmt(a *syntax.AssignStmt) error {
	v, owner := c.lookup(a.Name)
	if v == nil {
		return c.error(diag.UninitializedVariable)
	}
	if v.IsFinal() {
		return c.error(diag.FinalReassignment)
	}

	if owner != c.scope {
		shadow := types.NewVar(c.pos, v.Name(), v.Type(), false)
		if err := c.setValue(shadow, a.Value); err != nil {
			return err
		}
		return c.declare(shadow)
	}
	return c.setValue(v, a.Value)
}

// condStmt opens a block scope and checks each operand of the condition
// in it. An operand is a boolean literal or a variable whose value is
// one.
func (c *Checker) condStmt(s *syntax.CondStmt) error {
	c.openScope(types.BlockScope, s.Keyword)

	boolean := types.UniverseBoolean()
	for _, op := range s.Operands {
		if boolean.CheckValue(op) {
			continue
		}
		if !syntax.IsVariableRef(op) {
			return c.error(diag.InvalidCondition)
		}
		v, _ := c.lookup(op)
		if v == nil || !v.Value().IsSet() {
			return c.error(diag.UninitializedVariable)
		}
		if !boolean.Accepts(v.Value()) {
			return c.error(diag.IncompatibleValueType)
		}
	}
	return nil
}

// closeScope leaves the current scope. A method body must end with a
// return line.
func (c *Checker) closeScope(prevReturn bool) error {
	if c.scope == types.GlobalID {
		return c.error(diag.InvalidScope)
	}
	s := c.currentScope()
	if s.Kind() == types.MethodScope && !prevReturn {
		return c.error(diag.InvalidMethodStructure)
	}
	c.log.Debug("close scope",
		zap.Stringer("kind", s.Kind()),
		zap.Int32("scope", int32(s.ID())),
		zap.Uint32("line", c.pos.Line()))
	c.scope = s.Parent()
	return nil
}
