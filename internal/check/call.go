package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
	"github.com/you-not-fish/sjavac/internal/types"
)

// methodDecl checks a method signature line: it opens the method scope,
// declares the parameters in it and registers the signature.
// Methods may only be declared at file level.
func (c *Checker) methodDecl(d *syntax.MethodDecl) error {
	if c.scope != types.GlobalID {
		return c.error(diag.InvalidScope)
	}
	c.openScope(types.MethodScope, "method "+d.Name)

	params := make([]*types.Basic, 0, len(d.Params))
	for _, p := range d.Params {
		typ := types.Lookup(p.Type)
		if typ == nil {
			return c.error(diag.InvalidType)
		}
		if !validVarName(p.Name) {
			return c.error(diag.InvalidVariableName)
		}
		if err := c.declare(types.NewParam(c.pos, p.Name, typ, p.Final)); err != nil {
			return err
		}
		params = append(params, typ)
	}

	if !syntax.IsMethodName(d.Name) || syntax.IsKeyword(d.Name) {
		return c.error(diag.InvalidMethodStructure)
	}
	m := types.NewMethod(c.pos, d.Name, params)
	if prev := c.methods.Register(m); prev != nil {
		c.log.Debug("method redeclared",
			zap.String("method", d.Name),
			zap.Uint32("line", c.pos.Line()),
			zap.Uint32("previous", prev.Pos().Line()))
	}
	return nil
}

// callStmt records a method call. Calls are checked after the scan, when
// every method of the file is known.
func (c *Checker) callStmt(s *syntax.CallStmt) error {
	c.calls = append(c.calls, &pendingCall{name: s.Name, args: s.Args, scope: c.scope, pos: c.pos})
	c.log.Debug("defer call",
		zap.String("method", s.Name),
		zap.Int("args", len(s.Args)),
		zap.Uint32("line", c.pos.Line()))
	return nil
}

// checkCall checks a recorded call against the method table.
func (c *Checker) checkCall(call *pendingCall) error {
	m := c.methods.Lookup(call.name)
	if m == nil || m.NumParams() != len(call.args) {
		return c.errorAt(call.pos, diag.InvalidMethodCall)
	}
	for i, arg := range call.args {
		if err := c.checkArg(call, m.Param(i), arg); err != nil {
			return err
		}
	}
	return nil
}

// checkArg checks one argument: a literal of the parameter type, or a
// variable visible from the call site whose value satisfies the type.
func (c *Checker) checkArg(call *pendingCall, typ *types.Basic, arg string) error {
	if typ.CheckValue(arg) {
		return nil
	}
	if !syntax.IsVariableRef(arg) {
		return c.errorAt(call.pos, diag.IncompatibleValueType)
	}
	v, _ := c.tree.LookupParent(call.scope, arg)
	if v == nil || !v.Value().IsSet() {
		return c.errorAt(call.pos, diag.UninitializedVariable)
	}
	if !typ.Accepts(v.Value()) {
		return c.errorAt(call.pos, diag.IncompatibleValueType)
	}
	return nil
}
