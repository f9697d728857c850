package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
	"github.com/you-not-fish/sjavac/internal/types"
)

// pendingAssign is a variable-to-variable copy whose source had no
// usable value when its line was scanned.
type pendingAssign struct {
	target *types.Var
	src    *types.Var    // nil if the source name was not found
	name   string        // source name as written
	scope  types.ScopeID // scope of the originating line
	pos    syntax.Pos
}

// pendingCall is a method call waiting for the complete method table.
type pendingCall struct {
	name  string
	args  []string
	scope types.ScopeID // scope of the call site
	pos   syntax.Pos
}

// resolveDeferred drains the deferred work in two passes: first the
// pending assignments in the order they were queued, then the calls.
func (c *Checker) resolveDeferred() error {
	c.log.Debug("resolve deferred",
		zap.Int("assignments", len(c.assigns)),
		zap.Int("calls", len(c.calls)))

	for _, a := range c.assigns {
		if err := c.resolveAssign(a); err != nil {
			return err
		}
	}
	for _, call := range c.calls {
		if err := c.checkCall(call); err != nil {
			return err
		}
	}
	return nil
}

// resolveAssign completes a pending copy now that every global is known.
func (c *Checker) resolveAssign(a *pendingAssign) error {
	src := a.src
	if src == nil {
		src, _ = c.tree.LookupParent(a.scope, a.name)
		if src == nil {
			return c.errorAt(a.pos, diag.UndeclaredVariable)
		}
	}
	val := src.Value()
	if !val.IsSet() {
		return c.errorAt(a.pos, diag.UndeclaredVariable)
	}
	if !a.target.Type().Accepts(val) {
		return c.errorAt(a.pos, diag.IncompatibleValueType)
	}
	a.target.SetValue(val)
	return nil
}
