package check

import (
	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
)

// errorAt returns a fault of the given kind at pos.
func (c *Checker) errorAt(pos syntax.Pos, kind diag.Kind) error {
	return &diag.Error{Kind: kind, File: pos.Filename(), Line: pos.Line()}
}

// error returns a fault of the given kind at the current line.
func (c *Checker) error(kind diag.Kind) error {
	return c.errorAt(c.pos, kind)
}
