package syntax

import (
	"errors"
	"fmt"
	"io"

	"github.com/you-not-fish/sjavac/internal/diag"
)

// ErrorHandler is called for each line that fails to parse.
type ErrorHandler func(err *diag.Error)

// ParseFile parses every line read from r. Lines that fail to parse are
// reported to errh, if not nil, and left out of the result. A line too
// long to read is reported the same way and ends the input. The returned
// error is non-nil only if r cannot be read.
func ParseFile(filename string, r io.Reader, errh ErrorHandler) ([]Stmt, error) {
	var stmts []Stmt
	src := NewSource(filename, r)
	for src.Next() {
		s, err := Parse(src.Pos(), src.Text())
		if err != nil {
			var d *diag.Error
			if errors.As(err, &d) && errh != nil {
				errh(d)
			}
			continue
		}
		stmts = append(stmts, s)
	}
	if err := src.Err(); err != nil {
		var d *diag.Error
		if errors.As(err, &d) {
			if errh != nil {
				errh(d)
			}
			return stmts, nil
		}
		return stmts, fmt.Errorf("syntax: read %s: %w", filename, err)
	}
	return stmts, nil
}
