// Package check implements the two-phase verifier.
//
// The first phase scans the source line by line, building the scope tree
// and the method table and checking every statement as it is seen. Checks
// that depend on names declared later in the file are queued and drained
// in the second phase, after the whole file has been read. The first
// fault stops verification.
package check

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
	"github.com/you-not-fish/sjavac/internal/types"
)

// Config specifies the configuration for verification.
type Config struct {
	// Logger receives debug traces of scope changes and deferred work.
	// If nil, nothing is logged.
	Logger *zap.Logger

	// Error is called with the fault that stopped verification.
	// If nil, the fault is only returned.
	Error ErrorHandler
}

// ErrorHandler is a function called for a verification fault.
type ErrorHandler func(err *diag.Error)

// Info holds the results of a verification run.
// It is filled in whether or not verification succeeds.
type Info struct {
	// RunID identifies the run in log output.
	RunID string

	// Scopes is the scope tree built while scanning.
	Scopes *types.Tree

	// Methods holds the method signatures registered while scanning.
	Methods *types.MethodTable

	// Lines is the number of lines read.
	Lines int
}

// Check verifies the source read from src.
// It returns nil if the source is valid, a *diag.Error describing the
// first fault otherwise, or a wrapped I/O error if src cannot be read.
func Check(filename string, src io.Reader, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}

	c := newChecker(filename, conf)
	s := syntax.NewSource(filename, src)
	err := c.run(s)

	if info != nil {
		info.RunID = c.runID
		info.Scopes = c.tree
		info.Methods = c.methods
		info.Lines = s.Lines()
	}

	var fault *diag.Error
	if errors.As(err, &fault) && conf.Error != nil {
		conf.Error(fault)
	}
	return err
}
