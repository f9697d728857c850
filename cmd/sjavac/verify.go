package main

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/sjavac/internal/check"
	"github.com/you-not-fish/sjavac/internal/diag"
)

// Result is the outcome of verifying one file.
type Result struct {
	File  string `json:"file" yaml:"file"`
	Code  int    `json:"code" yaml:"code"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error *Fault `json:"error,omitempty" yaml:"error,omitempty"`
}

// Fault describes why a file is not valid.
// Kind and Line are empty when the file could not be read.
type Fault struct {
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Line    uint32 `json:"line,omitempty" yaml:"line,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// verifyFiles verifies files with at most workers running at once.
// Results are returned in the order of files.
func verifyFiles(files []string, workers int, log *zap.Logger) []Result {
	results := make([]Result, len(files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			results[i] = verifyFile(filename, log)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// verifyFile verifies a single file. Each call runs its own checker.
func verifyFile(filename string, log *zap.Logger) Result {
	f, err := os.Open(filename)
	if err != nil {
		log.Error("open source", zap.String("file", filename), zap.Error(err))
		return ioFailure(filename, err)
	}
	defer f.Close()

	var info check.Info
	conf := &check.Config{
		Logger: log,
		Error: func(e *diag.Error) {
			log.Info(e.Kind.Message(),
				zap.Stringer("kind", e.Kind),
				zap.Uint32("line", e.Line),
				zap.String("file", filename),
				zap.String("run_id", info.RunID))
		},
	}
	err = check.Check(filename, f, conf, &info)

	var fault *diag.Error
	switch {
	case err == nil:
		log.Debug("valid", zap.String("file", filename), zap.Int("lines", info.Lines))
		return Result{File: filename, Code: codeValid, Valid: true}
	case errors.As(err, &fault):
		return Result{
			File: filename,
			Code: codeInvalid,
			Error: &Fault{
				Kind:    fault.Kind.String(),
				Line:    fault.Line,
				Message: fault.Kind.Message(),
			},
		}
	default:
		log.Error("read source", zap.String("file", filename), zap.Error(err))
		return ioFailure(filename, err)
	}
}

func ioFailure(filename string, err error) Result {
	return Result{File: filename, Code: codeIOError, Error: &Fault{Message: err.Error()}}
}
