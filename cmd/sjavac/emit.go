package main

import (
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/sjavac/internal/config"
	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
)

// runEmitLines parses each file and outputs its statements.
// Lines that fail to parse are reported on stderr.
func runEmitLines(files []string, format string, stdout, stderr io.Writer) int {
	code := codeValid
	for _, filename := range files {
		code = max(code, emitFile(filename, format, stdout, stderr))
	}
	return code
}

func emitFile(filename, format string, stdout, stderr io.Writer) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return codeIOError
	}
	defer f.Close()

	code := codeValid
	errh := func(e *diag.Error) {
		fmt.Fprintln(stderr, e)
		code = codeInvalid
	}
	stmts, err := syntax.ParseFile(filename, f, errh)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return codeIOError
	}

	switch format {
	case config.FormatJSON:
		if err := syntax.FprintJSON(stdout, stmts); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return codeIOError
		}
	default:
		syntax.Fprint(stdout, stmts)
	}
	return code
}
