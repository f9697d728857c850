// Package main implements the sjavac verifier entry point.
//
// sjavac reads one or more source files and reports for each whether it
// is valid (0), contains a fault (1), or could not be read (2). The exit
// status is the highest code reported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/config"
)

// Version information
const Version = "0.1.0"

// Result codes
const (
	codeValid   = 0
	codeInvalid = 1
	codeIOError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args, writing the report to stdout and
// diagnostics to stderr, and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sjavac", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "Configuration file (YAML)")
		format     = fs.String("format", "", "Report format (text, json or yaml)")
		workers    = fs.Int("j", 0, "Number of files verified concurrently")
		verbose    = fs.Bool("v", false, "Log debug traces")
		version    = fs.Bool("version", false, "Print version")
		emitLines  = fs.Bool("emit-lines", false, "Output the parsed lines instead of verifying")
		linesFmt   = fs.String("lines-format", "text", "Parsed lines output format (text or json)")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "sjavac %s\n\n", Version)
		fmt.Fprintf(stderr, "Usage: sjavac [options] <file> [file...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return codeValid
		}
		return codeIOError
	}

	if *version {
		fmt.Fprintf(stdout, "sjavac version %s\n", Version)
		fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
		return codeValid
	}

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "error: no input file")
		fmt.Fprintln(stderr, "usage: sjavac [options] <file> [file...]")
		return codeIOError
	}

	if *emitLines {
		lf := strings.ToLower(strings.TrimSpace(*linesFmt))
		if err := config.ValidateLinesFormat(lf); err != nil {
			fmt.Fprintf(stderr, "error: -lines-format: %v\n", err)
			return codeIOError
		}
		return runEmitLines(files, lf, stdout, stderr)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return codeIOError
	}
	if *format != "" {
		cfg.Report.Format = *format
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return codeIOError
	}

	log := newLogger(cfg, stderr)
	defer func() { _ = log.Sync() }()
	log.Debug("start",
		zap.String("version", Version),
		zap.Int("files", len(files)),
		zap.Int("workers", cfg.Workers))

	results := verifyFiles(files, cfg.Workers, log)
	if err := writeReport(stdout, cfg.Report.Format, results); err != nil {
		log.Error("write report", zap.Error(err))
		return codeIOError
	}
	return exitCode(results)
}

// exitCode returns the highest code among results.
func exitCode(results []Result) int {
	code := codeValid
	for _, r := range results {
		code = max(code, r.Code)
	}
	return code
}
