package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/sjavac/internal/config"
)

// writeReport writes results to w in the given format.
// The text format prints one code per line.
func writeReport(w io.Writer, format string, results []Result) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encoder close: %w", err)
		}
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Code); err != nil {
				return fmt.Errorf("report: %w", err)
			}
		}
	}
	return nil
}
