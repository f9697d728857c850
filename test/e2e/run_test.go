package e2e

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/sjavac/internal/check"
	"github.com/you-not-fish/sjavac/internal/diag"
)

// expectation is the manifest entry of one test file.
type expectation struct {
	Fault diag.Kind `yaml:"fault"` // zero if the file must be valid
	Line  uint32    `yaml:"line"`
}

// loadManifest reads testdata/expect.yaml.
func loadManifest(t *testing.T) map[string]expectation {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "expect.yaml"))
	if err != nil {
		t.Fatalf("opening manifest: %v", err)
	}
	defer f.Close()

	var manifest map[string]expectation
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&manifest); err != nil {
		t.Fatalf("parsing manifest: %v", err)
	}
	return manifest
}

// TestE2E verifies every .sjava file in testdata/ and compares the
// outcome with the manifest. Every file must have a manifest entry and
// every entry must name an existing file.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.sjava")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .sjava test files found in testdata/")
	}
	manifest := loadManifest(t)

	seen := make(map[string]bool)
	for _, testFile := range testFiles {
		base := filepath.Base(testFile)
		seen[base] = true
		want, ok := manifest[base]
		if !ok {
			t.Errorf("%s has no entry in expect.yaml", base)
			continue
		}
		t.Run(strings.TrimSuffix(base, ".sjava"), func(t *testing.T) {
			runE2ETest(t, testFile, want)
		})
	}

	var stale []string
	for name := range manifest {
		if !seen[name] {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	if len(stale) > 0 {
		t.Errorf("expect.yaml names missing files: %v", stale)
	}
}

// runE2ETest verifies a single file.
func runE2ETest(t *testing.T, sjavaFile string, want expectation) {
	t.Helper()

	f, err := os.Open(sjavaFile)
	if err != nil {
		t.Fatalf("opening source: %v", err)
	}
	defer f.Close()

	err = check.Check(sjavaFile, f, nil, nil)
	if want.Fault == 0 {
		if err != nil {
			t.Errorf("expected valid, got %v", err)
		}
		return
	}

	kind, ok := diag.KindOf(err)
	if !ok {
		t.Fatalf("expected %s at line %d, got %v", want.Fault, want.Line, err)
	}
	if e := err.(*diag.Error); kind != want.Fault || e.Line != want.Line {
		t.Errorf("got %s at line %d, want %s at line %d", kind, e.Line, want.Fault, want.Line)
	}
}
