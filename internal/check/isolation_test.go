package check

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/you-not-fish/sjavac/internal/diag"
)

func TestShadowInNestedBlock(t *testing.T) {
	info := expectValid(t, "int x=1;\nif (true) {\nx=2;\n}\n")
	if x := info.Scopes.Global().Lookup("x"); x.Value().Lit() != "1" {
		t.Errorf("outer x = %v after the block closed, want 1", x.Value())
	}
}

func TestEndToEnd(t *testing.T) {
	expectValid(t, "int x = 5;\nvoid foo(int a) {\nreturn;\n}\nfoo(x);\n")
	expectValid(t, "void main() {\nfoo(5);\nreturn;\n}\nvoid foo(int a) {\nreturn;\n}\n")
	expectFault(t, "final int y;", diag.FinalAssignmentMissing, 1)
	expectFault(t, "final int y;\nthis line is never read\n", diag.FinalAssignmentMissing, 1)
}

// Sources used to check that runs do not see each other's state.
const (
	declaresFoo = "int g = 1;\nvoid foo() {\nreturn;\n}\n"
	callsFoo    = "void bar() {\nfoo();\nreturn;\n}\n"
	usesG       = "void bar() {\nint a = g;\nreturn;\n}\n"
	callsBar    = "void bar() {\nbar(1);\nreturn;\n}\n"
)

func TestRunsAreIsolated(t *testing.T) {
	for i := 0; i < 3; i++ {
		expectValid(t, declaresFoo)
		// foo and g belong to the previous run only.
		expectFault(t, callsFoo, diag.InvalidMethodCall, 2)
		expectFault(t, usesG, diag.UndeclaredVariable, 2)
		// A failed run leaves no queued work behind.
		expectFault(t, callsBar, diag.InvalidMethodCall, 2)
		expectValid(t, "void baz() {\nreturn;\n}\n")
	}
}

func TestConcurrentRuns(t *testing.T) {
	sources := []struct {
		src  string
		kind diag.Kind // zero if valid
	}{
		{declaresFoo, 0},
		{callsFoo, diag.InvalidMethodCall},
		{usesG, diag.UndeclaredVariable},
		{"final int y;", diag.FinalAssignmentMissing},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		i := i
		tc := sources[i%len(sources)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := Check(fmt.Sprintf("f%d.sjava", i), strings.NewReader(tc.src), nil, nil)
			kind, _ := diag.KindOf(err)
			if kind != tc.kind {
				errs <- fmt.Sprintf("run %d: got %v, want %v", i, err, tc.kind)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestDebugTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	info := &Info{}
	conf := &Config{Logger: zap.New(core)}
	src := "void f() {\nint a = g;\nh();\nreturn;\n}\nvoid h() {\nreturn;\n}\nint g = 1;\n"
	if err := Check("trace.sjava", strings.NewReader(src), conf, info); err != nil {
		t.Fatalf("Check() = %v", err)
	}

	for _, msg := range []string{"open scope", "close scope", "defer assignment", "defer call", "scan complete", "resolve deferred"} {
		if logs.FilterMessage(msg).Len() == 0 {
			t.Errorf("no %q entry logged", msg)
		}
	}
	for _, entry := range logs.All() {
		fields := entry.ContextMap()
		if fields["run_id"] != info.RunID || fields["file"] != "trace.sjava" {
			t.Errorf("entry %q has fields %v, want run_id %s", entry.Message, fields, info.RunID)
		}
	}
}
