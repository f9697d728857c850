package types

import (
	"testing"

	"github.com/you-not-fish/sjavac/internal/syntax"
)

func TestMethodTable(t *testing.T) {
	table := NewMethodTable()

	foo := NewMethod(syntax.NewPos("", 1), "foo", []*Basic{Typ[Int], Typ[String]})
	if prev := table.Register(foo); prev != nil {
		t.Errorf("Register() = %v for a new name", prev)
	}
	if table.Lookup("foo") != foo {
		t.Errorf("Lookup(foo) did not return the registered method")
	}
	if table.Lookup("bar") != nil {
		t.Errorf("Lookup(bar) found an unregistered method")
	}

	// Re-registration replaces the signature.
	foo2 := NewMethod(syntax.NewPos("", 9), "foo", nil)
	if prev := table.Register(foo2); prev != foo {
		t.Errorf("Register() returned %v, want previous signature", prev)
	}
	if table.Lookup("foo") != foo2 {
		t.Errorf("Lookup(foo) did not return the latest signature")
	}

	table.Register(NewMethod(syntax.Pos{}, "bar", nil))
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if names := table.Names(); len(names) != 2 || names[0] != "bar" || names[1] != "foo" {
		t.Errorf("Names() = %v, want [bar foo]", names)
	}
}

func TestMethodString(t *testing.T) {
	tests := []struct {
		method *Method
		want   string
	}{
		{NewMethod(syntax.Pos{}, "f", nil), "void f()"},
		{NewMethod(syntax.Pos{}, "g", []*Basic{Typ[Int], Typ[String]}), "void g(int, String)"},
	}
	for _, tt := range tests {
		if got := tt.method.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	m := NewMethod(syntax.NewPos("a.sjava", 3), "h", []*Basic{Typ[Char]})
	if m.NumParams() != 1 || m.Param(0) != Typ[Char] || m.Name() != "h" || m.Pos().Line() != 3 {
		t.Errorf("accessors returned unexpected values for %v", m)
	}
}
