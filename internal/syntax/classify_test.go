package syntax

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		// Declarations
		{"int a;", Declaration},
		{"final double d = 1.5;", Declaration},
		{"String s = \"hi\", t;", Declaration},
		{"boolean b = true;", Declaration},
		{"char c = 'x';", Declaration},
		{"integer = 5;", Declaration}, // starts with "int"

		// Assignments
		{"a = 5;", Assignment},
		{"a = b;", Assignment},

		// Method signatures
		{"void foo() {", MethodSignature},
		{"void foo(int a, final String b) {", MethodSignature},

		// Method calls
		{"foo();", MethodCall},
		{"foo(1, \"x\");", MethodCall},
		{"// foo(a);", MethodCall}, // priority over Comment

		// Conditions
		{"if (a) {", Condition},
		{"while (a || true) {", Condition},
		{"if(a&&b){", Condition},

		// Others
		{"", EmptyLine},
		{"// just a comment", Comment},
		{"//", Comment},
		{"}", CloseScope},
		{"return;", Return},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Classify(tt.line)
			if !ok {
				t.Fatalf("Classify(%q) failed, want %s", tt.line, tt.want)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	lines := []string{
		"a = 5",       // no semicolon
		"return",      // no semicolon
		"return ;",    // not exactly "return;"
		"} }",         // not exactly "}"
		"foo()",       // call without semicolon
		"if (a)",      // condition without brace
		"x = if;",     // contains "if"
		"void x = 3;", // contains "void"
		"int foo() {", // declaration kind rejects parens, nothing else matches
		"hello world", // nothing
		"/* block */", // only // comments
		"{",           // lone brace
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if kind, ok := Classify(line); ok {
				t.Errorf("Classify(%q) = %s, want no match", line, kind)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	lines := []string{
		"int a = 5;", "a = 5;", "void f() {", "f();", "if (a) {",
		"", "// c", "}", "return;", "garbage",
	}
	for _, line := range lines {
		k1, ok1 := Classify(line)
		for i := 0; i < 10; i++ {
			k2, ok2 := Classify(line)
			if k1 != k2 || ok1 != ok2 {
				t.Fatalf("Classify(%q) not deterministic: (%s, %v) then (%s, %v)", line, k1, ok1, k2, ok2)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Declaration.String(); got != "Declaration" {
		t.Errorf("Declaration.String() = %q", got)
	}
	if got := Kind(200).String(); got != "kind(200)" {
		t.Errorf("Kind(200).String() = %q", got)
	}
	for _, k := range []Kind{MethodSignature, Condition} {
		if !k.OpensScope() {
			t.Errorf("%s.OpensScope() = false", k)
		}
	}
	if Declaration.OpensScope() {
		t.Errorf("Declaration.OpensScope() = true")
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		s          string
		ident      bool
		methodName bool
	}{
		{"a", true, true},
		{"abc_12", true, true},
		{"A1", true, true},
		{"_a", true, false},
		{"__", true, false},
		{"_", false, false},
		{"1a", false, false},
		{"a-b", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.s); got != tt.ident {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.s, got, tt.ident)
		}
		if got := IsMethodName(tt.s); got != tt.methodName {
			t.Errorf("IsMethodName(%q) = %v, want %v", tt.s, got, tt.methodName)
		}
	}

	if IsVariableRef("true") || IsVariableRef("false") {
		t.Errorf("IsVariableRef accepts boolean literals")
	}
	if !IsVariableRef("truth") {
		t.Errorf("IsVariableRef(\"truth\") = false")
	}
	if !IsKeyword("while") || IsKeyword("whilst") {
		t.Errorf("IsKeyword mismatch")
	}
}
