package syntax

import (
	"strings"
	"testing"
)

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{
			name:    "with filename",
			pos:     NewPos("test.sjava", 10),
			wantStr: "test.sjava:10",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 10),
			wantStr: "10",
		},
		{
			name:    "line 1",
			pos:     NewPos("main.sjava", 1),
			wantStr: "main.sjava:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{
			name:  "valid position",
			pos:   NewPos("test.sjava", 1),
			valid: true,
		},
		{
			name:  "valid position line 100",
			pos:   NewPos("", 100),
			valid: true,
		},
		{
			name:  "invalid - zero line",
			pos:   NewPos("test.sjava", 0),
			valid: false,
		},
		{
			name:  "invalid - zero value",
			pos:   Pos{},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosGetters(t *testing.T) {
	pos := NewPos("test.sjava", 42)

	if got := pos.Line(); got != 42 {
		t.Errorf("Pos.Line() = %d, want 42", got)
	}
	if got := pos.Filename(); got != "test.sjava" {
		t.Errorf("Pos.Filename() = %q, want %q", got, "test.sjava")
	}
}

func TestPosLineOnly(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"max line", NewPos("big.sjava", 1<<32-1), "big.sjava:4294967295"},
		{"path with colon", NewPos("dir:x/a.sjava", 7), "dir:x/a.sjava:7"},
		{"no column suffix", NewPos("a.sjava", 12), "a.sjava:12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosEquality(t *testing.T) {
	// Positions are plain values: the same file and line compare equal.
	if NewPos("a.sjava", 3) != NewPos("a.sjava", 3) {
		t.Errorf("equal positions compare unequal")
	}
	if NewPos("a.sjava", 3) == NewPos("a.sjava", 4) {
		t.Errorf("different lines compare equal")
	}
	if NewPos("a.sjava", 3) == NewPos("b.sjava", 3) {
		t.Errorf("different files compare equal")
	}

	seen := map[Pos]bool{}
	src := NewSource("a.sjava", strings.NewReader("x\n\ny\n"))
	for src.Next() {
		seen[src.Pos()] = true
	}
	for line := uint32(1); line <= 3; line++ {
		if !seen[NewPos("a.sjava", line)] {
			t.Errorf("line %d not reported by Source", line)
		}
	}
	if len(seen) != 3 {
		t.Errorf("got %d distinct positions, want 3", len(seen))
	}
}
