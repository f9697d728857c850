package syntax

import "fmt"

// Pos represents a line position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
}

// NewPos creates a new Pos with the given filename and 1-based line.
func NewPos(filename string, line uint32) Pos {
	return Pos{filename: filename, line: line}
}

// String returns a string representation of the position in the format
// "filename:line" or "line" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d", p.filename, p.line)
	}
	return fmt.Sprintf("%d", p.line)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
