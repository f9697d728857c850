package syntax

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/you-not-fish/sjavac/internal/diag"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxLineSize is the longest source line the reader accepts. A longer
// line is an InvalidSyntax fault on that line.
const MaxLineSize = 1 << 20

// Source is a line reader with position tracking.
// Input is decoded as UTF-8 unless it starts with a UTF-8 or UTF-16
// byte order mark, in which case the mark selects the encoding.
type Source struct {
	filename string
	sc       *bufio.Scanner

	// Current state
	line uint32 // current line number (1-based), 0 before the first Next
	text string // current line, whitespace-trimmed
}

// NewSource creates a new Source reading from src.
func NewSource(filename string, src io.Reader) *Source {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(src, dec))
	sc.Buffer(make([]byte, 0, 4096), MaxLineSize)
	return &Source{filename: filename, sc: sc}
}

// Next advances to the next line. It returns false at end of input or
// when reading fails; Err distinguishes the two.
func (s *Source) Next() bool {
	if !s.sc.Scan() {
		return false
	}
	s.line++
	s.text = strings.TrimSpace(s.sc.Text())
	return true
}

// Text returns the current line with surrounding whitespace removed.
func (s *Source) Text() string {
	return s.text
}

// Pos returns the position of the current line.
func (s *Source) Pos() Pos {
	return NewPos(s.filename, s.line)
}

// Lines returns the number of lines read so far.
func (s *Source) Lines() int {
	return int(s.line)
}

// Err returns the first read error, or nil at a clean end of input.
// A line longer than MaxLineSize is reported as a *diag.Error.
func (s *Source) Err() error {
	err := s.sc.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return &diag.Error{Kind: diag.InvalidSyntax, File: s.filename, Line: s.line + 1}
	}
	return err
}
