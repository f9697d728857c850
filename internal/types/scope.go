package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/sjavac/internal/syntax"
)

// ScopeID identifies a scope within its Tree.
type ScopeID int32

const (
	NoScope  ScopeID = -1 // parent of the Global scope
	GlobalID ScopeID = 0  // the Global scope of every Tree
)

// ScopeKind distinguishes the three kinds of scope.
type ScopeKind uint8

const (
	GlobalScope ScopeKind = iota // file level
	BlockScope                   // if / while body
	MethodScope                  // method body
)

func (k ScopeKind) String() string {
	switch k {
	case GlobalScope:
		return "global"
	case BlockScope:
		return "block"
	case MethodScope:
		return "method"
	}
	return fmt.Sprintf("ScopeKind(%d)", k)
}

// Scope represents a lexical scope.
// Scopes are owned by a Tree and refer to their parent and children by
// ID. A scope stays in the tree after it is closed.
type Scope struct {
	id       ScopeID
	kind     ScopeKind
	parent   ScopeID
	children []ScopeID
	elems    map[string]*Var
	pos      syntax.Pos
	comment  string // debugging comment (e.g., "method foo", "if")
}

// ID returns the scope's index in its tree.
func (s *Scope) ID() ScopeID {
	return s.id
}

// Kind returns the scope kind.
func (s *Scope) Kind() ScopeKind {
	return s.kind
}

// Parent returns the ID of the parent scope, or NoScope for Global.
func (s *Scope) Parent() ScopeID {
	return s.parent
}

// Children returns the IDs of the child scopes in creation order.
func (s *Scope) Children() []ScopeID {
	return s.children
}

// NumChildren returns the number of child scopes.
func (s *Scope) NumChildren() int {
	return len(s.children)
}

// Pos returns the position of the line that opened the scope.
func (s *Scope) Pos() syntax.Pos {
	return s.pos
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the variable with the given name in this scope.
// Returns nil if not found in this scope (does not search parent scopes).
func (s *Scope) Lookup(name string) *Var {
	return s.elems[name]
}

// Insert inserts a variable into the scope and records the scope as the
// variable's owner. If a variable with the same name already exists,
// Insert returns it and leaves the scope unchanged. Otherwise, returns nil.
func (s *Scope) Insert(v *Var) *Var {
	if existing := s.elems[v.name]; existing != nil {
		return existing
	}
	s.elems[v.name] = v
	v.scope = s.id
	return nil
}

// Names returns the names of all variables in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumVars returns the number of variables in the scope.
func (s *Scope) NumVars() int {
	return len(s.elems)
}

// Tree is the arena holding every scope of one verification run.
// The Global scope is created with the tree and has ID GlobalID.
type Tree struct {
	scopes []*Scope
}

// NewTree creates a tree holding only the Global scope.
func NewTree() *Tree {
	t := &Tree{}
	t.newScope(NoScope, GlobalScope, syntax.Pos{}, "global")
	return t
}

func (t *Tree) newScope(parent ScopeID, kind ScopeKind, pos syntax.Pos, comment string) *Scope {
	s := &Scope{
		id:      ScopeID(len(t.scopes)),
		kind:    kind,
		parent:  parent,
		elems:   make(map[string]*Var),
		pos:     pos,
		comment: comment,
	}
	t.scopes = append(t.scopes, s)
	if parent != NoScope {
		p := t.scopes[parent]
		p.children = append(p.children, s.id)
	}
	return s
}

// Open creates a new scope of the given kind as the last child of parent.
func (t *Tree) Open(parent ScopeID, kind ScopeKind, pos syntax.Pos, comment string) *Scope {
	return t.newScope(parent, kind, pos, comment)
}

// Global returns the Global scope.
func (t *Tree) Global() *Scope {
	return t.scopes[GlobalID]
}

// Scope returns the scope with the given ID.
func (t *Tree) Scope(id ScopeID) *Scope {
	return t.scopes[id]
}

// Len returns the number of scopes in the tree.
func (t *Tree) Len() int {
	return len(t.scopes)
}

// LookupParent returns the variable with the given name by searching
// from scope id up through all parent scopes.
// Returns the variable and the ID of the scope in which it was found.
// Returns (nil, NoScope) if not found.
func (t *Tree) LookupParent(id ScopeID, name string) (*Var, ScopeID) {
	for id != NoScope {
		s := t.scopes[id]
		if v := s.elems[name]; v != nil {
			return v, id
		}
		id = s.parent
	}
	return nil, NoScope
}

// String returns a string representation of the tree for debugging.
func (t *Tree) String() string {
	var buf strings.Builder
	t.writeTo(&buf, GlobalID, 0)
	return buf.String()
}

func (t *Tree) writeTo(buf *strings.Builder, id ScopeID, indent int) {
	s := t.scopes[id]
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		v := s.elems[name]
		if v.IsParam() {
			fmt.Fprintf(buf, "%s  param %s: %s\n", prefix, name, v.typ)
			continue
		}
		fmt.Fprintf(buf, "%s  %s: %s = %s\n", prefix, name, v.typ, v.val)
	}
	for _, child := range s.children {
		t.writeTo(buf, child, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
