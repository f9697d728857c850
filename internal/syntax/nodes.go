package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Every source line becomes exactly one statement node. The set of node
// types is closed: one per line Kind.

// Stmt is the interface implemented by all statement nodes.
type Stmt interface {
	Pos() Pos   // position of the line
	Kind() Kind // line classification
	aStmt()     // marker method to restrict implementations to this package
}

// stmt is the base struct embedded in all statement nodes.
type stmt struct {
	pos Pos
}

func (s *stmt) Pos() Pos { return s.pos }
func (*stmt) aStmt()     {}

// ----------------------------------------------------------------------------
// Statements

// VarDecl represents a variable declaration line:
//
//	[final] Type Name [= Value] {, Name [= Value]} ;
type VarDecl struct {
	stmt
	Final bool
	Type  string     // type keyword as written
	Specs []*VarSpec // one per declared name
}

// VarSpec is one declarator of a VarDecl.
type VarSpec struct {
	Name  string
	Value string // value token; empty if the name is declared without a value
}

// AssignStmt represents an assignment line: Name = Value ;
type AssignStmt struct {
	stmt
	Name  string
	Value string
}

// MethodDecl represents a method signature line: void Name ( Params ) {
type MethodDecl struct {
	stmt
	Name   string
	Params []*Param
}

// Param is one formal parameter of a MethodDecl.
type Param struct {
	Final bool
	Type  string
	Name  string
}

// CallStmt represents a method call line: Name ( Args ) ;
type CallStmt struct {
	stmt
	Name string
	Args []string // argument tokens, trimmed
}

// CondStmt represents an if or while line: Keyword ( Operands ) {
// Operands are separated by || or && in the source.
type CondStmt struct {
	stmt
	Keyword  string // "if" or "while"
	Operands []string
}

// EmptyStmt represents a blank line.
type EmptyStmt struct {
	stmt
}

// CommentStmt represents a comment line.
type CommentStmt struct {
	stmt
	Text string // text after "//"
}

// CloseStmt represents a closing brace line.
type CloseStmt struct {
	stmt
}

// ReturnStmt represents a "return;" line.
type ReturnStmt struct {
	stmt
}

func (*VarDecl) Kind() Kind     { return Declaration }
func (*AssignStmt) Kind() Kind  { return Assignment }
func (*MethodDecl) Kind() Kind  { return MethodSignature }
func (*CallStmt) Kind() Kind    { return MethodCall }
func (*CondStmt) Kind() Kind    { return Condition }
func (*EmptyStmt) Kind() Kind   { return EmptyLine }
func (*CommentStmt) Kind() Kind { return Comment }
func (*CloseStmt) Kind() Kind   { return CloseScope }
func (*ReturnStmt) Kind() Kind  { return Return }
