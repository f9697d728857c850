package syntax

import (
	"regexp"
	"strings"

	"github.com/you-not-fish/sjavac/internal/diag"
)

// typeNameRx matches a type keyword as a whole word.
var typeNameRx = regexp.MustCompile(`\b(?:` + strings.Join(TypeNames[:], "|") + `)\b`)

// conditionSep separates the operands of a condition.
var conditionSep = regexp.MustCompile(`\|\||&&`)

// parser decomposes a single classified line.
type parser struct {
	pos  Pos
	line string
}

// Parse classifies a whitespace-trimmed line and decomposes it into a
// statement node. A line that matches no classification rule, or whose
// shape does not fit its kind, is reported as a *diag.Error at pos.
func Parse(pos Pos, line string) (Stmt, error) {
	p := &parser{pos: pos, line: line}

	kind, ok := Classify(line)
	if !ok {
		return nil, p.error(diag.InvalidSyntax)
	}

	switch kind {
	case Declaration:
		return p.varDecl()
	case Assignment:
		return p.assignStmt()
	case MethodSignature:
		return p.methodDecl()
	case MethodCall:
		return p.callStmt()
	case Condition:
		return p.condStmt()
	case EmptyLine:
		return &EmptyStmt{stmt{pos}}, nil
	case Comment:
		return &CommentStmt{stmt: stmt{pos}, Text: strings.TrimSpace(line[2:])}, nil
	case CloseScope:
		return &CloseStmt{stmt{pos}}, nil
	case Return:
		return &ReturnStmt{stmt{pos}}, nil
	}
	return nil, p.error(diag.InvalidSyntax)
}

func (p *parser) error(kind diag.Kind) error {
	return &diag.Error{Kind: kind, File: p.pos.Filename(), Line: p.pos.Line()}
}

// varDecl parses: [final] Type Name [= Value] {, Name [= Value]} ;
func (p *parser) varDecl() (Stmt, error) {
	// The type keyword must appear exactly once outside literals.
	if n := len(typeNameRx.FindAllStringIndex(maskQuoted(p.line), -1)); n != 1 {
		return nil, p.error(diag.InvalidSyntax)
	}

	d := &VarDecl{stmt: stmt{p.pos}}
	rest := p.line
	if leadingWord(rest) == kwFinal {
		d.Final = true
		rest = strings.TrimSpace(rest[len(kwFinal):])
	}

	d.Type = leadingWord(rest)
	if !IsTypeName(d.Type) {
		return nil, p.error(diag.InvalidType)
	}
	rest = strings.TrimSpace(rest[len(d.Type):])

	body, ok := strings.CutSuffix(rest, ";")
	if !ok {
		return nil, p.error(diag.InvalidSyntax)
	}

	for _, part := range splitOutside(body, ',') {
		name, value, hasValue := cutOutside(part, '=')
		spec := &VarSpec{Name: strings.TrimSpace(name)}
		if hasValue {
			spec.Value = strings.TrimSpace(value)
			if spec.Value == "" {
				return nil, p.error(diag.InvalidSyntax)
			}
		}
		d.Specs = append(d.Specs, spec)
	}
	return d, nil
}

// assignStmt parses: Name = Value ;
func (p *parser) assignStmt() (Stmt, error) {
	body := strings.TrimSuffix(p.line, ";")
	if countOutside(body, '=') != 1 {
		return nil, p.error(diag.InvalidSyntax)
	}
	name, value, _ := cutOutside(body, '=')
	a := &AssignStmt{
		stmt:  stmt{p.pos},
		Name:  strings.TrimSpace(name),
		Value: strings.TrimSpace(value),
	}
	if a.Name == "" || a.Value == "" {
		return nil, p.error(diag.InvalidSyntax)
	}
	return a, nil
}

// methodDecl parses: void Name ( [final] Type Name {, [final] Type Name} ) {
func (p *parser) methodDecl() (Stmt, error) {
	rest := p.line[len(kwVoid):]
	if rest == "" || !isSpace(rest[0]) {
		return nil, p.error(diag.InvalidSyntax)
	}

	lparen := strings.IndexByte(rest, '(')
	rparen := strings.IndexByte(rest, ')')
	if rparen < lparen || strings.Count(rest, "(") != 1 || strings.Count(rest, ")") != 1 {
		return nil, p.error(diag.InvalidSyntax)
	}
	if strings.TrimSpace(rest[rparen+1:]) != "{" {
		return nil, p.error(diag.InvalidSyntax)
	}

	m := &MethodDecl{
		stmt: stmt{p.pos},
		Name: strings.TrimSpace(rest[:lparen]),
	}
	params := strings.TrimSpace(rest[lparen+1 : rparen])
	if params == "" {
		return m, nil
	}
	for _, part := range strings.Split(params, ",") {
		fields := strings.Fields(part)
		switch {
		case len(fields) == 2:
			m.Params = append(m.Params, &Param{Type: fields[0], Name: fields[1]})
		case len(fields) == 3 && fields[0] == kwFinal:
			m.Params = append(m.Params, &Param{Final: true, Type: fields[1], Name: fields[2]})
		default:
			return nil, p.error(diag.InvalidMethodStructure)
		}
	}
	return m, nil
}

// callStmt parses: Name ( [Arg {, Arg}] ) ;
func (p *parser) callStmt() (Stmt, error) {
	body := strings.TrimSuffix(p.line, ";")
	lparen := indexOutside(body, '(')
	rparen := lastIndexOutside(body, ')')
	if lparen < 0 || rparen < lparen || strings.TrimSpace(body[rparen+1:]) != "" {
		return nil, p.error(diag.InvalidSyntax)
	}

	c := &CallStmt{
		stmt: stmt{p.pos},
		Name: strings.TrimSpace(body[:lparen]),
	}
	if !IsMethodName(c.Name) || IsKeyword(c.Name) {
		return nil, p.error(diag.InvalidMethodCall)
	}
	args := strings.TrimSpace(body[lparen+1 : rparen])
	if args == "" {
		return c, nil
	}
	for _, arg := range splitOutside(args, ',') {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return nil, p.error(diag.InvalidMethodCall)
		}
		c.Args = append(c.Args, arg)
	}
	return c, nil
}

// condStmt parses: if|while ( Operand {||,&& Operand} ) {
func (p *parser) condStmt() (Stmt, error) {
	c := &CondStmt{stmt: stmt{p.pos}, Keyword: kwIf}
	if strings.HasPrefix(p.line, kwWhile) {
		c.Keyword = kwWhile
	}

	rest := strings.TrimSpace(p.line[len(c.Keyword):])
	rest = strings.TrimSpace(strings.TrimSuffix(rest, "{"))
	if len(rest) < 2 || rest[0] != '(' || rest[len(rest)-1] != ')' {
		return nil, p.error(diag.InvalidCondition)
	}
	inner := strings.TrimSpace(rest[1 : len(rest)-1])
	if inner == "" {
		return nil, p.error(diag.InvalidCondition)
	}
	for _, op := range conditionSep.Split(inner, -1) {
		op = strings.TrimSpace(op)
		if op == "" {
			return nil, p.error(diag.InvalidCondition)
		}
		c.Operands = append(c.Operands, op)
	}
	return c, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// ----------------------------------------------------------------------------
// Quote-aware helpers
//
// String and char literals may contain separators (',', '=', '(' ...),
// so splitting must skip over them. A literal runs from a quote to the
// next identical quote.

// scanOutside calls fn with the index of every byte of s that is not
// part of a quoted literal. Scanning stops when fn returns false.
func scanOutside(s string, fn func(i int) bool) {
	var quote byte
	for i := 0; i < len(s); i++ {
		b := s[i]
		if quote != 0 {
			if b == quote {
				quote = 0
			}
			continue
		}
		if b == '"' || b == '\'' {
			quote = b
			continue
		}
		if !fn(i) {
			return
		}
	}
}

func indexOutside(s string, c byte) int {
	idx := -1
	scanOutside(s, func(i int) bool {
		if s[i] == c {
			idx = i
			return false
		}
		return true
	})
	return idx
}

func lastIndexOutside(s string, c byte) int {
	idx := -1
	scanOutside(s, func(i int) bool {
		if s[i] == c {
			idx = i
		}
		return true
	})
	return idx
}

func countOutside(s string, c byte) int {
	n := 0
	scanOutside(s, func(i int) bool {
		if s[i] == c {
			n++
		}
		return true
	})
	return n
}

// cutOutside slices s around the first unquoted sep.
func cutOutside(s string, sep byte) (before, after string, found bool) {
	if i := indexOutside(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// splitOutside splits s at every unquoted sep.
func splitOutside(s string, sep byte) []string {
	var parts []string
	start := 0
	scanOutside(s, func(i int) bool {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
		return true
	})
	return append(parts, s[start:])
}

// maskQuoted replaces quoted literals, quotes included, with spaces.
func maskQuoted(s string) string {
	masked := []byte(strings.Repeat(" ", len(s)))
	scanOutside(s, func(i int) bool {
		masked[i] = s[i]
		return true
	})
	return string(masked)
}
