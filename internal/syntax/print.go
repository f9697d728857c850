package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the statements to w, one
// block per line of source. Lines inside a method or condition block are
// indented one level per enclosing block.
func Fprint(w io.Writer, stmts []Stmt) {
	p := &printer{w: w}
	for _, s := range stmts {
		if s.Kind() == CloseScope && p.indent > 0 {
			p.indent--
		}
		p.print(s)
		if s.Kind().OpensScope() {
			p.indent++
		}
	}
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(s Stmt) {
	p.printf("%s %s\n", s.Kind(), s.Pos())
	p.indent++
	defer func() { p.indent-- }()

	switch n := s.(type) {
	case *VarDecl:
		if n.Final {
			p.printf("Final: true\n")
		}
		p.printf("Type: %s\n", n.Type)
		for _, spec := range n.Specs {
			if spec.Value != "" {
				p.printf("Var: %s = %s\n", spec.Name, spec.Value)
			} else {
				p.printf("Var: %s\n", spec.Name)
			}
		}

	case *AssignStmt:
		p.printf("Name: %s\n", n.Name)
		p.printf("Value: %s\n", n.Value)

	case *MethodDecl:
		p.printf("Name: %s\n", n.Name)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, param := range n.Params {
				if param.Final {
					p.printf("final %s %s\n", param.Type, param.Name)
				} else {
					p.printf("%s %s\n", param.Type, param.Name)
				}
			}
			p.indent--
		}

	case *CallStmt:
		p.printf("Name: %s\n", n.Name)
		if len(n.Args) > 0 {
			p.printf("Args: %s\n", strings.Join(n.Args, ", "))
		}

	case *CondStmt:
		p.printf("Keyword: %s\n", n.Keyword)
		p.printf("Operands: %s\n", strings.Join(n.Operands, ", "))

	case *CommentStmt:
		if n.Text != "" {
			p.printf("Text: %s\n", n.Text)
		}

	case *EmptyStmt, *CloseStmt, *ReturnStmt:
		// no fields
	}
}
