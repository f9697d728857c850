package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the statements to w.
func FprintJSON(w io.Writer, stmts []Stmt) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mapSlice(stmts, toJSON))
}

func toJSON(s Stmt) interface{} {
	m := map[string]interface{}{
		"type": s.Kind().String(),
		"line": s.Pos().Line(),
	}

	switch n := s.(type) {
	case *VarDecl:
		m["final"] = n.Final
		m["vartype"] = n.Type
		m["vars"] = mapSlice(n.Specs, func(spec *VarSpec) interface{} {
			v := map[string]interface{}{"name": spec.Name}
			if spec.Value != "" {
				v["value"] = spec.Value
			}
			return v
		})

	case *AssignStmt:
		m["name"] = n.Name
		m["value"] = n.Value

	case *MethodDecl:
		m["name"] = n.Name
		m["params"] = mapSlice(n.Params, func(param *Param) interface{} {
			return map[string]interface{}{
				"final": param.Final,
				"type":  param.Type,
				"name":  param.Name,
			}
		})

	case *CallStmt:
		m["name"] = n.Name
		m["args"] = n.Args

	case *CondStmt:
		m["keyword"] = n.Keyword
		m["operands"] = n.Operands

	case *CommentStmt:
		m["text"] = n.Text
	}
	return m
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
