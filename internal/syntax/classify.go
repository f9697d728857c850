package syntax

import "strings"

// A rule recognizes one line kind.
type rule struct {
	kind  Kind
	match func(line string) bool
}

// rules are tried in order; the first match wins. The kinds are meant to
// be mutually exclusive, but the order is the tie-break.
var rules = [...]rule{
	{Declaration, isDeclaration},
	{Assignment, isAssignment},
	{MethodSignature, isMethodSignature},
	{MethodCall, isMethodCall},
	{Condition, isCondition},
	{EmptyLine, isEmptyLine},
	{Comment, isComment},
	{CloseScope, func(line string) bool { return line == "}" }},
	{Return, func(line string) bool { return line == kwReturn+";" }},
}

// Classify reports the kind of a whitespace-trimmed source line.
// It returns Invalid, false when no rule matches.
func Classify(line string) (Kind, bool) {
	for _, r := range rules {
		if r.match(line) {
			return r.kind, true
		}
	}
	return Invalid, false
}

func hasParens(line string) bool {
	return strings.Contains(line, "(") || strings.Contains(line, ")")
}

func startsWithTypeName(line string) bool {
	for _, name := range TypeNames {
		if strings.HasPrefix(line, name) {
			return true
		}
	}
	return false
}

func isDeclaration(line string) bool {
	return (strings.HasPrefix(line, kwFinal) || startsWithTypeName(line)) && !hasParens(line)
}

func isAssignment(line string) bool {
	return strings.Contains(line, "=") &&
		!strings.Contains(line, kwIf) &&
		!strings.Contains(line, kwWhile) &&
		strings.HasSuffix(line, ";") &&
		!strings.HasPrefix(line, "//") &&
		!strings.Contains(line, kwVoid)
}

func isMethodSignature(line string) bool {
	return strings.HasPrefix(line, kwVoid) &&
		strings.Contains(line, "(") && strings.Contains(line, ")") &&
		!strings.Contains(line, ";") &&
		strings.HasSuffix(line, "{")
}

func isMethodCall(line string) bool {
	return strings.Contains(line, "(") && strings.Contains(line, ")") && strings.HasSuffix(line, ";")
}

func isCondition(line string) bool {
	return (strings.HasPrefix(line, kwIf) || strings.HasPrefix(line, kwWhile)) && strings.HasSuffix(line, "{")
}

func isEmptyLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//")
}
