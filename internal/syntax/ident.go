package syntax

// Character classification helpers

// isLetter reports whether r is an ASCII letter (a-z, A-Z).
func isLetter(r byte) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r byte) bool {
	return '0' <= r && r <= '9'
}

// isWordChar reports whether r is a word character: letter, digit or '_'.
func isWordChar(r byte) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func allWordChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether s is a legal variable name: a letter
// followed by word characters, or '_' followed by at least one word
// character. A lone "_" is not an identifier.
func IsIdentifier(s string) bool {
	switch {
	case s == "":
		return false
	case isLetter(s[0]):
		return allWordChars(s[1:])
	case s[0] == '_':
		return len(s) > 1 && allWordChars(s[1:])
	}
	return false
}

// IsMethodName reports whether s is a legal method name: a letter
// followed by word characters.
func IsMethodName(s string) bool {
	return s != "" && isLetter(s[0]) && allWordChars(s[1:])
}

// IsVariableRef reports whether a value token names a variable rather
// than spelling a literal.
func IsVariableRef(tok string) bool {
	return tok != kwTrue && tok != kwFalse && IsIdentifier(tok)
}

// leadingWord returns the run of word characters at the start of s.
func leadingWord(s string) string {
	i := 0
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return s[:i]
}
