package parser

import "strings"

// Raw scanning works directly on the source text, not on tokens: it skips
// strings, templates, and comments, tracks bracket depth, and finds the end
// of a construct the token grammar does not model. Regex literals are not
// recognized; braces inside them are assumed balanced.

// scanStmtEnd returns the end offset (exclusive) of the raw statement
// starting at from. A statement ends at a semicolon at depth zero, or after
// the closing brace of a block body (function, class, control flow) unless a
// continuation keyword follows. Returns false when a delimiter is left open
// at end of input.
func scanStmtEnd(src string, from int) (int, bool) {
	depth := 0
	i := from
	for i < len(src) {
		c := src[i]
		if depth == 0 && c == '\n' && startsTopLevelStmt(src, i+1) {
			return i, true
		}
		switch c {
		case '\'', '"':
			i = skipStringRaw(src, i)
			continue
		case '`':
			ni, ok := skipTemplateRaw(src, i)
			if !ok {
				return len(src), false
			}
			i = ni
			continue
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				i = skipLineCommentRaw(src, i)
				continue
			}
			if i+1 < len(src) && src[i+1] == '*' {
				ni, ok := skipBlockCommentRaw(src, i)
				if !ok {
					return len(src), false
				}
				i = ni
				continue
			}
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return i, false
			}
			if depth == 0 && c == '}' {
				j := skipBlanksRaw(src, i+1)
				if j < len(src) && src[j] == ';' {
					return j + 1, true
				}
				if startsContinuation(src[j:]) {
					i = j
					continue
				}
				// A same-line operator after the brace means the statement
				// goes on (destructuring target, member access, comma list).
				if j < len(src) && strings.IndexByte("=.,", src[j]) >= 0 {
					i = j
					continue
				}
				return i + 1, true
			}
		case ';':
			if depth == 0 {
				return i + 1, true
			}
		}
		i++
	}
	return len(src), depth == 0
}

// scanExprEnd returns the offset of the first stop byte at depth zero,
// starting at from. The stop byte is not included. Returns false when the
// scan hits an unmatched closing bracket that is not a stop byte, or leaves
// a delimiter open at end of input.
func scanExprEnd(src string, from int, stops string) (int, bool) {
	depth := 0
	i := from
	for i < len(src) {
		c := src[i]
		if depth == 0 && strings.IndexByte(stops, c) >= 0 {
			return i, true
		}
		if depth == 0 && c == '\n' && startsTopLevelStmt(src, i+1) {
			return i, true
		}
		switch c {
		case '\'', '"':
			i = skipStringRaw(src, i)
			continue
		case '`':
			ni, ok := skipTemplateRaw(src, i)
			if !ok {
				return len(src), false
			}
			i = ni
			continue
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				i = skipLineCommentRaw(src, i)
				continue
			}
			if i+1 < len(src) && src[i+1] == '*' {
				ni, ok := skipBlockCommentRaw(src, i)
				if !ok {
					return len(src), false
				}
				i = ni
				continue
			}
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return i, false
			}
		}
		i++
	}
	return len(src), depth == 0
}

// skipStringRaw returns the offset after the closing quote. If the line ends
// before the string closes, the quote is treated as a plain character (JSX
// text apostrophes would otherwise poison the scan).
func skipStringRaw(src string, i int) int {
	quote := src[i]
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case '\n':
			return i + 1
		case quote:
			return j + 1
		}
		j++
	}
	return i + 1
}

// skipTemplateRaw returns the offset after the closing backtick.
func skipTemplateRaw(src string, i int) (int, bool) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case '`':
			return j + 1, true
		}
		j++
	}
	return len(src), false
}

// skipLineCommentRaw returns the offset of the terminating newline (or end
// of input).
func skipLineCommentRaw(src string, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// skipBlockCommentRaw returns the offset after the closing */.
func skipBlockCommentRaw(src string, i int) (int, bool) {
	j := i + 2
	for j+1 < len(src) {
		if src[j] == '*' && src[j+1] == '/' {
			return j + 2, true
		}
		j++
	}
	return len(src), false
}

// skipBlanksRaw skips spaces and tabs (not newlines).
func skipBlanksRaw(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}

// startsContinuation reports whether s begins with a keyword that continues
// the enclosing statement after a closing brace.
func startsContinuation(s string) bool {
	for _, kw := range []string{"else", "catch", "finally", "while"} {
		if hasKeywordPrefix(s, kw) {
			return true
		}
	}
	return false
}

// startsTopLevelStmt reports whether the first code at or after offset i,
// skipping whitespace and comments, opens a new top-level statement. The raw
// scans use it to honor semicolon elision: a line break at depth zero ends
// the capture when what follows can only begin a statement, never continue
// an expression.
func startsTopLevelStmt(src string, i int) bool {
	for i < len(src) {
		switch {
		case src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r':
			i++
		case src[i] == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLineCommentRaw(src, i)
		case src[i] == '/' && i+1 < len(src) && src[i+1] == '*':
			ni, ok := skipBlockCommentRaw(src, i)
			if !ok {
				return false
			}
			i = ni
		default:
			return startsStmtKeyword(src[i:])
		}
	}
	return false
}

// startsStmtKeyword matches the statement openers that must never be folded
// into a preceding raw capture: declarations, import/export forms, function
// and class declarations, and the module.exports target. "import" followed
// by '(' or '.' is a dynamic import or import.meta expression and does not
// count.
func startsStmtKeyword(s string) bool {
	for _, kw := range []string{"const", "let", "var", "export", "function", "class"} {
		if hasKeywordPrefix(s, kw) {
			return true
		}
	}
	if hasKeywordPrefix(s, "import") {
		j := skipBlanksRaw(s, len("import"))
		return j < len(s) && s[j] != '(' && s[j] != '.'
	}
	if hasKeywordPrefix(s, "module") {
		j := skipBlanksRaw(s, len("module"))
		return j < len(s) && s[j] == '.'
	}
	return false
}

// hasKeywordPrefix reports whether s starts with kw followed by a
// non-identifier character (or end of input).
func hasKeywordPrefix(s, kw string) bool {
	if !strings.HasPrefix(s, kw) {
		return false
	}
	rest := s[len(kw):]
	if rest == "" {
		return true
	}
	c := rest[0]
	return !(c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9'))
}
