package parser

import (
	"unicode"

	"github.com/docshift-labs/docshift/pkg/token"
)

// Lexer tokenizes legacy page source.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// Comments collected during lexing (for the printer)
	Comments []*token.Comment

	// Errors collected during lexing (unterminated literals)
	Errors []error
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Rewind repositions the lexer to the given byte offset and drops any
// collected comments at or after dropFrom. The parser uses it to re-scan a
// statement as raw text after a speculative parse fails partway through.
func (l *Lexer) Rewind(offset, dropFrom int) {
	l.pos = 0
	l.readPos = 0
	l.line = 1
	l.col = 0
	l.ch = 0
	l.readChar()
	for l.pos < offset && l.ch != 0 {
		l.readChar()
	}

	kept := l.Comments[:0]
	for _, c := range l.Comments {
		if c.Span.Start.Offset < dropFrom {
			kept = append(kept, c)
		}
	}
	l.Comments = kept
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	var tok Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '=':
		// Only bare assignment is a token; ==, =>, etc. belong to raw code.
		if l.peekChar() == '=' || l.peekChar() == '>' {
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		} else {
			tok = l.newToken(token.ASSIGN, "=")
		}
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case ':':
		tok = l.newToken(token.COLON, ":")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case '[':
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case '\'', '"':
		tok.Type = token.STRING
		tok.Literal = l.readString(l.ch)
		tok.Pos = pos
		return tok
	case '`':
		tok.Type = token.TEMPLATE
		tok.Literal = l.readTemplate()
		tok.Pos = pos
		return tok
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_' || l.ch == '$':
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			tok.Pos = pos
			return tok
		case isDigit(l.ch):
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			tok.Pos = pos
			return tok
		default:
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// newToken creates a new token.
func (l *Lexer) newToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '/' && l.peekChar() == '/' {
			l.collectLineComment()
			continue
		}

		if l.ch == '/' && l.peekChar() == '*' {
			l.collectBlockComment()
			continue
		}

		break
	}
}

// collectLineComment collects a // comment.
func (l *Lexer) collectLineComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.LineComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// collectBlockComment collects a /* ... */ comment.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	l.readChar() // skip '/'
	l.readChar() // skip '*'

	terminated := false
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			terminated = true
			break
		}
		l.readChar()
	}
	if !terminated {
		l.Errors = append(l.Errors, &LexError{Pos: startPos, Message: ErrUnterminatedComment})
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.BlockComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// readString reads a quoted string literal and returns the raw source text
// including the quotes. Backslash escapes are carried through untouched so
// the printer can re-emit the literal byte-for-byte.
func (l *Lexer) readString(quote byte) string {
	startOffset := l.pos
	startPos := l.currentPos()
	l.readChar() // skip opening quote

	terminated := false
	for l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar() // skip escape
			l.readChar() // skip escaped char
			continue
		}
		if l.ch == quote {
			l.readChar() // skip closing quote
			terminated = true
			break
		}
		l.readChar()
	}
	if !terminated {
		l.Errors = append(l.Errors, &LexError{Pos: startPos, Message: ErrUnterminatedString})
	}
	return l.input[startOffset:l.pos]
}

// readTemplate reads a backtick template literal and returns the raw source
// text including the backticks. ${ ... } substitutions may nest braces and
// contain quoted strings.
func (l *Lexer) readTemplate() string {
	startOffset := l.pos
	startPos := l.currentPos()
	l.readChar() // skip opening backtick

	terminated := false
	for l.ch != 0 {
		switch {
		case l.ch == '\\' && l.peekChar() != 0:
			l.readChar()
			l.readChar()
		case l.ch == '`':
			l.readChar() // skip closing backtick
			terminated = true
		case l.ch == '$' && l.peekChar() == '{':
			l.readChar() // skip '$'
			l.readChar() // skip '{'
			l.skipSubstitution()
		default:
			l.readChar()
		}
		if terminated {
			break
		}
	}
	if !terminated {
		l.Errors = append(l.Errors, &LexError{Pos: startPos, Message: ErrUnterminatedTemplate})
	}
	return l.input[startOffset:l.pos]
}

// skipSubstitution consumes a ${ ... } body up to its closing brace.
func (l *Lexer) skipSubstitution() {
	depth := 1
	for l.ch != 0 && depth > 0 {
		switch l.ch {
		case '\'', '"':
			l.skipQuoted(l.ch)
			continue
		case '{':
			depth++
		case '}':
			depth--
		}
		l.readChar()
	}
}

// skipQuoted skips over a quoted string inside a template substitution.
func (l *Lexer) skipQuoted(quote byte) {
	l.readChar() // skip opening quote
	for l.ch != 0 {
		if l.ch == quote {
			l.readChar() // skip closing quote
			return
		}
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar() // skip escape
		}
		l.readChar()
	}
}

// readIdentifier reads an identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '$' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar() // skip 'e' or 'E'
		if l.ch == '+' || l.ch == '-' {
			l.readChar() // skip sign
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
