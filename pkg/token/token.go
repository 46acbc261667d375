// Package token defines the lexical tokens for the legacy page grammar.
//
// The migrator only models the statement shapes it rewrites; the token set
// is correspondingly small. Anything outside it is carried through the
// parser as raw source text.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT    // identifier
	NUMBER   // 123, 45.67, 1e10
	STRING   // 'path' or "path", raw text including quotes
	TEMPLATE // `...${expr}...`, raw text including backticks

	// Punctuation
	ASSIGN    // =
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]

	// Keywords
	CONST
	LET
	VAR
	IMPORT
	EXPORT
	FROM
	FUNCTION
	CLASS
	DEFAULT
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:    "IDENT",
	NUMBER:   "NUMBER",
	STRING:   "STRING",
	TEMPLATE: "TEMPLATE",

	ASSIGN:    "=",
	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",

	CONST:    "const",
	LET:      "let",
	VAR:      "var",
	IMPORT:   "import",
	EXPORT:   "export",
	FROM:     "from",
	FUNCTION: "function",
	CLASS:    "class",
	DEFAULT:  "default",
}

// keywords maps keyword strings to their token types.
// Only keywords the parser dispatches on are listed; all other reserved
// words lex as IDENT and end up inside raw statements.
var keywords = map[string]TokenType{
	"const":    CONST,
	"let":      LET,
	"var":      VAR,
	"import":   IMPORT,
	"export":   EXPORT,
	"from":     FROM,
	"function": FUNCTION,
	"class":    CLASS,
	"default":  DEFAULT,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= CONST && t <= DEFAULT
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// Span represents a source range from Start to End.
type Span struct {
	Start Position
	End   Position
}

// CommentKind distinguishes line and block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // // ...
	BlockComment                    // /* ... */
)

// Comment represents a source comment collected during lexing.
type Comment struct {
	Kind CommentKind
	Text string // raw text including delimiters
	Span Span
}
