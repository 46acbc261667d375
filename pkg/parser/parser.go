// Package parser parses legacy page source into a statement-level tree.
//
// # Usage
//
//	file, err := parser.Parse(src)
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for the statement shapes
// the migrator rewrites:
//
//	file        → statement*
//	statement   → var_stmt | import_stmt | expr_stmt | raw_stmt
//	var_stmt    → (const|let|var) declarator ("," declarator)* [";"]
//	declarator  → IDENT ["=" initializer]
//	import_stmt → "import" IDENT "from" STRING [";"]
//	expr_stmt   → postfix_expr ["=" expr] [";"]
//	postfix_expr→ primary ("." IDENT | "(" args ")")*
//	primary     → IDENT | STRING | TEMPLATE | NUMBER
//
// Any statement or initializer outside this grammar is captured as a raw
// source slice and re-emitted verbatim by the printer. Parsing fails only on
// unterminated literals, comments, or delimiters.
package parser

import (
	"github.com/docshift-labs/docshift/pkg/token"
)

// Parser parses page source into a File.
type Parser struct {
	src      string
	lexer    *Lexer
	token    Token // current token
	peek     Token // lookahead token
	lastLine int   // line of the most recently consumed token
	errors   []error
	pending  []*token.Comment // comments drained from the lexer, not yet attached
}

// NewParser creates a new parser for the given source.
func NewParser(src string) *Parser {
	p := &Parser{
		src:   src,
		lexer: NewLexer(src),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the source and returns the file tree.
func Parse(src string) (*File, error) {
	p := NewParser(src)
	file := p.parseFile()
	if len(p.lexer.Errors) > 0 {
		return nil, p.lexer.Errors[0]
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return file, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.lastLine = p.token.Pos.Line
	p.token = p.peek
	p.peek = p.lexer.NextToken()
	p.drainComments()
}

// drainComments moves comments collected by the lexer into the pending list.
func (p *Parser) drainComments() {
	if len(p.lexer.Comments) == 0 {
		return
	}
	p.pending = append(p.pending, p.lexer.Comments...)
	p.lexer.Comments = nil
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t TokenType) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// addError adds a parse error at the given position.
func (p *Parser) addError(pos Position, msg string) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Message: msg})
}

// syncAt repositions the parser at the given byte offset, discarding pending
// comments at or after dropFrom (they are part of a raw source slice).
func (p *Parser) syncAt(offset, dropFrom int) {
	kept := p.pending[:0]
	for _, c := range p.pending {
		if c.Span.Start.Offset < dropFrom {
			kept = append(kept, c)
		}
	}
	p.pending = kept

	p.lexer.Rewind(offset, dropFrom)
	p.token = p.lexer.NextToken()
	p.peek = p.lexer.NextToken()
	p.drainComments()
}

// takeLeadingComments removes and returns pending comments that start before
// the given offset.
func (p *Parser) takeLeadingComments(before int) []*token.Comment {
	var taken []*token.Comment
	kept := p.pending[:0]
	for _, c := range p.pending {
		if c.Span.Start.Offset < before {
			taken = append(taken, c)
		} else {
			kept = append(kept, c)
		}
	}
	p.pending = kept
	return taken
}

// atStmtEnd reports whether the current token can end the statement:
// a semicolon, end of input, or a token on a later line.
func (p *Parser) atStmtEnd() bool {
	if p.check(token.SEMICOLON) || p.check(token.EOF) {
		return true
	}
	return p.token.Pos.Line > p.lastLine
}

// consumeStmtEnd consumes an optional semicolon at a statement boundary.
// Returns false if the current token cannot end the statement.
func (p *Parser) consumeStmtEnd() bool {
	if !p.atStmtEnd() {
		return false
	}
	p.match(token.SEMICOLON)
	return true
}

// ---------- File ----------

func (p *Parser) parseFile() *File {
	file := &File{}
	for !p.check(token.EOF) {
		start := p.token.Pos
		lead := p.takeLeadingComments(start.Offset)

		stmt := p.parseStmt(start)
		if stmt == nil {
			break
		}
		for _, c := range lead {
			stmtInfo(stmt).AddLeadingComment(c)
		}
		file.Stmts = append(file.Stmts, stmt)
	}

	// Comments after the last statement attach to the file
	for _, c := range p.takeLeadingComments(len(p.src) + 1) {
		file.AddTrailingComment(c)
	}
	return file
}

func (p *Parser) parseStmt(start Position) Stmt {
	switch p.token.Type {
	case token.CONST, token.LET, token.VAR:
		return p.parseVarStmt(start)
	case token.IMPORT:
		return p.parseImportStmt(start)
	default:
		return p.parseExprStmt(start)
	}
}

// stmtInfo returns the embedded NodeInfo of a statement.
func stmtInfo(s Stmt) *NodeInfo {
	switch t := s.(type) {
	case *VarStmt:
		return &t.NodeInfo
	case *ImportStmt:
		return &t.NodeInfo
	case *ExprStmt:
		return &t.NodeInfo
	case *ExportDefaultStmt:
		return &t.NodeInfo
	case *RawStmt:
		return &t.NodeInfo
	default:
		return nil
	}
}
