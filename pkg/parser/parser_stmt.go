package parser

import (
	"github.com/docshift-labs/docshift/pkg/token"
)

// parseVarStmt parses a const/let/var statement. Any shape outside the
// modeled grammar (destructuring, multi-line continuations, operators in the
// initializer tail) falls back to a raw statement.
func (p *Parser) parseVarStmt(start Position) Stmt {
	stmt := &VarStmt{Kind: p.token.Literal}
	stmt.Span.Start = start
	p.nextToken()

	for {
		if !p.check(token.IDENT) {
			return p.rawStmt(start)
		}
		decl := &Declarator{Name: p.token.Literal}
		decl.Span.Start = p.token.Pos
		p.nextToken()

		if p.match(token.ASSIGN) {
			init, ok := p.parsePostfixExpr()
			if !ok || !(p.check(token.COMMA) || p.atStmtEnd()) {
				// Initializer is outside the modeled grammar; capture it raw.
				p.syncAt(decl.Span.Start.Offset, decl.Span.Start.Offset)
				p.nextToken() // step past the declarator name
				if !p.match(token.ASSIGN) {
					return p.rawStmt(start)
				}
				raw, rok := p.rawExprUntil(",;")
				if !rok {
					return p.rawStmt(start)
				}
				init = raw
			}
			decl.Init = init
		}
		decl.Span.End = p.token.Pos
		stmt.Decls = append(stmt.Decls, decl)

		if p.match(token.COMMA) {
			continue
		}
		break
	}

	if !p.consumeStmtEnd() {
		return p.rawStmt(start)
	}
	stmt.Span.End = p.token.Pos
	return stmt
}

// parseImportStmt parses a default-binding import. Named and namespace
// import forms fall back to raw statements.
func (p *Parser) parseImportStmt(start Position) Stmt {
	p.nextToken() // consume 'import'

	if !p.check(token.IDENT) {
		return p.rawStmt(start)
	}
	name := p.token.Literal
	p.nextToken()

	if !p.match(token.FROM) {
		return p.rawStmt(start)
	}
	if !p.check(token.STRING) {
		return p.rawStmt(start)
	}
	path := &StringLit{Raw: p.token.Literal, Value: Unquote(p.token.Literal)}
	p.nextToken()

	if !p.consumeStmtEnd() {
		return p.rawStmt(start)
	}

	stmt := &ImportStmt{Name: name, Path: path}
	stmt.Span = Span{Start: start, End: p.token.Pos}
	return stmt
}

// parseExprStmt parses an expression statement, including the bare
// assignment form the export transformer matches on.
func (p *Parser) parseExprStmt(start Position) Stmt {
	x, ok := p.parsePostfixExpr()
	if !ok {
		return p.rawStmt(start)
	}

	if p.match(token.ASSIGN) {
		rhsStart := p.token.Pos
		rhs, rok := p.parsePostfixExpr()
		if !rok || !p.atStmtEnd() {
			p.syncAt(rhsStart.Offset, rhsStart.Offset)
			raw, sok := p.rawExprUntil(";")
			if !sok {
				return p.rawStmt(start)
			}
			rhs = raw
		}
		x = &AssignExpr{Target: x, Value: rhs}
	}

	if !p.consumeStmtEnd() {
		return p.rawStmt(start)
	}

	stmt := &ExprStmt{X: x}
	stmt.Span = Span{Start: start, End: p.token.Pos}
	return stmt
}

// rawStmt re-scans the statement beginning at start as a raw source slice.
func (p *Parser) rawStmt(start Position) Stmt {
	end, ok := scanStmtEnd(p.src, start.Offset)
	if !ok {
		p.addError(start, ErrUnterminatedStmt)
		end = len(p.src)
	}
	if end <= start.Offset {
		end = start.Offset + 1
	}
	if end > len(p.src) {
		end = len(p.src)
	}

	text := p.src[start.Offset:end]
	p.syncAt(end, start.Offset)

	stmt := &RawStmt{Text: text}
	stmt.Span = Span{Start: start, End: p.token.Pos}
	return stmt
}

// rawExprUntil captures a raw expression from the current token up to one of
// the stop bytes at bracket depth zero. The stop byte is not consumed.
func (p *Parser) rawExprUntil(stops string) (*RawExpr, bool) {
	start := p.token.Pos
	end, ok := scanExprEnd(p.src, start.Offset, stops)
	if !ok {
		p.addError(start, ErrUnterminatedStmt)
		return nil, false
	}

	text := trimRightSpace(p.src[start.Offset:end])
	p.syncAt(end, start.Offset)
	return &RawExpr{Text: text}, true
}

func trimRightSpace(s string) string {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case ' ', '\t', '\n', '\r':
			s = s[:len(s)-1]
		default:
			return s
		}
	}
	return s
}
