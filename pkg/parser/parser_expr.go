package parser

import (
	"github.com/docshift-labs/docshift/pkg/token"
)

// parsePostfixExpr parses a primary expression followed by any number of
// member accesses and calls. Returns false when the current token cannot
// start such an expression or a postfix step cannot be completed; the caller
// decides whether to fall back to a raw capture.
func (p *Parser) parsePostfixExpr() (Expr, bool) {
	x, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}

	for {
		switch p.token.Type {
		case token.DOT:
			p.nextToken()
			// Member names may collide with keywords (.default in particular)
			if !p.check(token.IDENT) && !token.IsKeyword(p.token.Type) {
				return nil, false
			}
			x = &MemberExpr{Object: x, Property: p.token.Literal}
			p.nextToken()
		case token.LPAREN:
			call, cok := p.parseCallArgs(x)
			if !cok {
				return nil, false
			}
			x = call
		default:
			return x, true
		}
	}
}

func (p *Parser) parsePrimaryExpr() (Expr, bool) {
	switch p.token.Type {
	case token.IDENT:
		x := &Ident{Name: p.token.Literal}
		p.nextToken()
		return x, true
	case token.STRING:
		x := &StringLit{Raw: p.token.Literal, Value: Unquote(p.token.Literal)}
		p.nextToken()
		return x, true
	case token.TEMPLATE:
		x := &TemplateLit{Raw: p.token.Literal, Cooked: CookTemplate(p.token.Literal)}
		p.nextToken()
		return x, true
	case token.NUMBER:
		x := &NumberLit{Raw: p.token.Literal}
		p.nextToken()
		return x, true
	default:
		return nil, false
	}
}

// parseCallArgs parses an argument list for a call on callee. Arguments
// outside the modeled expression grammar are captured raw, so a call keeps
// its shape no matter what is passed to it.
func (p *Parser) parseCallArgs(callee Expr) (*CallExpr, bool) {
	call := &CallExpr{Callee: callee}
	p.nextToken() // consume '('

	for !p.check(token.RPAREN) {
		if p.check(token.EOF) {
			return nil, false
		}

		argStart := p.token.Pos
		arg, ok := p.parsePostfixExpr()
		if !ok || !(p.check(token.COMMA) || p.check(token.RPAREN)) {
			p.syncAt(argStart.Offset, argStart.Offset)
			raw, rok := p.rawExprUntil(",)")
			if !rok {
				return nil, false
			}
			arg = raw
		}
		call.Args = append(call.Args, arg)

		if !p.match(token.COMMA) {
			break
		}
	}

	if !p.match(token.RPAREN) {
		return nil, false
	}
	return call, true
}
