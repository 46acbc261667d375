package parser

import (
	"strings"

	"github.com/docshift-labs/docshift/pkg/token"
)

// Stmt represents a top-level statement.
type Stmt interface {
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	exprNode()
}

// NodeInfo provides common fields for all AST nodes.
// Embed this in node types that need position/comment tracking.
type NodeInfo struct {
	Span             token.Span
	LeadingComments  []*token.Comment
	TrailingComments []*token.Comment
}

// GetSpan returns the node's source span.
func (n *NodeInfo) GetSpan() token.Span {
	return n.Span
}

// AddLeadingComment adds a leading comment to the node.
func (n *NodeInfo) AddLeadingComment(c *token.Comment) {
	n.LeadingComments = append(n.LeadingComments, c)
}

// AddTrailingComment adds a trailing comment to the node.
func (n *NodeInfo) AddTrailingComment(c *token.Comment) {
	n.TrailingComments = append(n.TrailingComments, c)
}

// File is the root of a parsed page: an ordered list of top-level statements.
// Trailing comments after the last statement attach to the file itself.
type File struct {
	NodeInfo
	Stmts []Stmt
}

// ReplaceStmt substitutes the statement at index i.
func (f *File) ReplaceStmt(i int, s Stmt) {
	f.Stmts[i] = s
}

// InsertAfter inserts a statement immediately after index i.
func (f *File) InsertAfter(i int, s Stmt) {
	f.Stmts = append(f.Stmts, nil)
	copy(f.Stmts[i+2:], f.Stmts[i+1:])
	f.Stmts[i+1] = s
}

// ---------- Statement Types ----------

// VarStmt represents a variable statement: const/let/var with declarators.
type VarStmt struct {
	NodeInfo
	Kind  string // "const", "let", or "var"
	Decls []*Declarator
}

func (*VarStmt) stmtNode() {}

// Declarator represents one name = initializer pair in a VarStmt.
// Init may be nil for a bare declaration.
type Declarator struct {
	NodeInfo
	Name string
	Init Expr
}

// ImportStmt represents a default-binding import: import Name from "path";
// Other import forms are not modeled and parse as raw statements.
type ImportStmt struct {
	NodeInfo
	Name string
	Path *StringLit
}

func (*ImportStmt) stmtNode() {}

// ExprStmt represents an expression statement, including assignments.
type ExprStmt struct {
	NodeInfo
	X Expr
}

func (*ExprStmt) stmtNode() {}

// ExportDefaultStmt represents an export default declaration. The parser
// never produces one (export forms scan as raw statements); the migrator
// synthesizes them.
type ExportDefaultStmt struct {
	NodeInfo
	X Expr
}

func (*ExportDefaultStmt) stmtNode() {}

// RawStmt carries a top-level statement the grammar does not model, as an
// exact source slice. The printer re-emits it verbatim.
type RawStmt struct {
	NodeInfo
	Text string
}

func (*RawStmt) stmtNode() {}

// ---------- Expression Types ----------

// Ident represents an identifier reference.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// StringLit represents a string literal. Raw is the source text including
// quotes; Value is the unescaped content.
type StringLit struct {
	Raw   string
	Value string
}

func (*StringLit) exprNode() {}

// TemplateLit represents a template literal. Raw is the source text
// including backticks; Cooked is the concatenation of the literal text
// segments with ${ ... } substitutions dropped.
type TemplateLit struct {
	Raw    string
	Cooked string
}

func (*TemplateLit) exprNode() {}

// NumberLit represents a numeric literal.
type NumberLit struct {
	Raw string
}

func (*NumberLit) exprNode() {}

// CallExpr represents a call expression.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// MemberExpr represents a dot member access.
type MemberExpr struct {
	Object   Expr
	Property string
}

func (*MemberExpr) exprNode() {}

// AssignExpr represents a bare assignment: target = value.
type AssignExpr struct {
	Target Expr
	Value  Expr
}

func (*AssignExpr) exprNode() {}

// RawExpr carries an expression the grammar does not model, as an exact
// source slice.
type RawExpr struct {
	Text string
}

func (*RawExpr) exprNode() {}

// ObjectLit represents an object literal. Only synthesized by the migrator;
// object initializers in source scan as raw expressions.
type ObjectLit struct {
	Props []*Property
}

func (*ObjectLit) exprNode() {}

// Property represents one key: value pair in an object literal.
type Property struct {
	Key   string
	Value Expr
}

// ArrowFn represents a single-parameter arrow function with an expression
// body. Only synthesized by the migrator.
type ArrowFn struct {
	Param string
	Body  Expr
}

func (*ArrowFn) exprNode() {}

// JSXElement represents a markup element. Only synthesized by the migrator.
// An element with no children prints self-closed.
type JSXElement struct {
	Tag      string
	Spread   string // parameter name spread onto the element, "" for none
	Children []Expr
}

func (*JSXElement) exprNode() {}

// ---------- Literal helpers ----------

// Unquote returns the unescaped content of a raw quoted string literal.
func Unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	quote := raw[0]
	body := raw[1:]
	if body[len(body)-1] == quote {
		body = body[:len(body)-1]
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(body[i])
			}
			continue
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

// CookTemplate returns the concatenated literal text segments of a raw
// template literal, with ${ ... } substitutions dropped.
func CookTemplate(raw string) string {
	body := strings.TrimPrefix(raw, "`")
	body = strings.TrimSuffix(body, "`")

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			b.WriteByte(body[i+1])
			i++
			continue
		}
		if body[i] == '$' && i+1 < len(body) && body[i+1] == '{' {
			depth := 1
			i += 2
			for i < len(body) && depth > 0 {
				switch body[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}
			i-- // loop increment lands on the char after '}'
			continue
		}
		b.WriteByte(body[i])
	}
	return b.String()
}
