package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/docshift-labs/docshift/pkg/parser"
	"github.com/docshift-labs/docshift/pkg/token"
)

const indentSize = 2

// Printer renders page statements with indentation tracking.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the rendered output.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) formatComments(comments []*token.Comment) {
	for _, c := range comments {
		p.write(c.Text)
		p.writeln()
	}
}

// endStmt closes a statement line, appending any trailing comments on the
// same line.
func (p *Printer) endStmt(comments []*token.Comment) {
	for _, c := range comments {
		p.write(" ")
		p.write(c.Text)
	}
	p.writeln()
}

// ---------- Statements ----------

func (p *Printer) formatFile(file *parser.File) {
	for _, stmt := range file.Stmts {
		p.formatStmt(stmt)
	}
	p.formatComments(file.TrailingComments)
}

func (p *Printer) formatStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.VarStmt:
		p.formatComments(s.LeadingComments)
		p.write(s.Kind)
		p.write(" ")
		for i, d := range s.Decls {
			if i > 0 {
				p.write(", ")
			}
			p.write(d.Name)
			if d.Init != nil {
				p.write(" = ")
				p.formatExpr(d.Init)
			}
		}
		p.write(";")
		p.endStmt(s.TrailingComments)
	case *parser.ImportStmt:
		p.formatComments(s.LeadingComments)
		p.write("import ")
		p.write(s.Name)
		p.write(" from ")
		p.formatExpr(s.Path)
		p.write(";")
		p.endStmt(s.TrailingComments)
	case *parser.ExprStmt:
		p.formatComments(s.LeadingComments)
		p.formatExpr(s.X)
		p.write(";")
		p.endStmt(s.TrailingComments)
	case *parser.ExportDefaultStmt:
		p.formatComments(s.LeadingComments)
		p.write("export default ")
		p.formatExpr(s.X)
		p.write(";")
		p.endStmt(s.TrailingComments)
	case *parser.RawStmt:
		p.formatComments(s.LeadingComments)
		p.write(s.Text)
		p.endStmt(s.TrailingComments)
	default:
		p.write(fmt.Sprintf("/* unknown statement %T */", stmt))
		p.writeln()
	}
}

// ---------- Expressions ----------

func (p *Printer) formatExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.Ident:
		p.write(e.Name)
	case *parser.StringLit:
		if e.Raw != "" {
			p.write(e.Raw)
		} else {
			p.write(`"` + e.Value + `"`)
		}
	case *parser.TemplateLit:
		p.write(e.Raw)
	case *parser.NumberLit:
		p.write(e.Raw)
	case *parser.CallExpr:
		p.formatExpr(e.Callee)
		p.write("(")
		for i, arg := range e.Args {
			if i > 0 {
				p.write(", ")
			}
			p.formatExpr(arg)
		}
		p.write(")")
	case *parser.MemberExpr:
		p.formatExpr(e.Object)
		p.write(".")
		p.write(e.Property)
	case *parser.AssignExpr:
		p.formatExpr(e.Target)
		p.write(" = ")
		p.formatExpr(e.Value)
	case *parser.ObjectLit:
		p.formatObjectLit(e)
	case *parser.ArrowFn:
		p.write("(")
		p.write(e.Param)
		p.write(") => ")
		p.formatExpr(e.Body)
	case *parser.JSXElement:
		p.formatJSXElement(e)
	case *parser.RawExpr:
		p.write(e.Text)
	default:
		p.write(fmt.Sprintf("/* unknown expression %T */", expr))
	}
}

func (p *Printer) formatObjectLit(obj *parser.ObjectLit) {
	if len(obj.Props) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.writeln()
	p.indent()
	for _, prop := range obj.Props {
		p.write(prop.Key)
		p.write(": ")
		p.formatExpr(prop.Value)
		p.write(",")
		p.writeln()
	}
	p.dedent()
	p.write("}")
}

func (p *Printer) formatJSXElement(el *parser.JSXElement) {
	p.write("<")
	p.write(el.Tag)
	if el.Spread != "" {
		p.write(" {..." + el.Spread + "}")
	}
	if len(el.Children) == 0 {
		p.write(" />")
		return
	}
	p.write(">")
	for _, child := range el.Children {
		p.formatExpr(child)
	}
	p.write("</")
	p.write(el.Tag)
	p.write(">")
}
