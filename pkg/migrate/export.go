package migrate

import (
	"github.com/docshift-labs/docshift/pkg/parser"
)

// The reserved export-target path on legacy pages.
const (
	exportTargetObject   = "module"
	exportTargetProperty = "exports"
)

// rewriteExports replaces every top-level `module.exports = X;` with
//
//	export default (props) => <Layout><X {...props} /></Layout>;
//
// carrying the original statement's comments. The same shape at any nested
// depth lives inside raw statement bodies and is never touched. Each match
// is independent; replacement order does not matter. Returns the number of
// statements rewritten.
func rewriteExports(file *parser.File) int {
	n := 0
	for i, stmt := range file.Stmts {
		es, ok := stmt.(*parser.ExprStmt)
		if !ok {
			continue
		}
		name, ok := exportedIdent(es.X)
		if !ok {
			continue
		}

		export := &parser.ExportDefaultStmt{
			X: &parser.ArrowFn{
				Param: stubParam,
				Body: &parser.JSXElement{
					Tag: layoutName,
					Children: []parser.Expr{
						&parser.JSXElement{Tag: name, Spread: stubParam},
					},
				},
			},
		}
		export.LeadingComments = es.LeadingComments
		export.TrailingComments = es.TrailingComments

		file.ReplaceStmt(i, export)
		n++
	}
	return n
}

// exportedIdent matches `module.exports = <identifier>` and returns the
// identifier name.
func exportedIdent(x parser.Expr) (string, bool) {
	assign, ok := x.(*parser.AssignExpr)
	if !ok {
		return "", false
	}
	member, ok := assign.Target.(*parser.MemberExpr)
	if !ok || member.Property != exportTargetProperty {
		return "", false
	}
	obj, ok := member.Object.(*parser.Ident)
	if !ok || obj.Name != exportTargetObject {
		return "", false
	}
	id, ok := assign.Value.(*parser.Ident)
	if !ok {
		return "", false
	}
	return id.Name, true
}
