package migrate

import (
	"github.com/docshift-labs/docshift/pkg/parser"
)

// stubParam is the parameter name every stub function takes and spreads
// onto its passthrough element.
const stubParam = "props"

// stubObjectKeys are the component names the legacy library exposed.
var stubObjectKeys = []string{"Container", "GridBlock", "MarkdownBlock"}

// newStubFunction builds (props) => <div {...props} />. Every call returns
// a distinct node; stubs are never shared between parent slots.
func newStubFunction() *parser.ArrowFn {
	return &parser.ArrowFn{
		Param: stubParam,
		Body:  &parser.JSXElement{Tag: "div", Spread: stubParam},
	}
}

// newStubObject builds a fresh object literal with one independently
// constructed stub function per legacy component name.
func newStubObject() *parser.ObjectLit {
	obj := &parser.ObjectLit{}
	for _, key := range stubObjectKeys {
		obj.Props = append(obj.Props, &parser.Property{Key: key, Value: newStubFunction()})
	}
	return obj
}

// rewriteCandidate executes a decision: a fresh declarator binding the same
// identifier to a newly built stub replaces the old declarator in its
// statement. DecisionNone leaves the tree untouched.
func rewriteCandidate(c *Candidate, d Decision) {
	var init parser.Expr
	switch d {
	case DecisionStubObject:
		init = newStubObject()
	case DecisionStubFunction:
		init = newStubFunction()
	default:
		return
	}
	c.Stmt.Decls[c.DeclIndex] = &parser.Declarator{Name: c.Decl.Name, Init: init}
}
