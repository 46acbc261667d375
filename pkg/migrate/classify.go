package migrate

import (
	"regexp"
	"strings"

	"github.com/docshift-labs/docshift/pkg/parser"
)

// Decision selects which rewrite applies to a binding candidate.
type Decision int

// Decisions, derived purely from a candidate's own initializer.
const (
	DecisionNone         Decision = iota // leave the declarator untouched
	DecisionStubObject                   // bind to the three-property stub object
	DecisionStubFunction                 // bind to a single stub function
)

const (
	// legacyLibPath is the substring denoting the legacy shared component
	// library in a direct load argument.
	legacyLibPath = "core/CompLibrary"

	// legacyLibPathExact is the extension-qualified form matched when the
	// load result is taken through a member access.
	legacyLibPathExact = "../../core/CompLibrary.js"
)

var (
	corePathPattern = regexp.MustCompile(`/core/`)
	serverPattern   = regexp.MustCompile(`server`)
)

// Candidate is a located declarator whose initializer loads a module:
// either require(...) directly, or a member access over such a call.
type Candidate struct {
	Decl      *parser.Declarator
	Stmt      *parser.VarStmt
	StmtIndex int // position of Stmt in the file
	DeclIndex int // position of Decl in Stmt
	Call      *parser.CallExpr
	ViaMember bool // initializer is require(...).<property>
}

// collectCandidates gathers binding candidates in document order.
func collectCandidates(file *parser.File) []*Candidate {
	var cands []*Candidate
	for si, stmt := range file.Stmts {
		vs, ok := stmt.(*parser.VarStmt)
		if !ok {
			continue
		}
		for di, decl := range vs.Decls {
			call, viaMember := moduleLoadCall(decl.Init)
			if call == nil {
				continue
			}
			cands = append(cands, &Candidate{
				Decl:      decl,
				Stmt:      vs,
				StmtIndex: si,
				DeclIndex: di,
				Call:      call,
				ViaMember: viaMember,
			})
		}
	}
	return cands
}

// moduleLoadCall returns the require call behind an initializer, and whether
// it is reached through a member access. Returns nil for any other shape.
func moduleLoadCall(init parser.Expr) (*parser.CallExpr, bool) {
	switch e := init.(type) {
	case *parser.CallExpr:
		if isModuleLoad(e.Callee) {
			return e, false
		}
	case *parser.MemberExpr:
		if call, ok := e.Object.(*parser.CallExpr); ok && isModuleLoad(call.Callee) {
			return call, true
		}
	}
	return nil, false
}

func isModuleLoad(callee parser.Expr) bool {
	id, ok := callee.(*parser.Ident)
	return ok && id.Name == "require"
}

// Classify decides which rewrite applies to a candidate. The decision
// depends only on the candidate's own load argument; unknown argument
// shapes are no-ops, never errors. The shared-library check runs before the
// generic server/core checks, so an argument satisfying both classifies by
// the first rule.
func Classify(c *Candidate) Decision {
	var arg parser.Expr
	if len(c.Call.Args) > 0 {
		arg = c.Call.Args[0]
	}

	if !c.ViaMember {
		switch a := arg.(type) {
		case *parser.StringLit:
			if strings.Contains(a.Value, legacyLibPath) {
				return DecisionStubObject
			}
		case *parser.TemplateLit:
			if corePathPattern.MatchString(a.Cooked) {
				return DecisionStubFunction
			}
		}
		return DecisionNone
	}

	switch a := arg.(type) {
	case *parser.StringLit:
		if a.Value == legacyLibPathExact {
			return DecisionStubObject
		}
		if serverPattern.MatchString(a.Value) {
			return DecisionStubFunction
		}
	case *parser.TemplateLit:
		if corePathPattern.MatchString(a.Cooked) {
			return DecisionStubFunction
		}
	}
	return DecisionNone
}
