// Package migrate rewrites pages authored against the removed v1 component
// API into the modern theme API.
//
// The transform is purely syntactic: it binds legacy component-library
// loads to inert stubs, inserts the theme layout import, and wraps the
// legacy module.exports value in a default-exported layout component. It
// performs no I/O and holds no state between invocations.
package migrate

import (
	"github.com/docshift-labs/docshift/pkg/format"
	"github.com/docshift-labs/docshift/pkg/parser"
)

const (
	// themeLayoutPath is the import path of the modern layout component.
	themeLayoutPath = "@theme/Layout"

	// layoutName is the default binding the companion import introduces.
	layoutName = "Layout"
)

// Result describes one transformation run.
type Result struct {
	Output     string
	Candidates int // module-load bindings observed
	Rewrites   int // bindings replaced by stubs
	Exports    int // export assignments rewritten
}

// Changed reports whether the transform touched the tree at all. The
// companion import counts: it is inserted whenever any candidate was
// observed, even if every decision was a no-op.
func (r *Result) Changed() bool {
	return r.Candidates > 0 || r.Exports > 0
}

// Transform rewrites one page's source text and returns the result. The
// input is never modified. A parse failure is fatal for the document; there
// is no partial output.
func Transform(src string) (string, error) {
	res, err := Apply(src)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Apply runs the transform and reports what it did.
func Apply(src string) (*Result, error) {
	file, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	cands := collectCandidates(file)
	res.Candidates = len(cands)
	for _, c := range cands {
		if d := Classify(c); d != DecisionNone {
			rewriteCandidate(c, d)
			res.Rewrites++
		}
	}

	// The companion import follows the last candidate's statement whenever
	// any candidate was observed, even if every decision was a no-op.
	if len(cands) > 0 {
		last := cands[len(cands)-1]
		file.InsertAfter(last.StmtIndex, layoutImport())
	}

	res.Exports = rewriteExports(file)

	res.Output = format.Format(file)
	return res, nil
}

// layoutImport builds the fixed companion import:
// import Layout from "@theme/Layout";
func layoutImport() *parser.ImportStmt {
	return &parser.ImportStmt{
		Name: layoutName,
		Path: &parser.StringLit{Raw: `"` + themeLayoutPath + `"`, Value: themeLayoutPath},
	}
}
