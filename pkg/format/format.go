// Package format renders a parsed page tree back to source text.
package format

import (
	"github.com/docshift-labs/docshift/pkg/parser"
)

// Format renders the file. Parsed statements print canonically; raw
// statements are re-emitted verbatim.
func Format(file *parser.File) string {
	p := newPrinter()
	p.formatFile(file)
	return p.String()
}
