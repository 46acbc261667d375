package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshift-labs/docshift/pkg/parser"
)

// ---------- Variable Statements ----------

func TestParseVarStmt(t *testing.T) {
	file, err := parser.Parse(`const CompLibrary = require("../../core/CompLibrary.js");`)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	vs, ok := file.Stmts[0].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "const", vs.Kind)
	require.Len(t, vs.Decls, 1)
	assert.Equal(t, "CompLibrary", vs.Decls[0].Name)

	call, ok := vs.Decls[0].Init.(*parser.CallExpr)
	require.True(t, ok)
	callee, ok := call.Callee.(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "require", callee.Name)
	require.Len(t, call.Args, 1)

	arg, ok := call.Args[0].(*parser.StringLit)
	require.True(t, ok)
	assert.Equal(t, `"../../core/CompLibrary.js"`, arg.Raw)
	assert.Equal(t, "../../core/CompLibrary.js", arg.Value)
}

func TestParseVarStmtMultipleDeclarators(t *testing.T) {
	file, err := parser.Parse(`let a = 1, b = require("x"), c;`)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	vs, ok := file.Stmts[0].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "let", vs.Kind)
	require.Len(t, vs.Decls, 3)
	assert.Equal(t, "a", vs.Decls[0].Name)
	assert.IsType(t, &parser.NumberLit{}, vs.Decls[0].Init)
	assert.Equal(t, "b", vs.Decls[1].Name)
	assert.IsType(t, &parser.CallExpr{}, vs.Decls[1].Init)
	assert.Equal(t, "c", vs.Decls[2].Name)
	assert.Nil(t, vs.Decls[2].Init)
}

func TestParseVarStmtMemberInit(t *testing.T) {
	file, err := parser.Parse(`const translate = require("../../server/translate.js").translate;`)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	vs := file.Stmts[0].(*parser.VarStmt)
	member, ok := vs.Decls[0].Init.(*parser.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "translate", member.Property)
	assert.IsType(t, &parser.CallExpr{}, member.Object)
}

func TestParseVarStmtRawInitializer(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		rawText string
	}{
		{
			name:    "binary expression",
			src:     `const n = a + b;`,
			rawText: "a + b",
		},
		{
			name:    "arrow function",
			src:     `const f = (props) => <div {...props} />;`,
			rawText: "(props) => <div {...props} />",
		},
		{
			name:    "object literal",
			src:     "const o = {\n  a: 1,\n  b: 2,\n};",
			rawText: "{\n  a: 1,\n  b: 2,\n}",
		},
		{
			name:    "ternary",
			src:     `const t = cond ? "a" : "b";`,
			rawText: `cond ? "a" : "b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, file.Stmts, 1)

			vs, ok := file.Stmts[0].(*parser.VarStmt)
			require.True(t, ok)
			require.Len(t, vs.Decls, 1)

			raw, ok := vs.Decls[0].Init.(*parser.RawExpr)
			require.True(t, ok)
			assert.Equal(t, tt.rawText, raw.Text)
		})
	}
}

func TestParseVarStmtDestructuringFallsBack(t *testing.T) {
	src := `const {siteConfig} = require("../../config.js");`
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	raw, ok := file.Stmts[0].(*parser.RawStmt)
	require.True(t, ok)
	assert.Equal(t, src, raw.Text)
}

// ---------- Import Statements ----------

func TestParseImportStmt(t *testing.T) {
	file, err := parser.Parse(`import Layout from "@theme/Layout";`)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	imp, ok := file.Stmts[0].(*parser.ImportStmt)
	require.True(t, ok)
	assert.Equal(t, "Layout", imp.Name)
	assert.Equal(t, "@theme/Layout", imp.Path.Value)
}

func TestParseImportStmtOtherFormsFallBack(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "named", src: `import {useState} from "react";`},
		{name: "namespace", src: `import * as React from "react";`},
		{name: "bare", src: `import "./styles.css";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, file.Stmts, 1)

			raw, ok := file.Stmts[0].(*parser.RawStmt)
			require.True(t, ok)
			assert.Equal(t, tt.src, raw.Text)
		})
	}
}

// ---------- Expression Statements ----------

func TestParseExportAssignment(t *testing.T) {
	file, err := parser.Parse(`module.exports = Index;`)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	es, ok := file.Stmts[0].(*parser.ExprStmt)
	require.True(t, ok)

	assign, ok := es.X.(*parser.AssignExpr)
	require.True(t, ok)

	member, ok := assign.Target.(*parser.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "exports", member.Property)
	obj, ok := member.Object.(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "module", obj.Name)

	val, ok := assign.Value.(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "Index", val.Name)
}

func TestParseAssignmentRawValue(t *testing.T) {
	file, err := parser.Parse(`module.exports = { Index };`)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	es := file.Stmts[0].(*parser.ExprStmt)
	assign := es.X.(*parser.AssignExpr)
	raw, ok := assign.Value.(*parser.RawExpr)
	require.True(t, ok)
	assert.Equal(t, "{ Index }", raw.Text)
}

// ---------- Raw Statement Fallback ----------

func TestParseRawStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "function declaration",
			src:  "function Index(props) {\n  return <div>Hello</div>;\n}",
		},
		{
			name: "class declaration",
			src:  "class Index extends React.Component {\n  render() {\n    return null;\n  }\n}",
		},
		{
			name: "if else chain",
			src:  "if (a) {\n  f();\n} else if (b) {\n  g();\n} else {\n  h();\n}",
		},
		{
			name: "try catch finally",
			src:  "try {\n  f();\n} catch (e) {\n  g(e);\n} finally {\n  h();\n}",
		},
		{
			name: "do while",
			src:  "do {\n  f();\n} while (cond);",
		},
		{
			name: "export default declaration",
			src:  "export default (props) => <Layout><Index {...props} /></Layout>;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, file.Stmts, 1)

			raw, ok := file.Stmts[0].(*parser.RawStmt)
			require.True(t, ok)
			assert.Equal(t, tt.src, raw.Text)
		})
	}
}

func TestParseRawStatementFollowedByDeclaration(t *testing.T) {
	src := "function f() {\n  return 1;\n}\nconst a = f();"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)

	raw, ok := file.Stmts[0].(*parser.RawStmt)
	require.True(t, ok)
	assert.Equal(t, "function f() {\n  return 1;\n}", raw.Text)

	vs, ok := file.Stmts[1].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", vs.Decls[0].Name)
}

func TestParseRawStatementWithTrickyLiterals(t *testing.T) {
	// Apostrophes in JSX text and semicolons inside strings must not end
	// the raw scan early.
	src := "function Note() {\n  return <p>don't stop; keep going</p>;\n}"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	raw, ok := file.Stmts[0].(*parser.RawStmt)
	require.True(t, ok)
	assert.Equal(t, src, raw.Text)
}

// ---------- Semicolon Elision ----------

func TestParseWithoutSemicolons(t *testing.T) {
	src := "const a = require(\"react\")\nconst b = 2\n"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)

	first, ok := file.Stmts[0].(*parser.VarStmt)
	require.True(t, ok)
	assert.IsType(t, &parser.CallExpr{}, first.Decls[0].Init)

	second, ok := file.Stmts[1].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "b", second.Decls[0].Name)
}

func TestParseWithoutSemicolonsRawInitializer(t *testing.T) {
	// A raw-captured initializer ends at the line break when the next line
	// opens a new statement, matching the token-level elision rule.
	src := "const styles = { color: \"red\" }\nconst CompLibrary = require(\"../../core/CompLibrary.js\");\n"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)

	first, ok := file.Stmts[0].(*parser.VarStmt)
	require.True(t, ok)
	raw, ok := first.Decls[0].Init.(*parser.RawExpr)
	require.True(t, ok)
	assert.Equal(t, `{ color: "red" }`, raw.Text)

	second, ok := file.Stmts[1].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "CompLibrary", second.Decls[0].Name)
	assert.IsType(t, &parser.CallExpr{}, second.Decls[0].Init)
}

func TestParseWithoutSemicolonsRawAssignmentValue(t *testing.T) {
	src := "module.exports = { Index }\nconst a = 1;\n"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)

	es, ok := file.Stmts[0].(*parser.ExprStmt)
	require.True(t, ok)
	assign, ok := es.X.(*parser.AssignExpr)
	require.True(t, ok)
	raw, ok := assign.Value.(*parser.RawExpr)
	require.True(t, ok)
	assert.Equal(t, "{ Index }", raw.Text)

	second, ok := file.Stmts[1].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", second.Decls[0].Name)
}

func TestParseWithoutSemicolonsRawStatement(t *testing.T) {
	src := "throw new Error(\"boom\")\nconst a = require(\"react\");\n"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)

	raw, ok := file.Stmts[0].(*parser.RawStmt)
	require.True(t, ok)
	assert.Equal(t, `throw new Error("boom")`, raw.Text)

	second, ok := file.Stmts[1].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", second.Decls[0].Name)
}

func TestParseMultiLineInitializerNotSplit(t *testing.T) {
	// A line that continues the expression (operator, call chain, dynamic
	// import) never ends the raw capture.
	tests := []struct {
		name    string
		src     string
		rawText string
	}{
		{
			name:    "binary continuation",
			src:     "const n = a +\n  b;",
			rawText: "a +\n  b",
		},
		{
			name:    "arrow body dynamic import",
			src:     "const load = () =>\n  import(\"./page\");",
			rawText: "() =>\n  import(\"./page\")",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, file.Stmts, 1)

			vs, ok := file.Stmts[0].(*parser.VarStmt)
			require.True(t, ok)
			raw, ok := vs.Decls[0].Init.(*parser.RawExpr)
			require.True(t, ok)
			assert.Equal(t, tt.rawText, raw.Text)
		})
	}
}

// ---------- Comments ----------

func TestParseAttachesLeadingComments(t *testing.T) {
	src := "// load shared library\nconst CompLibrary = require(\"../../core/CompLibrary.js\");"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	vs := file.Stmts[0].(*parser.VarStmt)
	require.Len(t, vs.LeadingComments, 1)
	assert.Equal(t, "// load shared library", vs.LeadingComments[0].Text)
}

func TestParseTrailingFileComments(t *testing.T) {
	src := "const a = 1;\n// the end"
	file, err := parser.Parse(src)
	require.NoError(t, err)

	require.Len(t, file.TrailingComments, 1)
	assert.Equal(t, "// the end", file.TrailingComments[0].Text)
}

func TestParseCommentInsideRawStatementNotDuplicated(t *testing.T) {
	src := "function f() {\n  // inner note\n  return 1;\n}"
	file, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)

	raw := file.Stmts[0].(*parser.RawStmt)
	assert.Equal(t, src, raw.Text)
	assert.Empty(t, raw.LeadingComments)
	assert.Empty(t, file.TrailingComments)
}

// ---------- Errors ----------

func TestParseUnterminatedConstructs(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "string", src: "const s = \"open\n"},
		{name: "template", src: "const s = `open"},
		{name: "block comment", src: "const s = 1; /* open"},
		{name: "brace", src: "function f() {\n  return 1;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			require.Error(t, err)
		})
	}
}
