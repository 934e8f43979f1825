package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-fast-eiod/ast"
	"github.com/t14raptor/go-fast-eiod/parser"
)

func generateNoIndent(node ast.Node) string {
	output := Generate(node)
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", ""))
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", ";", ";"},
		{"debugger", "debugger;", "debugger;"},
		{"block", "{ a; b; }", "{a;b;}"},
		{"empty block", "{}", "{}"},
		{"labeled break", "foo: { break foo; }", "foo: {break foo;}"},
		{"continue", "while (a) continue;", "while (a) continue;"},
		{"if else", "if (a) b; else { c; }", "if (a) b; else {c;}"},
		{"do while", "do { a; } while (b)", "do {a;} while (b);"},
		{"for", "for (var i = 0; i < n; i++) ;", "for (var i = 0; i < n; i++) ;"},
		{"empty for", "for (;;) {}", "for (;;) {}"},
		{"for in", "for (k in o) a;", "for (k in o) a;"},
		{"with", "with (o) a;", "with (o) a;"},
		{"return", "function f() { return; }", "function f() {return;}"},
		{"throw", "throw new Error('x');", "throw new Error('x');"},
		{"switch", "switch (x) { case 1: a; break; default: }", "switch (x) {case 1:a;break;default:}"},
		{"try catch", "try { a; } catch (e) { b; }", "try {a;} catch (e) {b;}"},
		{"try finally", "try { a; } catch { b; } finally { c; }", "try {a;} catch {b;} finally {c;}"},
		{"let", "let a = 1, b = 2;", "let a = 1, b = 2;"},
		{"async generator", "async function* g(x) { yield x; }", "async function* g(x) {yield x;}"},
		{"class", "class A extends B {}", "class A extends B {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parser.ParseFile(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, generateNoIndent(p))
		})
	}
}

func TestGenerateIndents(t *testing.T) {
	p, err := parser.ParseFile("switch (x) { case 1: if (a) { b; } }")
	require.NoError(t, err)

	want := "switch (x) {\n    case 1:\n        if (a) {\n            b;\n        }\n}\n"
	assert.Equal(t, want, Generate(p))
}

func TestGenerateNodes(t *testing.T) {
	list := ast.Statements{
		{Stmt: &ast.ExpressionStatement{Expression: &ast.Expression{Source: "a"}}},
		{Stmt: &ast.BadStatement{Kind: "ImportDeclaration"}},
	}
	assert.Equal(t, "a;\n/* ImportDeclaration */", Generate(list))

	sw := &ast.SwitchStatementWithDefault{
		Discriminant:     &ast.Expression{Source: "x"},
		PreDefaultCases:  []*ast.SwitchCase{{Test: &ast.Expression{Source: "1"}}},
		DefaultCase:      &ast.SwitchDefault{},
		PostDefaultCases: []*ast.SwitchCase{{Test: &ast.Expression{Source: "2"}}},
	}
	assert.Equal(t, "switch (x) {case 1:default:case 2:}", generateNoIndent(sw))

	assert.Equal(t, "", Generate(nil))
	assert.Equal(t, "{}", Generate(&ast.FunctionBody{}))
	assert.Equal(t, "\n", Generate(&ast.Program{Body: ast.Statements{{Stmt: nil}}}))
}
