package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-fast-eiod/analysis"
	"github.com/t14raptor/go-fast-eiod/parser"
)

func analyzeSource(t *testing.T, src string) bool {
	t.Helper()
	p, err := parser.ParseFile(src)
	require.NoError(t, err)
	got, err := analysis.New().Analyze(p.Body)
	require.NoError(t, err)
	return got
}

func TestSourcePrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		// The loop body breaks out of foo, so control never reaches 42.
		{"labeled block with breaking loop", "foo: { for (let i = 0; i < 2; ++i) { break foo; } 42; }", true},
		{"function declaration", "function f() {}", true},
		{"loop with break", "while (true) { break; }", true},
		{"switch with default", "switch (x) { case 1: break; default: 42; }", false},
		{"trailing expression", "while (a) { b(); } 42;", false},
		{"empty loop body counts as a break", "while (a) {} 42;", true},
		{"trailing vacuous statements", "let x = 1; ; debugger;", true},
		{"loop followed by break", "outer: { do {} while (a); break outer; }", true},
		{"try catch", "try { a(); } catch (e) { for (;;) ; }", true},
		{"try finally", "try { class C {} } finally { a(); }", true},
		{"if without else", "if (a) { b(); }", false},
		{"if else", "if (a) b(); else var c;", true},
		{"with", "with (o) { const k = 1; }", true},
		{"comment only block", "{ /* nothing */ }", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzeSource(t, tt.src))
		})
	}
}

func TestSourceFunctionBodies(t *testing.T) {
	p, err := parser.ParseFile(`
function a() { for (const x of xs) { g(x); } }
function b() { return 1; }
function c() {}
`)
	require.NoError(t, err)

	bodies := analysis.FunctionBodies(p)
	require.Len(t, bodies, 3)

	got, err := analysis.Analyze(bodies[0].List)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = analysis.Analyze(bodies[1].List)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = analysis.Analyze(bodies[2].List)
	assert.ErrorIs(t, err, analysis.ErrEmptyStatementList)
}

func TestSourceNestedVacuousBlocks(t *testing.T) {
	const depth = 64
	src := "y; " + strings.Repeat("{ ", depth) + "x; ;" + strings.Repeat(" ; }", depth)
	assert.False(t, analyzeSource(t, src))
}
