package analysis_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/t14raptor/go-fast-eiod/analysis"
	"github.com/t14raptor/go-fast-eiod/ast"
	"github.com/t14raptor/go-fast-eiod/ast/ext"
	"github.com/t14raptor/go-fast-eiod/labels"
)

func TestEmptyStatementList(t *testing.T) {
	a := analysis.New()

	_, err := a.EndsInIterationOrDeclaration(ast.Statements{}, noLabels, true)
	assert.ErrorIs(t, err, analysis.ErrEmptyStatementList)
	_, err = a.IsEmpty(ast.Statements{}, noLabels)
	assert.ErrorIs(t, err, analysis.ErrEmptyStatementList)
	_, err = a.IsBreak(ast.Statements(nil), noLabels)
	assert.ErrorIs(t, err, analysis.ErrEmptyStatementList)

	_, err = a.Analyze(nil)
	assert.ErrorIs(t, err, analysis.ErrEmptyStatementList)
}

func TestUnhandledNode(t *testing.T) {
	nodes := map[string]ast.Node{
		"nil":               nil,
		"expression":        &ast.Expression{Source: "x"},
		"program":           &ast.Program{Body: list(exprStmt("x"))},
		"function body":     &ast.FunctionBody{},
		"unsupported":       &ast.BadStatement{Kind: "ImportDeclaration"},
		"missing statement": list(exprStmt("x"), nil),
	}
	for name, n := range nodes {
		t.Run(name, func(t *testing.T) {
			_, err := analysis.EndsInIterationOrDeclaration(n, noLabels, true)
			assert.ErrorIs(t, err, analysis.ErrUnhandledNode)
		})
	}

	_, err := analysis.IsEmpty(catchOf(), noLabels)
	assert.ErrorIs(t, err, analysis.ErrUnhandledNode)
	_, err = analysis.IsBreak(catchOf(), noLabels)
	assert.ErrorIs(t, err, analysis.ErrUnhandledNode)

	_, err = analysis.EndsInIterationOrDeclaration(&ast.BadStatement{Kind: "ImportDeclaration"}, noLabels, true)
	assert.ErrorContains(t, err, "ImportDeclaration")
}

func TestUnhandledNodeDeepInside(t *testing.T) {
	bad := &ast.BadStatement{Kind: "ExportDeclaration"}
	n := labeled("foo", blk(exprStmt("x"), while(blk(bad))))
	got, err := analysis.EndsInIterationOrDeclaration(n, noLabels, false)
	assert.ErrorIs(t, err, analysis.ErrUnhandledNode)
	assert.False(t, got)
}

func nestedBlocks(depth int, inner ast.Stmt) ast.Stmt {
	n := inner
	for i := 0; i < depth; i++ {
		n = blk(n)
	}
	return n
}

func TestDepthLimit(t *testing.T) {
	deep := list(nestedBlocks(100, varDecl()))

	_, err := analysis.New(analysis.WithMaxDepth(10)).Analyze(deep)
	assert.ErrorIs(t, err, analysis.ErrTooComplex)

	got, err := analysis.New(analysis.WithMaxDepth(0)).Analyze(deep)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = analysis.New().Analyze(list(nestedBlocks(500, varDecl())))
	require.NoError(t, err)
	assert.True(t, got)

	_, err = analysis.New().Analyze(list(nestedBlocks(10000, varDecl())))
	assert.ErrorIs(t, err, analysis.ErrTooComplex)
}

func TestStepLimit(t *testing.T) {
	var ss []ast.Stmt
	for i := 0; i < 10; i++ {
		ss = append(ss, exprStmt("x"))
	}
	_, err := analysis.New(analysis.WithMaxSteps(3)).Analyze(list(ss...))
	assert.ErrorIs(t, err, analysis.ErrTooComplex)

	got, err := analysis.New(analysis.WithMaxSteps(1000)).Analyze(list(ss...))
	require.NoError(t, err)
	assert.False(t, got)
}

// vacuousNesting wraps x; ; in depth blocks, each followed by an empty statement.
func vacuousNesting(depth int) ast.Stmt {
	n := ast.Stmt(blk(exprStmt("x"), empty()))
	for i := 0; i < depth; i++ {
		n = blk(n, empty())
	}
	return n
}

func TestNestedVacuousBlocksStayLinear(t *testing.T) {
	program := list(exprStmt("y"), vacuousNesting(64))

	got, err := analysis.New(analysis.WithMaxSteps(10000)).Analyze(program)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = analysis.Analyze(list(exprStmt("y"), vacuousNesting(200)))
	require.NoError(t, err)
	assert.False(t, got)

	vacuous, err := analysis.IsEmpty(blk(vacuousNesting(64), brk("")), labels.Empty.With(labels.Unlabeled))
	require.NoError(t, err)
	assert.False(t, vacuous)

	breaks, err := analysis.IsBreak(blk(blk(blk(brk("out")), empty()), empty()), labels.Empty.With(labels.Named("out")))
	require.NoError(t, err)
	assert.True(t, breaks)
}

func TestMissingSwitchClause(t *testing.T) {
	tests := map[string]ast.Stmt{
		"nil case": switchOf(nil),
		"nil default": &ast.SwitchStatementWithDefault{
			Discriminant: &ast.Expression{Source: "x"},
		},
	}
	for name, n := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := analysis.Analyze(list(n))
			assert.ErrorIs(t, err, analysis.ErrUnhandledNode)

			_, err = analysis.IsEmpty(n.(ext.Switch).ClauseAt(0), noLabels)
			assert.ErrorIs(t, err, analysis.ErrUnhandledNode)
		})
	}
}

func TestLongListsDoNotDeepenTheWalk(t *testing.T) {
	var ss []ast.Stmt
	for i := 0; i < 20000; i++ {
		ss = append(ss, exprStmt("x"), empty())
	}
	ss = append(ss, varDecl())

	got, err := analysis.New(analysis.WithMaxDepth(16)).Analyze(list(ss...))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestAnalysisDoesNotMutateTree(t *testing.T) {
	c0 := caseOf(varDecl())
	c1 := caseOf(brk(""))
	c2 := caseOf(exprStmt("x"))
	program := list(
		labeled("outer", switchWithDefault([]*ast.SwitchCase{c0, c1}, defaultOf(brk("outer")), c2)),
		switchOf(caseOf(varDecl()), caseOf(), caseOf(brk(""))),
	)
	before := program.Clone()

	a := analysis.New()
	first, err := a.Analyze(program)
	require.NoError(t, err)
	second, err := a.Analyze(program)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, cmp.Diff(before, program))

	sw := program[0].Stmt.(*ast.LabeledStatement).Body.Stmt.(*ast.SwitchStatementWithDefault)
	assert.Same(t, c0, sw.PreDefaultCases[0])
	assert.Same(t, c1, sw.PreDefaultCases[1])
	assert.Same(t, c2, sw.PostDefaultCases[0])
}

func TestCallerLabelSetIsUntouched(t *testing.T) {
	set := labels.Of(labels.Unlabeled)
	n := labeled("foo", switchOf(caseOf(varDecl()), caseOf(brk(""))))

	_, err := analysis.EndsInIterationOrDeclaration(n, set, true)
	require.NoError(t, err)
	_, err = analysis.EndsInIterationOrDeclaration(n, set, false)
	require.NoError(t, err)

	assert.Equal(t, []labels.Target{labels.Unlabeled}, set.Targets())
}

func TestLoggerTracesPredicates(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := analysis.New(analysis.WithLogger(zap.New(core)))

	got, err := a.Analyze(list(while(blk(brk(""))), exprStmt("x")))
	require.NoError(t, err)
	assert.False(t, got)

	assert.NotZero(t, logs.FilterMessage("EndsInIterationOrDeclaration").Len())
	assert.NotZero(t, logs.FilterMessage("IsEmpty").Len())
	assert.NotZero(t, logs.FilterMessage("IsBreak").Len())

	quiet, quietLogs := observer.New(zapcore.InfoLevel)
	_, err = analysis.New(analysis.WithLogger(zap.New(quiet))).Analyze(list(varDecl()))
	require.NoError(t, err)
	assert.Zero(t, quietLogs.Len())
}

func TestAnalyzerIsSafeForConcurrentUse(t *testing.T) {
	a := analysis.New()
	program := list(labeled("foo", blk(forLoop(blk(brk("foo"))), exprStmt("42"))))

	var wg conc.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		i := i
		wg.Go(func() {
			got, err := a.Analyze(program)
			if err == nil {
				results[i] = got
			}
		})
	}
	wg.Wait()

	for _, got := range results {
		assert.True(t, got)
	}
}
