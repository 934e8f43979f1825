package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-fast-eiod/analysis"
	"github.com/t14raptor/go-fast-eiod/ast"
)

func TestFunctionBodies(t *testing.T) {
	inner := fn("inner")
	inner.Body.List = list(while(exprStmt("x")))

	outer := fn("outer")
	outer.Function = 10
	outer.Body.List = list(exprStmt("a"), ifStmt(blk(inner)))

	program := &ast.Program{Body: list(
		outer,
		labeled("l", fn("labeled")),
		exprStmt("(function () { var ignored })()"),
	)}

	bodies := analysis.FunctionBodies(program)
	require.Len(t, bodies, 3)
	assert.Equal(t, "outer", bodies[0].Name)
	assert.Equal(t, ast.Idx(10), bodies[0].Idx)
	assert.Equal(t, "inner", bodies[1].Name)
	assert.Equal(t, "labeled", bodies[2].Name)

	got, err := analysis.New().Analyze(bodies[1].List)
	require.NoError(t, err)
	assert.True(t, got)

	assert.Nil(t, analysis.FunctionBodies(nil))
	assert.Empty(t, analysis.FunctionBodies(&ast.Program{Body: list(exprStmt("x"))}))
}
