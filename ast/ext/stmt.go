package ext

import (
	"github.com/t14raptor/go-fast-eiod/ast"
)

// IsFunctionDeclaration returns true if the statement declares a function.
func IsFunctionDeclaration(stmt *ast.Statement) bool {
	if stmt == nil {
		return false
	}
	_, ok := stmt.Stmt.(*ast.FunctionDeclaration)
	return ok
}

// LoopBody returns the body of an iteration statement.
func LoopBody(stmt ast.Node) (*ast.Statement, bool) {
	switch s := stmt.(type) {
	case *ast.WhileStatement:
		return s.Body, true
	case *ast.DoWhileStatement:
		return s.Body, true
	case *ast.ForStatement:
		return s.Body, true
	case *ast.ForInStatement:
		return s.Body, true
	case *ast.ForOfStatement:
		return s.Body, true
	}
	return nil, false
}

// Switch is implemented by both switch statement shapes.
type Switch interface {
	ast.Stmt
	ClauseCount() int
	ClauseAt(i int) ast.Node
}

var (
	_ Switch = (*ast.SwitchStatement)(nil)
	_ Switch = (*ast.SwitchStatementWithDefault)(nil)
)
