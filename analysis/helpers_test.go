package analysis_test

import (
	"github.com/t14raptor/go-fast-eiod/ast"
)

func list(ss ...ast.Stmt) ast.Statements {
	out := make(ast.Statements, len(ss))
	for i, s := range ss {
		out[i] = ast.Statement{Stmt: s}
	}
	return out
}

func st(s ast.Stmt) *ast.Statement {
	return &ast.Statement{Stmt: s}
}

func exprStmt(src string) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: &ast.Expression{Source: src}}
}

func empty() *ast.EmptyStatement       { return &ast.EmptyStatement{} }
func debugger() *ast.DebuggerStatement { return &ast.DebuggerStatement{} }
func ret() *ast.ReturnStatement        { return &ast.ReturnStatement{} }

func throw() *ast.ThrowStatement {
	return &ast.ThrowStatement{Argument: &ast.Expression{Source: "e"}}
}

func brk(label string) *ast.BreakStatement {
	if label == "" {
		return &ast.BreakStatement{}
	}
	return &ast.BreakStatement{Label: &ast.Identifier{Name: label}}
}

func cont(label string) *ast.ContinueStatement {
	if label == "" {
		return &ast.ContinueStatement{}
	}
	return &ast.ContinueStatement{Label: &ast.Identifier{Name: label}}
}

func varDecl() *ast.VariableDeclarationStatement {
	return &ast.VariableDeclarationStatement{Kind: ast.Let, Declarators: &ast.Expression{Source: "x = 1"}}
}

func fn(name string) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{
		Name:   &ast.Identifier{Name: name},
		Params: &ast.Expression{Source: "()"},
		Body:   &ast.FunctionBody{},
	}
}

func class(name string) *ast.ClassDeclaration {
	return &ast.ClassDeclaration{Name: &ast.Identifier{Name: name}}
}

func blk(ss ...ast.Stmt) *ast.BlockStatement {
	return &ast.BlockStatement{Block: &ast.Block{List: list(ss...)}}
}

func labeled(name string, body ast.Stmt) *ast.LabeledStatement {
	return &ast.LabeledStatement{Label: &ast.Identifier{Name: name}, Body: st(body)}
}

func while(body ast.Stmt) *ast.WhileStatement {
	return &ast.WhileStatement{Test: &ast.Expression{Source: "cond"}, Body: st(body)}
}

func doWhile(body ast.Stmt) *ast.DoWhileStatement {
	return &ast.DoWhileStatement{Body: st(body), Test: &ast.Expression{Source: "cond"}}
}

func forLoop(body ast.Stmt) *ast.ForStatement {
	return &ast.ForStatement{Body: st(body)}
}

func forIn(body ast.Stmt) *ast.ForInStatement {
	return &ast.ForInStatement{Left: &ast.Expression{Source: "k"}, Right: &ast.Expression{Source: "o"}, Body: st(body)}
}

func forOf(body ast.Stmt) *ast.ForOfStatement {
	return &ast.ForOfStatement{Left: &ast.Expression{Source: "v"}, Right: &ast.Expression{Source: "xs"}, Body: st(body)}
}

func ifStmt(cons ast.Stmt) *ast.IfStatement {
	return &ast.IfStatement{Test: &ast.Expression{Source: "c"}, Consequent: st(cons)}
}

func ifElse(cons, alt ast.Stmt) *ast.IfStatement {
	return &ast.IfStatement{Test: &ast.Expression{Source: "c"}, Consequent: st(cons), Alternate: st(alt)}
}

func with(body ast.Stmt) *ast.WithStatement {
	return &ast.WithStatement{Object: &ast.Expression{Source: "o"}, Body: st(body)}
}

func caseOf(ss ...ast.Stmt) *ast.SwitchCase {
	return &ast.SwitchCase{Test: &ast.Expression{Source: "1"}, Consequent: list(ss...)}
}

func defaultOf(ss ...ast.Stmt) *ast.SwitchDefault {
	return &ast.SwitchDefault{Consequent: list(ss...)}
}

func switchOf(cases ...*ast.SwitchCase) *ast.SwitchStatement {
	return &ast.SwitchStatement{Discriminant: &ast.Expression{Source: "x"}, Cases: cases}
}

func switchWithDefault(pre []*ast.SwitchCase, def *ast.SwitchDefault, post ...*ast.SwitchCase) *ast.SwitchStatementWithDefault {
	return &ast.SwitchStatementWithDefault{
		Discriminant:     &ast.Expression{Source: "x"},
		PreDefaultCases:  pre,
		DefaultCase:      def,
		PostDefaultCases: post,
	}
}

func catchOf(ss ...ast.Stmt) *ast.CatchClause {
	return &ast.CatchClause{Binding: &ast.Expression{Source: "e"}, Body: &ast.Block{List: list(ss...)}}
}

func tryCatch(body []ast.Stmt, handler *ast.CatchClause) *ast.TryCatchStatement {
	return &ast.TryCatchStatement{Body: &ast.Block{List: list(body...)}, CatchClause: handler}
}

func tryFinally(body []ast.Stmt, handler *ast.CatchClause, finalizer ...ast.Stmt) *ast.TryFinallyStatement {
	return &ast.TryFinallyStatement{
		Body:        &ast.Block{List: list(body...)},
		CatchClause: handler,
		Finalizer:   &ast.Block{List: list(finalizer...)},
	}
}
