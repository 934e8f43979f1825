package generator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/go-fast-eiod/ast"
)

// Generate prints node as JavaScript. Expressions are printed from their
// source text; statements are laid out one per line.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		if n != nil {
			for _, b := range n.Body {
				gen(s.wrap(b.Stmt))
				s.line()
			}
		}
	case ast.Statements:
		for i, st := range n {
			if i > 0 {
				s.lineAndPad()
			}
			gen(s.wrap(st.Stmt))
		}
	case *ast.Statement:
		if n != nil {
			gen(s.wrap(n.Stmt))
		}
	case *ast.Expression:
		if n != nil {
			s.write(n.Source)
		}
	case *ast.Identifier:
		if n != nil {
			s.write(n.Name)
		}
	case *ast.BadStatement:
		s.write("/* " + n.Kind + " */")
	case *ast.BlockStatement:
		gen(s.wrap(n.Block))
	case *ast.Block:
		if n != nil {
			genList(s, n.List)
		}
	case *ast.FunctionBody:
		if n != nil {
			genList(s, n.List)
		}
	case *ast.BreakStatement:
		s.write("break")
		genLabel(s, n.Label)
	case *ast.ContinueStatement:
		s.write("continue")
		genLabel(s, n.Label)
	case *ast.DebuggerStatement:
		s.write("debugger;")
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression))
		s.write(";")
	case *ast.IfStatement:
		s.write("if (")
		gen(s.wrap(n.Test))
		s.write(") ")
		gen(s.wrap(n.Consequent))
		if n.Alternate != nil {
			s.write(" else ")
			gen(s.wrap(n.Alternate))
		}
	case *ast.LabeledStatement:
		gen(s.wrap(n.Label))
		s.write(": ")
		gen(s.wrap(n.Body))
	case *ast.ReturnStatement:
		s.write("return")
		if n.Argument != nil {
			s.write(" ")
			gen(s.wrap(n.Argument))
		}
		s.write(";")
	case *ast.ThrowStatement:
		s.write("throw ")
		gen(s.wrap(n.Argument))
		s.write(";")
	case *ast.WhileStatement:
		s.write("while (")
		gen(s.wrap(n.Test))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.DoWhileStatement:
		s.write("do ")
		gen(s.wrap(n.Body))
		s.write(" while (")
		gen(s.wrap(n.Test))
		s.write(");")
	case *ast.WithStatement:
		s.write("with (")
		gen(s.wrap(n.Object))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.ForStatement:
		s.write("for (")
		gen(s.wrap(n.Init))
		s.write(";")
		if n.Test != nil {
			s.write(" ")
			gen(s.wrap(n.Test))
		}
		s.write(";")
		if n.Update != nil {
			s.write(" ")
			gen(s.wrap(n.Update))
		}
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.ForInStatement:
		s.write("for (")
		gen(s.wrap(n.Left))
		s.write(" in ")
		gen(s.wrap(n.Right))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.ForOfStatement:
		s.write("for ")
		if n.Await {
			s.write("await ")
		}
		s.write("(")
		gen(s.wrap(n.Left))
		s.write(" of ")
		gen(s.wrap(n.Right))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.SwitchStatement:
		genSwitchHead(s, n.Discriminant)
		s.indent++
		for _, c := range n.Cases {
			s.lineAndPad()
			gen(s.wrap(c))
		}
		s.indent--
		genSwitchTail(s, len(n.Cases) > 0)
	case *ast.SwitchStatementWithDefault:
		genSwitchHead(s, n.Discriminant)
		s.indent++
		for i := 0; i < n.ClauseCount(); i++ {
			s.lineAndPad()
			gen(s.wrap(n.ClauseAt(i)))
		}
		s.indent--
		genSwitchTail(s, true)
	case *ast.SwitchCase:
		s.write("case ")
		gen(s.wrap(n.Test))
		s.write(":")
		genClause(s, n.Consequent)
	case *ast.SwitchDefault:
		s.write("default:")
		genClause(s, n.Consequent)
	case *ast.TryCatchStatement:
		s.write("try ")
		gen(s.wrap(n.Body))
		gen(s.wrap(n.CatchClause))
	case *ast.TryFinallyStatement:
		s.write("try ")
		gen(s.wrap(n.Body))
		if n.CatchClause != nil {
			gen(s.wrap(n.CatchClause))
		}
		s.write(" finally ")
		gen(s.wrap(n.Finalizer))
	case *ast.CatchClause:
		if n != nil {
			s.write(" catch ")
			if n.Binding != nil {
				s.write("(")
				gen(s.wrap(n.Binding))
				s.write(") ")
			}
			gen(s.wrap(n.Body))
		}
	case *ast.VariableDeclarationStatement:
		s.write(n.Kind.String())
		s.write(" ")
		gen(s.wrap(n.Declarators))
		s.write(";")
	case *ast.FunctionDeclaration:
		if n.Async {
			s.write("async ")
		}
		s.write("function")
		if n.Generator {
			s.write("*")
		}
		s.write(" ")
		gen(s.wrap(n.Name))
		if n.Params != nil {
			gen(s.wrap(n.Params))
		} else {
			s.write("()")
		}
		s.write(" ")
		if n.Body != nil {
			gen(s.wrap(n.Body))
		} else {
			s.write("{}")
		}
	case *ast.ClassDeclaration:
		s.write("class ")
		gen(s.wrap(n.Name))
		if n.SuperClass != nil {
			s.write(" extends ")
			gen(s.wrap(n.SuperClass))
		}
		s.write(" ")
		if n.Body != nil {
			gen(s.wrap(n.Body))
		} else {
			s.write("{}")
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genList(s *state, list ast.Statements) {
	if len(list) == 0 {
		s.write("{}")
		return
	}
	s.write("{")

	s.indent++
	for _, st := range list {
		s.lineAndPad()
		gen(s.wrap(st.Stmt))
	}
	s.indent--

	s.lineAndPad()
	s.write("}")
}

func genLabel(s *state, label *ast.Identifier) {
	if label != nil {
		s.write(" ")
		gen(s.wrap(label))
	}
	s.write(";")
}

func genSwitchHead(s *state, discriminant *ast.Expression) {
	s.write("switch (")
	gen(s.wrap(discriminant))
	s.write(") {")
}

func genSwitchTail(s *state, clauses bool) {
	if clauses {
		s.lineAndPad()
	}
	s.write("}")
}

func genClause(s *state, consequent ast.Statements) {
	s.indent++
	for _, st := range consequent {
		s.lineAndPad()
		gen(s.wrap(st.Stmt))
	}
	s.indent--
}
