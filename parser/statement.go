package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/t14raptor/go-fast-eiod/ast"
)

func (p *parser) parseStatementList(n *sitter.Node) (list ast.Statements) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c == nil || skip(c) {
			continue
		}
		list = append(list, ast.Statement{Stmt: p.parseStatement(c)})
	}
	return list
}

// parseClauseBody lowers the consequent of a switch clause: every named
// child except the case test.
func (p *parser) parseClauseBody(n *sitter.Node) (list ast.Statements) {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil || !c.IsNamed() || skip(c) || n.FieldNameForChild(i) == "value" {
			continue
		}
		list = append(list, ast.Statement{Stmt: p.parseStatement(c)})
	}
	return list
}

func (p *parser) parseStatement(n *sitter.Node) ast.Stmt {
	switch n.Type() {
	case "empty_statement":
		return &ast.EmptyStatement{Semicolon: p.idx(n)}
	case "debugger_statement":
		return &ast.DebuggerStatement{Debugger: p.idx(n)}
	case "expression_statement":
		return &ast.ExpressionStatement{Expression: p.parseExpression(p.firstNamed(n))}
	case "statement_block":
		return &ast.BlockStatement{Block: p.parseBlock(n)}
	case "if_statement":
		return p.parseIfStatement(n)
	case "while_statement":
		return &ast.WhileStatement{
			While: p.idx(n),
			Test:  p.parseCondition(n.ChildByFieldName("condition")),
			Body:  p.parseBody(n),
		}
	case "do_statement":
		return &ast.DoWhileStatement{
			Do:   p.idx(n),
			Body: p.parseBody(n),
			Test: p.parseCondition(n.ChildByFieldName("condition")),
		}
	case "for_statement":
		return p.parseForStatement(n)
	case "for_in_statement":
		return p.parseForInOrOfStatement(n)
	case "break_statement":
		return &ast.BreakStatement{Idx: p.idx(n), Label: p.parseLabel(n)}
	case "continue_statement":
		return &ast.ContinueStatement{Idx: p.idx(n), Label: p.parseLabel(n)}
	case "return_statement":
		return &ast.ReturnStatement{Return: p.idx(n), Argument: p.parseExpression(p.firstNamed(n))}
	case "throw_statement":
		return &ast.ThrowStatement{Throw: p.idx(n), Argument: p.parseExpression(p.firstNamed(n))}
	case "with_statement":
		return &ast.WithStatement{
			With:   p.idx(n),
			Object: p.parseCondition(n.ChildByFieldName("object")),
			Body:   p.parseBody(n),
		}
	case "labeled_statement":
		label := n.ChildByFieldName("label")
		return &ast.LabeledStatement{
			Label: p.parseIdentifier(label),
			Colon: p.end(label),
			Body:  p.parseBody(n),
		}
	case "switch_statement":
		return p.parseSwitchStatement(n)
	case "try_statement":
		return p.parseTryStatement(n)
	case "variable_declaration":
		return p.parseVariableDeclaration(n, ast.Var)
	case "lexical_declaration":
		kind := ast.Let
		if k := n.Child(0); k != nil && k.Type() == "const" {
			kind = ast.Const
		}
		return p.parseVariableDeclaration(n, kind)
	case "function_declaration", "generator_function_declaration":
		return p.parseFunctionDeclaration(n)
	case "class_declaration":
		return p.parseClassDeclaration(n)
	case "import_statement", "export_statement":
		p.errorf(n, errModuleSyntax, strings.TrimSuffix(n.Type(), "_statement"))
	default:
		p.errorf(n, errUnsupported, n.Type())
	}
	return &ast.BadStatement{From: p.idx(n), To: p.end(n), Kind: n.Type()}
}

func (p *parser) parseBlock(n *sitter.Node) *ast.Block {
	if n == nil {
		return &ast.Block{}
	}
	return &ast.Block{
		LeftBrace:  p.idx(n),
		List:       p.parseStatementList(n),
		RightBrace: p.end(n) - 1,
	}
}

// parseBody lowers the "body" field of a statement.
func (p *parser) parseBody(n *sitter.Node) *ast.Statement {
	return p.makeStmt(n.ChildByFieldName("body"))
}

func (p *parser) makeStmt(n *sitter.Node) *ast.Statement {
	if n == nil {
		return nil
	}
	return &ast.Statement{Stmt: p.parseStatement(n)}
}

func (p *parser) parseIfStatement(n *sitter.Node) ast.Stmt {
	node := &ast.IfStatement{
		If:         p.idx(n),
		Test:       p.parseCondition(n.ChildByFieldName("condition")),
		Consequent: p.makeStmt(n.ChildByFieldName("consequence")),
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		if alt.Type() == "else_clause" {
			alt = p.firstNamed(alt)
		}
		node.Alternate = p.makeStmt(alt)
	}
	return node
}

func (p *parser) parseForStatement(n *sitter.Node) ast.Stmt {
	return &ast.ForStatement{
		For:    p.idx(n),
		Init:   p.parseClause(n.ChildByFieldName("initializer")),
		Test:   p.parseClause(n.ChildByFieldName("condition")),
		Update: p.parseClause(n.ChildByFieldName("increment")),
		Body:   p.parseBody(n),
	}
}

func (p *parser) parseForInOrOfStatement(n *sitter.Node) ast.Stmt {
	var of, await bool
	if op := n.ChildByFieldName("operator"); op != nil {
		of = op.Type() == "of"
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil || c.IsNamed() {
			continue
		}
		switch c.Type() {
		case "of":
			of = true
		case "await":
			await = true
		}
	}

	left := n.ChildByFieldName("left")
	from := left
	if kind := n.ChildByFieldName("kind"); kind != nil {
		from = kind
	}
	leftExpr := p.parseSpan(from, left)
	right := p.parseExpression(n.ChildByFieldName("right"))

	if of {
		return &ast.ForOfStatement{
			For:   p.idx(n),
			Await: await,
			Left:  leftExpr,
			Right: right,
			Body:  p.parseBody(n),
		}
	}
	return &ast.ForInStatement{
		For:   p.idx(n),
		Left:  leftExpr,
		Right: right,
		Body:  p.parseBody(n),
	}
}

func (p *parser) parseLabel(n *sitter.Node) *ast.Identifier {
	if label := n.ChildByFieldName("label"); label != nil {
		return p.parseIdentifier(label)
	}
	return nil
}

// parseSwitchStatement splits the clauses around the default clause, if any.
func (p *parser) parseSwitchStatement(n *sitter.Node) ast.Stmt {
	var (
		pre, post []*ast.SwitchCase
		def       *ast.SwitchDefault
	)
	body := n.ChildByFieldName("body")
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			c := body.NamedChild(i)
			if c == nil {
				continue
			}
			switch c.Type() {
			case "switch_case":
				sc := &ast.SwitchCase{
					Case:       p.idx(c),
					Test:       p.parseExpression(c.ChildByFieldName("value")),
					Consequent: p.parseClauseBody(c),
				}
				if def == nil {
					pre = append(pre, sc)
				} else {
					post = append(post, sc)
				}
			case "switch_default":
				if def != nil {
					p.errorf(c, errDuplicateDefault)
					continue
				}
				def = &ast.SwitchDefault{Default: p.idx(c), Consequent: p.parseClauseBody(c)}
			}
		}
	}

	discriminant := p.parseCondition(n.ChildByFieldName("value"))
	rightBrace := p.end(n) - 1
	if def == nil {
		return &ast.SwitchStatement{
			Switch:       p.idx(n),
			Discriminant: discriminant,
			Cases:        pre,
			RightBrace:   rightBrace,
		}
	}
	return &ast.SwitchStatementWithDefault{
		Switch:           p.idx(n),
		Discriminant:     discriminant,
		PreDefaultCases:  pre,
		DefaultCase:      def,
		PostDefaultCases: post,
		RightBrace:       rightBrace,
	}
}

func (p *parser) parseTryStatement(n *sitter.Node) ast.Stmt {
	body := p.parseBlock(n.ChildByFieldName("body"))

	var handler *ast.CatchClause
	if h := n.ChildByFieldName("handler"); h != nil {
		handler = &ast.CatchClause{
			Catch:   p.idx(h),
			Binding: p.parseExpression(h.ChildByFieldName("parameter")),
			Body:    p.parseBlock(h.ChildByFieldName("body")),
		}
	}

	if f := n.ChildByFieldName("finalizer"); f != nil {
		return &ast.TryFinallyStatement{
			Try:         p.idx(n),
			Body:        body,
			CatchClause: handler,
			Finalizer:   p.parseBlock(f.ChildByFieldName("body")),
		}
	}
	if handler == nil {
		p.errorf(n, errMissing, "catch or finally clause")
		handler = &ast.CatchClause{Catch: p.end(n), Body: &ast.Block{}}
	}
	return &ast.TryCatchStatement{Try: p.idx(n), Body: body, CatchClause: handler}
}

func (p *parser) parseVariableDeclaration(n *sitter.Node, kind ast.DeclarationKind) ast.Stmt {
	var first, last *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c == nil || c.Type() != "variable_declarator" {
			continue
		}
		if first == nil {
			first = c
		}
		last = c
	}
	return &ast.VariableDeclarationStatement{
		Idx:         p.idx(n),
		Kind:        kind,
		Declarators: p.parseSpan(first, last),
	}
}

func (p *parser) parseFunctionDeclaration(n *sitter.Node) ast.Stmt {
	node := &ast.FunctionDeclaration{
		Function:  p.idx(n),
		Name:      p.parseIdentifier(n.ChildByFieldName("name")),
		Params:    p.parseExpression(n.ChildByFieldName("parameters")),
		Generator: n.Type() == "generator_function_declaration",
	}
	if c := n.Child(0); c != nil && c.Type() == "async" {
		node.Async = true
	}
	if body := n.ChildByFieldName("body"); body != nil {
		node.Body = &ast.FunctionBody{
			LeftBrace:  p.idx(body),
			List:       p.parseStatementList(body),
			RightBrace: p.end(body) - 1,
		}
	}
	return node
}

func (p *parser) parseClassDeclaration(n *sitter.Node) ast.Stmt {
	node := &ast.ClassDeclaration{
		Class:      p.idx(n),
		Name:       p.parseIdentifier(n.ChildByFieldName("name")),
		Body:       p.parseExpression(n.ChildByFieldName("body")),
		RightBrace: p.end(n) - 1,
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c != nil && c.Type() == "class_heritage" {
			node.SuperClass = p.parseExpression(p.firstNamed(c))
		}
	}
	return node
}
