// Package shift decodes statement trees in the Shift AST JSON format, as
// produced by shift-parser, into ast nodes.
//
// Expressions are not decoded. Each becomes an opaque ast.Expression whose
// source is the identifier or literal it holds, or the node type in angle
// brackets for anything larger. Statement types outside the supported
// grammar decode to ast.BadStatement carrying the type name.
package shift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/t14raptor/go-fast-eiod/ast"
)

// ErrMalformed is wrapped by every error for JSON that is not a Shift tree.
var ErrMalformed = errors.New("malformed shift tree")

var parserPool fastjson.ParserPool

// Decode accepts a Script, Module or FunctionBody node, a bare array of
// statements, or a single statement, and returns the program it describes.
func Decode(data []byte) (*ast.Program, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse JSON: %w", err)
	}

	d := &decoder{}
	var body ast.Statements
	switch {
	case v.Type() == fastjson.TypeArray:
		body = d.statements(v, "$")
	case v.Type() != fastjson.TypeObject:
		d.errorf("$", "expected an object or an array, got %s", v.Type())
	default:
		switch typ := string(v.GetStringBytes("type")); typ {
		case "Script", "FunctionBody":
			body = d.statements(v.Get("statements"), "$.statements")
		case "Module":
			body = d.statements(v.Get("items"), "$.items")
		default:
			body = ast.Statements{{Stmt: d.statement(v, "$")}}
		}
	}
	if d.errors != nil {
		return nil, d.errors
	}
	return &ast.Program{Body: body}, nil
}

type decoder struct {
	errors error
}

func (d *decoder) errorf(path, msg string, args ...any) {
	d.errors = errors.Join(d.errors, fmt.Errorf("%s: %w: %s", path, ErrMalformed, fmt.Sprintf(msg, args...)))
}

func (d *decoder) statements(v *fastjson.Value, path string) ast.Statements {
	if v == nil || v.Type() != fastjson.TypeArray {
		d.errorf(path, "expected an array of statements")
		return nil
	}
	items, _ := v.Array()
	list := make(ast.Statements, 0, len(items))
	for i, item := range items {
		list = append(list, ast.Statement{Stmt: d.statement(item, fmt.Sprintf("%s[%d]", path, i))})
	}
	return list
}

func (d *decoder) statement(v *fastjson.Value, path string) ast.Stmt {
	if v == nil || v.Type() != fastjson.TypeObject {
		d.errorf(path, "expected a statement object")
		return &ast.BadStatement{}
	}
	idx := position(v)

	switch typ := string(v.GetStringBytes("type")); typ {
	case "EmptyStatement":
		return &ast.EmptyStatement{Semicolon: idx}
	case "DebuggerStatement":
		return &ast.DebuggerStatement{Debugger: idx}
	case "ExpressionStatement":
		return &ast.ExpressionStatement{Expression: d.expr(v, path, "expression")}
	case "BlockStatement":
		return &ast.BlockStatement{Block: d.block(v.Get("block"), path+".block")}
	case "BreakStatement":
		return &ast.BreakStatement{Idx: idx, Label: label(v)}
	case "ContinueStatement":
		return &ast.ContinueStatement{Idx: idx, Label: label(v)}
	case "ReturnStatement":
		return &ast.ReturnStatement{Return: idx, Argument: optExpr(v, "expression")}
	case "ThrowStatement":
		return &ast.ThrowStatement{Throw: idx, Argument: d.expr(v, path, "expression")}
	case "IfStatement":
		return &ast.IfStatement{
			If:         idx,
			Test:       d.expr(v, path, "test"),
			Consequent: d.stmt(v, path, "consequent"),
			Alternate:  d.optStmt(v, path, "alternate"),
		}
	case "LabeledStatement":
		lbl := label(v)
		if lbl == nil {
			d.errorf(path+".label", "expected a label")
		}
		return &ast.LabeledStatement{Label: lbl, Body: d.stmt(v, path, "body")}
	case "WhileStatement":
		return &ast.WhileStatement{While: idx, Test: d.expr(v, path, "test"), Body: d.stmt(v, path, "body")}
	case "DoWhileStatement":
		return &ast.DoWhileStatement{Do: idx, Body: d.stmt(v, path, "body"), Test: d.expr(v, path, "test")}
	case "WithStatement":
		return &ast.WithStatement{With: idx, Object: d.expr(v, path, "object"), Body: d.stmt(v, path, "body")}
	case "ForStatement":
		return &ast.ForStatement{
			For:    idx,
			Init:   optExpr(v, "init"),
			Test:   optExpr(v, "test"),
			Update: optExpr(v, "update"),
			Body:   d.stmt(v, path, "body"),
		}
	case "ForInStatement":
		return &ast.ForInStatement{
			For:   idx,
			Left:  d.expr(v, path, "left"),
			Right: d.expr(v, path, "right"),
			Body:  d.stmt(v, path, "body"),
		}
	case "ForOfStatement", "ForAwaitStatement":
		return &ast.ForOfStatement{
			For:   idx,
			Await: typ == "ForAwaitStatement",
			Left:  d.expr(v, path, "left"),
			Right: d.expr(v, path, "right"),
			Body:  d.stmt(v, path, "body"),
		}
	case "SwitchStatement":
		return &ast.SwitchStatement{
			Switch:       idx,
			Discriminant: d.expr(v, path, "discriminant"),
			Cases:        d.cases(v, path, "cases"),
		}
	case "SwitchStatementWithDefault":
		return &ast.SwitchStatementWithDefault{
			Switch:           idx,
			Discriminant:     d.expr(v, path, "discriminant"),
			PreDefaultCases:  d.cases(v, path, "preDefaultCases"),
			DefaultCase:      d.defaultCase(v.Get("defaultCase"), path+".defaultCase"),
			PostDefaultCases: d.cases(v, path, "postDefaultCases"),
		}
	case "TryCatchStatement":
		return &ast.TryCatchStatement{
			Try:         idx,
			Body:        d.block(v.Get("body"), path+".body"),
			CatchClause: d.catchClause(v.Get("catchClause"), path+".catchClause"),
		}
	case "TryFinallyStatement":
		node := &ast.TryFinallyStatement{
			Try:       idx,
			Body:      d.block(v.Get("body"), path+".body"),
			Finalizer: d.block(v.Get("finalizer"), path+".finalizer"),
		}
		if c := v.Get("catchClause"); c != nil && c.Type() != fastjson.TypeNull {
			node.CatchClause = d.catchClause(c, path+".catchClause")
		}
		return node
	case "VariableDeclarationStatement":
		decl := v.Get("declaration")
		if decl == nil || decl.Type() != fastjson.TypeObject {
			d.errorf(path+".declaration", "expected a VariableDeclaration")
			return &ast.VariableDeclarationStatement{Idx: idx}
		}
		return &ast.VariableDeclarationStatement{
			Idx:         idx,
			Kind:        declarationKind(decl),
			Declarators: &ast.Expression{Source: declarators(decl)},
		}
	case "FunctionDeclaration":
		node := &ast.FunctionDeclaration{
			Function:  idx,
			Name:      binding(v.Get("name")),
			Params:    &ast.Expression{Source: params(v.Get("params"))},
			Async:     v.GetBool("isAsync"),
			Generator: v.GetBool("isGenerator"),
		}
		body := v.Get("body")
		if body == nil || body.Type() != fastjson.TypeObject {
			d.errorf(path+".body", "expected a FunctionBody")
			return node
		}
		node.Body = &ast.FunctionBody{List: d.statements(body.Get("statements"), path+".body.statements")}
		return node
	case "ClassDeclaration":
		return &ast.ClassDeclaration{
			Class:      idx,
			Name:       binding(v.Get("name")),
			SuperClass: optExpr(v, "super"),
		}
	case "":
		d.errorf(path, "missing node type")
		return &ast.BadStatement{From: idx, To: idx}
	default:
		return &ast.BadStatement{From: idx, To: idx, Kind: typ}
	}
}

func (d *decoder) stmt(v *fastjson.Value, path, key string) *ast.Statement {
	return &ast.Statement{Stmt: d.statement(v.Get(key), path+"."+key)}
}

func (d *decoder) optStmt(v *fastjson.Value, path, key string) *ast.Statement {
	if c := v.Get(key); c == nil || c.Type() == fastjson.TypeNull {
		return nil
	}
	return d.stmt(v, path, key)
}

func (d *decoder) block(v *fastjson.Value, path string) *ast.Block {
	if v == nil || v.Type() != fastjson.TypeObject {
		d.errorf(path, "expected a Block")
		return &ast.Block{}
	}
	return &ast.Block{LeftBrace: position(v), List: d.statements(v.Get("statements"), path+".statements")}
}

func (d *decoder) cases(v *fastjson.Value, path, key string) []*ast.SwitchCase {
	c := v.Get(key)
	if c == nil || c.Type() != fastjson.TypeArray {
		d.errorf(path+"."+key, "expected an array of SwitchCase")
		return nil
	}
	items, _ := c.Array()
	cases := make([]*ast.SwitchCase, 0, len(items))
	for i, item := range items {
		p := fmt.Sprintf("%s.%s[%d]", path, key, i)
		if item.Type() != fastjson.TypeObject {
			d.errorf(p, "expected a SwitchCase")
			continue
		}
		cases = append(cases, &ast.SwitchCase{
			Case:       position(item),
			Test:       d.expr(item, p, "test"),
			Consequent: d.statements(item.Get("consequent"), p+".consequent"),
		})
	}
	return cases
}

func (d *decoder) defaultCase(v *fastjson.Value, path string) *ast.SwitchDefault {
	if v == nil || v.Type() != fastjson.TypeObject {
		d.errorf(path, "expected a SwitchDefault")
		return &ast.SwitchDefault{}
	}
	return &ast.SwitchDefault{Default: position(v), Consequent: d.statements(v.Get("consequent"), path+".consequent")}
}

func (d *decoder) catchClause(v *fastjson.Value, path string) *ast.CatchClause {
	if v == nil || v.Type() != fastjson.TypeObject {
		d.errorf(path, "expected a CatchClause")
		return &ast.CatchClause{Body: &ast.Block{}}
	}
	return &ast.CatchClause{
		Catch:   position(v),
		Binding: optExpr(v, "binding"),
		Body:    d.block(v.Get("body"), path+".body"),
	}
}

// expr decodes a required expression child.
func (d *decoder) expr(v *fastjson.Value, path, key string) *ast.Expression {
	e := optExpr(v, key)
	if e == nil {
		d.errorf(path+"."+key, "expected an expression")
		return &ast.Expression{}
	}
	return e
}

func optExpr(v *fastjson.Value, key string) *ast.Expression {
	c := v.Get(key)
	if c == nil || c.Type() == fastjson.TypeNull {
		return nil
	}
	idx := position(c)
	return &ast.Expression{From: idx, To: idx, Source: describe(c)}
}

// describe renders an expression node as short JavaScript-like text.
func describe(v *fastjson.Value) string {
	switch typ := string(v.GetStringBytes("type")); typ {
	case "IdentifierExpression", "BindingIdentifier", "AssignmentTargetIdentifier":
		return string(v.GetStringBytes("name"))
	case "LiteralNumericExpression", "LiteralBooleanExpression":
		if val := v.Get("value"); val != nil {
			return val.String()
		}
		return "<" + typ + ">"
	case "LiteralStringExpression":
		return strconv.Quote(string(v.GetStringBytes("value")))
	case "LiteralNullExpression":
		return "null"
	case "ThisExpression":
		return "this"
	case "VariableDeclaration":
		return declarationKind(v).String() + " " + declarators(v)
	default:
		return "<" + typ + ">"
	}
}

func declarationKind(decl *fastjson.Value) ast.DeclarationKind {
	switch string(decl.GetStringBytes("kind")) {
	case "let":
		return ast.Let
	case "const":
		return ast.Const
	default:
		return ast.Var
	}
}

func declarators(decl *fastjson.Value) string {
	var names []string
	for _, dv := range decl.GetArray("declarators") {
		b := dv.Get("binding")
		if b == nil {
			continue
		}
		name := describe(b)
		if init := dv.Get("init"); init != nil && init.Type() != fastjson.TypeNull {
			name += " = " + describe(init)
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func params(v *fastjson.Value) string {
	if v == nil {
		return "()"
	}
	var names []string
	for _, item := range v.GetArray("items") {
		names = append(names, describe(item))
	}
	if rest := v.Get("rest"); rest != nil && rest.Type() != fastjson.TypeNull {
		names = append(names, "..."+describe(rest))
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func binding(v *fastjson.Value) *ast.Identifier {
	if v == nil || v.Type() != fastjson.TypeObject {
		return nil
	}
	return &ast.Identifier{Idx: position(v), Name: string(v.GetStringBytes("name"))}
}

// label decodes the label of a break, continue or labeled statement. Shift
// stores it as a plain string.
func label(v *fastjson.Value) *ast.Identifier {
	l := v.Get("label")
	if l == nil || l.Type() != fastjson.TypeString {
		return nil
	}
	return &ast.Identifier{Name: string(l.GetStringBytes())}
}

// position reads the optional loc.start.offset of a node.
func position(v *fastjson.Value) ast.Idx {
	if off := v.Get("loc", "start", "offset"); off != nil && off.Type() == fastjson.TypeNumber {
		return ast.Idx(off.GetInt()) + 1
	}
	return 0
}
