package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/t14raptor/go-fast-eiod/ast"
)

// Expressions are kept as source text.

func (p *parser) parseExpression(n *sitter.Node) *ast.Expression {
	if n == nil {
		return nil
	}
	return &ast.Expression{From: p.idx(n), To: p.end(n), Source: p.text(n)}
}

// parseCondition drops the parentheses around a condition.
func (p *parser) parseCondition(n *sitter.Node) *ast.Expression {
	if n != nil && n.Type() == "parenthesized_expression" {
		if inner := p.firstNamed(n); inner != nil {
			n = inner
		}
	}
	return p.parseExpression(n)
}

// parseClause lowers one of the three clauses of a for statement. Older
// grammars wrap them in statements, so a trailing semicolon is dropped and
// an empty clause is absent.
func (p *parser) parseClause(n *sitter.Node) *ast.Expression {
	if n == nil || n.Type() == "empty_statement" {
		return nil
	}
	src := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p.text(n)), ";"))
	if src == "" {
		return nil
	}
	return &ast.Expression{From: p.idx(n), To: p.idx(n) + ast.Idx(len(src)), Source: src}
}

// parseSpan returns the source text running from the start of first to the
// end of last.
func (p *parser) parseSpan(first, last *sitter.Node) *ast.Expression {
	if first == nil || last == nil {
		return nil
	}
	from, to := first.StartByte(), last.EndByte()
	return &ast.Expression{From: p.idx(first), To: p.end(last), Source: string(p.src[from:to])}
}

func (p *parser) parseIdentifier(n *sitter.Node) *ast.Identifier {
	if n == nil {
		return nil
	}
	return &ast.Identifier{Idx: p.idx(n), Name: p.text(n)}
}

// firstNamed returns the first named child that is not a comment.
func (p *parser) firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c != nil && !skip(c) {
			return c
		}
	}
	return nil
}
