package parser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/t14raptor/go-fast-eiod/ast"
)

// parser lowers one concrete syntax tree into ast nodes.
type parser struct {
	src []byte

	errors error
}

// newParser ...
func newParser(src string) *parser {
	return &parser{src: []byte(src)}
}

// ParseFile parses the source code of a single JavaScript script and returns
// the corresponding ast.Program node.
func ParseFile(src string) (*ast.Program, error) {
	return ParseFileContext(context.Background(), src)
}

// ParseFileContext is ParseFile with a context that cancels the parse.
func ParseFileContext(ctx context.Context, src string) (*ast.Program, error) {
	p := newParser(src)

	ts := sitter.NewParser()
	defer ts.Close()
	ts.SetLanguage(javascript.GetLanguage())

	tree, err := ts.ParseCtx(ctx, nil, p.src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return p.parse(tree.RootNode())
}

// parse ...
func (p *parser) parse(root *sitter.Node) (*ast.Program, error) {
	if root.HasError() {
		p.collectErrors(root)
		if p.errors != nil {
			return nil, p.errors
		}
	}
	program := &ast.Program{Body: p.parseStatementList(root)}
	return program, p.errors
}

// collectErrors reports every ERROR and missing node, outermost first.
func (p *parser) collectErrors(n *sitter.Node) {
	switch {
	case n.Type() == "ERROR":
		p.errorf(n, errUnexpectedToken, p.excerpt(n))
		return
	case n.IsMissing():
		p.errorf(n, errMissing, n.Type())
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && (c.HasError() || c.IsMissing()) {
			p.collectErrors(c)
		}
	}
}

func (p *parser) idx(n *sitter.Node) ast.Idx {
	return ast.Idx(n.StartByte()) + 1
}

func (p *parser) end(n *sitter.Node) ast.Idx {
	return ast.Idx(n.EndByte()) + 1
}

func (p *parser) text(n *sitter.Node) string {
	return n.Content(p.src)
}

func (p *parser) excerpt(n *sitter.Node) string {
	const limit = 24
	s := p.text(n)
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}

// skip reports nodes that never become statements.
func skip(n *sitter.Node) bool {
	switch n.Type() {
	case "comment", "html_comment", "hash_bang_line":
		return true
	}
	return false
}
