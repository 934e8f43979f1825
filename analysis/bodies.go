package analysis

import "github.com/t14raptor/go-fast-eiod/ast"

// Body is a function declaration body. Each body is its own top-level
// statement list for the judgment.
type Body struct {
	Name string
	Idx  ast.Idx
	List ast.Statements
}

type bodyCollector struct {
	ast.NoopVisitor
	bodies []Body
}

func (v *bodyCollector) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Body != nil {
		name := ""
		if n.Name != nil {
			name = n.Name.Name
		}
		v.bodies = append(v.bodies, Body{Name: name, Idx: n.Idx0(), List: n.Body.List})
	}
	n.VisitChildrenWith(v)
}

// Expressions are opaque, so function expressions are never reached.
func (v *bodyCollector) VisitExpression(n *ast.Expression) {}

// FunctionBodies collects the bodies of every function declaration in p,
// nested ones included, in source order.
func FunctionBodies(p *ast.Program) []Body {
	if p == nil {
		return nil
	}
	v := &bodyCollector{}
	v.V = v
	p.VisitWith(v)
	return v.bodies
}
