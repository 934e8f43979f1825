package analysis

import (
	"github.com/t14raptor/go-fast-eiod/ast"
	"github.com/t14raptor/go-fast-eiod/ast/ext"
	"github.com/t14raptor/go-fast-eiod/labels"
)

func (w *walker) endsIn(n ast.Node, set labels.Set, isLast bool) bool {
	w.enter("EndsInIterationOrDeclaration", n, set)
	defer w.leave()

	switch n := n.(type) {
	case ast.Statements:
		return w.endsInList(n, set, isLast)

	case *ast.VariableDeclarationStatement, *ast.FunctionDeclaration, *ast.ClassDeclaration:
		return isLast

	case *ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement:
		if isLast {
			return true
		}
		body, _ := ext.LoopBody(n)
		if w.isBreak(stmt(body), set) {
			return true
		}
		return w.endsIn(stmt(body), set, false)

	case *ast.EmptyStatement, *ast.ExpressionStatement, *ast.ContinueStatement, *ast.BreakStatement,
		*ast.ReturnStatement, *ast.ThrowStatement, *ast.DebuggerStatement:
		return false

	case *ast.LabeledStatement:
		if ext.IsFunctionDeclaration(n.Body) {
			return isLast
		}
		if isLast {
			return w.endsIn(stmt(n.Body), set.With(label(n)), true)
		}
		return w.endsIn(stmt(n.Body), set, false)

	case *ast.BlockStatement:
		return w.endsIn(block(n.Block), set, isLast)

	case *ast.Block:
		if len(n.List) == 0 {
			return false
		}
		return w.endsIn(n.List, set, isLast)

	case *ast.IfStatement:
		if n.Alternate == nil {
			return w.endsIn(stmt(n.Consequent), set, isLast)
		}
		return w.endsIn(stmt(n.Consequent), set, isLast) || w.endsIn(stmt(n.Alternate), set, isLast)

	case *ast.WithStatement:
		return w.endsIn(stmt(n.Body), set, isLast)

	case *ast.SwitchStatement:
		return w.endsInSwitch(n, set, isLast)

	case *ast.SwitchStatementWithDefault:
		return w.endsInSwitch(n, set, isLast)

	case *ast.SwitchCase:
		if len(n.Consequent) == 0 {
			return false
		}
		return w.endsIn(n.Consequent, set, isLast)

	case *ast.SwitchDefault:
		if len(n.Consequent) == 0 {
			return false
		}
		return w.endsIn(n.Consequent, set, isLast)

	case *ast.TryCatchStatement:
		return w.endsIn(catchClause(n.CatchClause), set, isLast)

	case *ast.TryFinallyStatement:
		if w.endsIn(block(n.Body), set, isLast) {
			return true
		}
		return n.CatchClause != nil && w.endsIn(n.CatchClause, set, isLast)

	case *ast.CatchClause:
		return w.endsIn(block(n.Body), set, isLast)
	}

	w.unhandled(n)
	return false
}

// endsInList folds the list from its last statement towards its first.
// Trailing vacuous statements are dropped; a trailing break makes the
// statements before it last. The first statement that is neither decides,
// unless an earlier one already satisfies the judgment as a non-last statement.
func (w *walker) endsInList(list ast.Statements, set labels.Set, isLast bool) bool {
	if len(list) == 0 {
		w.emptyList("EndsInIterationOrDeclaration")
	}
	for i := len(list) - 1; i > 0; i-- {
		last := list[i].Stmt
		switch {
		case w.isEmpty(last, labels.Empty):
			continue
		case w.isBreak(last, set):
			isLast = true
			continue
		}
		if w.endsIn(last, set, isLast) {
			return true
		}
		isLast = false
	}
	return w.endsIn(list[0].Stmt, set, isLast)
}

// endsInSwitch scans the clauses from the last to the first. A bare break
// inside the switch targets the switch itself, so the unlabeled target is
// active only when the switch is last.
func (w *walker) endsInSwitch(sw ext.Switch, set labels.Set, isLast bool) bool {
	scoped := set.Without(labels.Unlabeled)
	if isLast {
		scoped = set.With(labels.Unlabeled)
	}
	for i := sw.ClauseCount() - 1; i >= 0; i-- {
		clause := sw.ClauseAt(i)
		if w.isEmpty(clause, labels.Empty) {
			continue
		}
		if w.endsIn(clause, scoped, isLast) {
			return true
		}
		isLast = w.isBreak(clause, scoped)
	}
	return false
}

func (w *walker) isEmpty(n ast.Node, set labels.Set) bool {
	w.enter("IsEmpty", n, set)
	defer w.leave()

	switch n := n.(type) {
	case ast.Statements:
		if len(n) == 0 {
			w.emptyList("IsEmpty")
		}
		if len(n) > 1 && w.isBreak(n[:len(n)-1], set) {
			return true
		}
		// With no leading break, the list is vacuous iff every statement is.
		for i := len(n) - 1; i >= 0; i-- {
			if !w.isEmpty(n[i].Stmt, set) {
				return false
			}
		}
		return true

	case *ast.EmptyStatement, *ast.DebuggerStatement:
		return true

	case *ast.BlockStatement:
		return w.isEmpty(block(n.Block), set)

	case *ast.Block:
		if len(n.List) == 0 {
			return true
		}
		key := blockKey{block: n, set: set.String()}
		if v, ok := w.vacuous[key]; ok {
			return v
		}
		v := w.isEmpty(n.List, set)
		if w.vacuous == nil {
			w.vacuous = make(map[blockKey]bool)
		}
		w.vacuous[key] = v
		return v

	case *ast.BreakStatement:
		return breaksTo(n, set)

	case *ast.LabeledStatement:
		if ext.IsFunctionDeclaration(n.Body) {
			return false
		}
		return w.isEmpty(stmt(n.Body), set.With(label(n)))

	case *ast.SwitchCase:
		if len(n.Consequent) == 0 {
			return true
		}
		return w.isEmpty(n.Consequent, set)

	case *ast.SwitchDefault:
		if len(n.Consequent) == 0 {
			return true
		}
		return w.isEmpty(n.Consequent, set)

	case *ast.VariableDeclarationStatement, *ast.FunctionDeclaration, *ast.ClassDeclaration,
		*ast.ExpressionStatement, *ast.IfStatement, *ast.SwitchStatement, *ast.SwitchStatementWithDefault,
		*ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement,
		*ast.ContinueStatement, *ast.ReturnStatement, *ast.WithStatement, *ast.ThrowStatement,
		*ast.TryCatchStatement, *ast.TryFinallyStatement:
		return false
	}

	w.unhandled(n)
	return false
}

func (w *walker) isBreak(n ast.Node, set labels.Set) bool {
	w.enter("IsBreak", n, set)
	defer w.leave()

	switch n := n.(type) {
	case ast.Statements:
		if len(n) == 0 {
			w.emptyList("IsBreak")
		}
		// IsBreak(rest ++ [last]) is IsBreak(rest) or (IsEmpty(last) and
		// IsBreak(rest)), which is IsBreak(rest): only the first statement counts.
		return w.isBreak(n[0].Stmt, set)

	case *ast.EmptyStatement, *ast.DebuggerStatement:
		return true

	case *ast.BlockStatement:
		return w.isEmpty(block(n.Block), set)

	case *ast.Block:
		if len(n.List) == 0 {
			return false
		}
		return w.isEmpty(n, set)

	case *ast.BreakStatement:
		return breaksTo(n, set)

	case *ast.LabeledStatement:
		if ext.IsFunctionDeclaration(n.Body) {
			return false
		}
		return w.isBreak(stmt(n.Body), set)

	case *ast.SwitchCase:
		if len(n.Consequent) == 0 {
			return false
		}
		return w.isBreak(n.Consequent, set)

	case *ast.SwitchDefault:
		if len(n.Consequent) == 0 {
			return false
		}
		return w.isBreak(n.Consequent, set)

	case *ast.VariableDeclarationStatement, *ast.FunctionDeclaration, *ast.ClassDeclaration,
		*ast.ExpressionStatement, *ast.IfStatement, *ast.SwitchStatement, *ast.SwitchStatementWithDefault,
		*ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement,
		*ast.ContinueStatement, *ast.ReturnStatement, *ast.WithStatement, *ast.ThrowStatement,
		*ast.TryCatchStatement, *ast.TryFinallyStatement:
		return false
	}

	w.unhandled(n)
	return false
}

func breaksTo(n *ast.BreakStatement, set labels.Set) bool {
	if n.Label == nil {
		return set.Contains(labels.Unlabeled)
	}
	return set.Contains(labels.Named(n.Label.Name))
}

func label(n *ast.LabeledStatement) labels.Target {
	return labels.Named(n.Label.Name)
}

// stmt, block and catchClause keep a missing child from turning into a
// typed nil: it reaches the predicates as a nil node and is reported.
func stmt(s *ast.Statement) ast.Node {
	if s == nil || s.Stmt == nil {
		return nil
	}
	return s.Stmt
}

func block(b *ast.Block) ast.Node {
	if b == nil {
		return nil
	}
	return b
}

func catchClause(c *ast.CatchClause) ast.Node {
	if c == nil {
		return nil
	}
	return c
}
