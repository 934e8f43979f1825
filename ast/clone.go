package ast

// Clone returns a deep copy of the program.
func (n *Program) Clone() *Program {
	if n == nil {
		return nil
	}
	return &Program{Body: n.Body.Clone()}
}

func (l Statements) Clone() Statements {
	if l == nil {
		return nil
	}
	out := make(Statements, len(l))
	for i := range l {
		out[i] = Statement{Stmt: cloneStmt(l[i].Stmt)}
	}
	return out
}

func (n *Statement) Clone() *Statement {
	if n == nil {
		return nil
	}
	return &Statement{Stmt: cloneStmt(n.Stmt)}
}

func cloneStmt(s Stmt) Stmt {
	switch n := s.(type) {
	case nil:
		return nil
	case *BadStatement:
		c := *n
		return &c
	case *BlockStatement:
		return &BlockStatement{Block: n.Block.Clone()}
	case *BreakStatement:
		return &BreakStatement{Idx: n.Idx, Label: n.Label.Clone()}
	case *ContinueStatement:
		return &ContinueStatement{Idx: n.Idx, Label: n.Label.Clone()}
	case *DebuggerStatement:
		c := *n
		return &c
	case *DoWhileStatement:
		return &DoWhileStatement{Do: n.Do, Body: n.Body.Clone(), Test: n.Test.Clone()}
	case *EmptyStatement:
		c := *n
		return &c
	case *ExpressionStatement:
		return &ExpressionStatement{Expression: n.Expression.Clone()}
	case *IfStatement:
		return &IfStatement{
			If:         n.If,
			Test:       n.Test.Clone(),
			Consequent: n.Consequent.Clone(),
			Alternate:  n.Alternate.Clone(),
		}
	case *LabeledStatement:
		return &LabeledStatement{Label: n.Label.Clone(), Colon: n.Colon, Body: n.Body.Clone()}
	case *ReturnStatement:
		return &ReturnStatement{Return: n.Return, Argument: n.Argument.Clone()}
	case *ThrowStatement:
		return &ThrowStatement{Throw: n.Throw, Argument: n.Argument.Clone()}
	case *WhileStatement:
		return &WhileStatement{While: n.While, Test: n.Test.Clone(), Body: n.Body.Clone()}
	case *WithStatement:
		return &WithStatement{With: n.With, Object: n.Object.Clone(), Body: n.Body.Clone()}
	case *ForStatement:
		return &ForStatement{
			For:    n.For,
			Init:   n.Init.Clone(),
			Test:   n.Test.Clone(),
			Update: n.Update.Clone(),
			Body:   n.Body.Clone(),
		}
	case *ForInStatement:
		return &ForInStatement{For: n.For, Left: n.Left.Clone(), Right: n.Right.Clone(), Body: n.Body.Clone()}
	case *ForOfStatement:
		return &ForOfStatement{For: n.For, Await: n.Await, Left: n.Left.Clone(), Right: n.Right.Clone(), Body: n.Body.Clone()}
	case *SwitchStatement:
		return &SwitchStatement{
			Switch:       n.Switch,
			Discriminant: n.Discriminant.Clone(),
			Cases:        cloneCases(n.Cases),
			RightBrace:   n.RightBrace,
		}
	case *SwitchStatementWithDefault:
		return &SwitchStatementWithDefault{
			Switch:           n.Switch,
			Discriminant:     n.Discriminant.Clone(),
			PreDefaultCases:  cloneCases(n.PreDefaultCases),
			DefaultCase:      n.DefaultCase.Clone(),
			PostDefaultCases: cloneCases(n.PostDefaultCases),
			RightBrace:       n.RightBrace,
		}
	case *TryCatchStatement:
		return &TryCatchStatement{Try: n.Try, Body: n.Body.Clone(), CatchClause: n.CatchClause.Clone()}
	case *TryFinallyStatement:
		return &TryFinallyStatement{
			Try:         n.Try,
			Body:        n.Body.Clone(),
			CatchClause: n.CatchClause.Clone(),
			Finalizer:   n.Finalizer.Clone(),
		}
	case *VariableDeclarationStatement:
		return &VariableDeclarationStatement{Idx: n.Idx, Kind: n.Kind, Declarators: n.Declarators.Clone()}
	case *FunctionDeclaration:
		return &FunctionDeclaration{
			Function:  n.Function,
			Name:      n.Name.Clone(),
			Params:    n.Params.Clone(),
			Body:      n.Body.Clone(),
			Async:     n.Async,
			Generator: n.Generator,
		}
	case *ClassDeclaration:
		return &ClassDeclaration{
			Class:      n.Class,
			Name:       n.Name.Clone(),
			SuperClass: n.SuperClass.Clone(),
			Body:       n.Body.Clone(),
			RightBrace: n.RightBrace,
		}
	}
	panic("unreachable")
}

func cloneCases(cases []*SwitchCase) []*SwitchCase {
	if cases == nil {
		return nil
	}
	out := make([]*SwitchCase, len(cases))
	for i, c := range cases {
		out[i] = c.Clone()
	}
	return out
}

func (n *Block) Clone() *Block {
	if n == nil {
		return nil
	}
	return &Block{LeftBrace: n.LeftBrace, List: n.List.Clone(), RightBrace: n.RightBrace}
}

func (n *FunctionBody) Clone() *FunctionBody {
	if n == nil {
		return nil
	}
	return &FunctionBody{LeftBrace: n.LeftBrace, List: n.List.Clone(), RightBrace: n.RightBrace}
}

func (n *SwitchCase) Clone() *SwitchCase {
	if n == nil {
		return nil
	}
	return &SwitchCase{Case: n.Case, Test: n.Test.Clone(), Consequent: n.Consequent.Clone()}
}

func (n *SwitchDefault) Clone() *SwitchDefault {
	if n == nil {
		return nil
	}
	return &SwitchDefault{Default: n.Default, Consequent: n.Consequent.Clone()}
}

func (n *CatchClause) Clone() *CatchClause {
	if n == nil {
		return nil
	}
	return &CatchClause{Catch: n.Catch, Binding: n.Binding.Clone(), Body: n.Body.Clone()}
}

func (n *Identifier) Clone() *Identifier {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func (n *Expression) Clone() *Expression {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
