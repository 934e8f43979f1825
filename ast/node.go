package ast

// Idx is a compact encoding of a source position within JS code.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type Program struct {
	Body Statements
}

func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}
func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}

func (l Statements) Idx0() Idx {
	if len(l) == 0 {
		return 0
	}
	return l[0].Idx0()
}
func (l Statements) Idx1() Idx {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].Idx1()
}

func (n *Expression) Idx0() Idx   { return n.From }
func (n *Expression) Idx1() Idx   { return n.To }
func (n *Identifier) Idx0() Idx   { return n.Idx }
func (n *Identifier) Idx1() Idx   { return Idx(int(n.Idx) + len(n.Name)) }
func (n *FunctionBody) Idx0() Idx { return n.LeftBrace }
func (n *FunctionBody) Idx1() Idx { return n.RightBrace + 1 }

func (n *BadStatement) Idx0() Idx                 { return n.From }
func (n *Block) Idx0() Idx                        { return n.LeftBrace }
func (n *BlockStatement) Idx0() Idx               { return n.Block.Idx0() }
func (n *BreakStatement) Idx0() Idx               { return n.Idx }
func (n *CatchClause) Idx0() Idx                  { return n.Catch }
func (n *ClassDeclaration) Idx0() Idx             { return n.Class }
func (n *ContinueStatement) Idx0() Idx            { return n.Idx }
func (n *DebuggerStatement) Idx0() Idx            { return n.Debugger }
func (n *DoWhileStatement) Idx0() Idx             { return n.Do }
func (n *EmptyStatement) Idx0() Idx               { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx          { return n.Expression.Idx0() }
func (n *ForInStatement) Idx0() Idx               { return n.For }
func (n *ForOfStatement) Idx0() Idx               { return n.For }
func (n *ForStatement) Idx0() Idx                 { return n.For }
func (n *FunctionDeclaration) Idx0() Idx          { return n.Function }
func (n *IfStatement) Idx0() Idx                  { return n.If }
func (n *LabeledStatement) Idx0() Idx             { return n.Label.Idx0() }
func (n *ReturnStatement) Idx0() Idx              { return n.Return }
func (n *SwitchCase) Idx0() Idx                   { return n.Case }
func (n *SwitchDefault) Idx0() Idx                { return n.Default }
func (n *SwitchStatement) Idx0() Idx              { return n.Switch }
func (n *SwitchStatementWithDefault) Idx0() Idx   { return n.Switch }
func (n *ThrowStatement) Idx0() Idx               { return n.Throw }
func (n *TryCatchStatement) Idx0() Idx            { return n.Try }
func (n *TryFinallyStatement) Idx0() Idx          { return n.Try }
func (n *VariableDeclarationStatement) Idx0() Idx { return n.Idx }
func (n *WhileStatement) Idx0() Idx               { return n.While }
func (n *WithStatement) Idx0() Idx                { return n.With }

func (n *BadStatement) Idx1() Idx   { return n.To }
func (n *Block) Idx1() Idx          { return n.RightBrace + 1 }
func (n *BlockStatement) Idx1() Idx { return n.Block.Idx1() }
func (n *BreakStatement) Idx1() Idx {
	if n.Label != nil {
		return n.Label.Idx1()
	}
	return n.Idx + 5 // "break"
}
func (n *CatchClause) Idx1() Idx      { return n.Body.Idx1() }
func (n *ClassDeclaration) Idx1() Idx { return n.RightBrace + 1 }
func (n *ContinueStatement) Idx1() Idx {
	if n.Label != nil {
		return n.Label.Idx1()
	}
	return n.Idx + 8 // "continue"
}
func (n *DebuggerStatement) Idx1() Idx   { return n.Debugger + 8 }
func (n *DoWhileStatement) Idx1() Idx    { return n.Test.Idx1() + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *ForInStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForOfStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx        { return n.Body.Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Body.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *LabeledStatement) Idx1() Idx { return n.Body.Idx1() }
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *SwitchCase) Idx1() Idx {
	if len(n.Consequent) > 0 {
		return n.Consequent.Idx1()
	}
	return n.Test.Idx1() + 1
}
func (n *SwitchDefault) Idx1() Idx {
	if len(n.Consequent) > 0 {
		return n.Consequent.Idx1()
	}
	return n.Default + 8 // "default:"
}
func (n *SwitchStatement) Idx1() Idx            { return n.RightBrace + 1 }
func (n *SwitchStatementWithDefault) Idx1() Idx { return n.RightBrace + 1 }
func (n *ThrowStatement) Idx1() Idx             { return n.Argument.Idx1() }
func (n *TryCatchStatement) Idx1() Idx          { return n.CatchClause.Idx1() }
func (n *TryFinallyStatement) Idx1() Idx        { return n.Finalizer.Idx1() }
func (n *VariableDeclarationStatement) Idx1() Idx {
	return n.Declarators.Idx1()
}
func (n *WhileStatement) Idx1() Idx { return n.Body.Idx1() }
func (n *WithStatement) Idx1() Idx  { return n.Body.Idx1() }
