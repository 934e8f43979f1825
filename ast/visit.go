package ast

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitProgram(node *Program)
	VisitStatements(node *Statements)
	VisitStatement(node *Statement)
	VisitExpression(node *Expression)
	VisitIdentifier(node *Identifier)
	VisitFunctionBody(node *FunctionBody)
	VisitBadStatement(node *BadStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitBlock(node *Block)
	VisitBreakStatement(node *BreakStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitDebuggerStatement(node *DebuggerStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitIfStatement(node *IfStatement)
	VisitLabeledStatement(node *LabeledStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitWithStatement(node *WithStatement)
	VisitForStatement(node *ForStatement)
	VisitForInStatement(node *ForInStatement)
	VisitForOfStatement(node *ForOfStatement)
	VisitSwitchStatement(node *SwitchStatement)
	VisitSwitchStatementWithDefault(node *SwitchStatementWithDefault)
	VisitSwitchCase(node *SwitchCase)
	VisitSwitchDefault(node *SwitchDefault)
	VisitTryCatchStatement(node *TryCatchStatement)
	VisitTryFinallyStatement(node *TryFinallyStatement)
	VisitCatchClause(node *CatchClause)
	VisitVariableDeclarationStatement(node *VariableDeclarationStatement)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitClassDeclaration(node *ClassDeclaration)
}

// NoopVisitor walks every child and does nothing else. Embed it and set V
// to the embedding visitor so that overridden methods are reached.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(node *Program) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStatements(node *Statements) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStatement(node *Statement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpression(node *Expression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIdentifier(node *Identifier) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionBody(node *FunctionBody) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBadStatement(node *BadStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlock(node *Block) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDebuggerStatement(node *DebuggerStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDoWhileStatement(node *DoWhileStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIfStatement(node *IfStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitLabeledStatement(node *LabeledStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThrowStatement(node *ThrowStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitWithStatement(node *WithStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForStatement(node *ForStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForInStatement(node *ForInStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForOfStatement(node *ForOfStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchStatement(node *SwitchStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchStatementWithDefault(node *SwitchStatementWithDefault) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchCase(node *SwitchCase) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchDefault(node *SwitchDefault) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTryCatchStatement(node *TryCatchStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTryFinallyStatement(node *TryFinallyStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCatchClause(node *CatchClause) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclarationStatement(node *VariableDeclarationStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitClassDeclaration(node *ClassDeclaration) {
	node.VisitChildrenWith(nv.V)
}

func (n *Program) VisitWith(v Visitor) {
	v.VisitProgram(n)
}

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Statements) VisitWith(v Visitor) {
	v.VisitStatements(n)
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Statement) VisitWith(v Visitor) {
	v.VisitStatement(n)
}

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Expression) VisitWith(v Visitor) {
	v.VisitExpression(n)
}

func (n *Expression) VisitChildrenWith(v Visitor) {}

func (n *Identifier) VisitWith(v Visitor) {
	v.VisitIdentifier(n)
}

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *FunctionBody) VisitWith(v Visitor) {
	v.VisitFunctionBody(n)
}

func (n *FunctionBody) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BadStatement) VisitWith(v Visitor) {
	v.VisitBadStatement(n)
}

func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) {
	v.VisitBlockStatement(n)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

func (n *Block) VisitWith(v Visitor) {
	v.VisitBlock(n)
}

func (n *Block) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BreakStatement) VisitWith(v Visitor) {
	v.VisitBreakStatement(n)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *ContinueStatement) VisitWith(v Visitor) {
	v.VisitContinueStatement(n)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *DebuggerStatement) VisitWith(v Visitor) {
	v.VisitDebuggerStatement(n)
}

func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitWith(v Visitor) {
	v.VisitDoWhileStatement(n)
}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor) {
	v.VisitEmptyStatement(n)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) {
	v.VisitExpressionStatement(n)
}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) {
	v.VisitIfStatement(n)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabeledStatement) VisitWith(v Visitor) {
	v.VisitLabeledStatement(n)
}

func (n *LabeledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) {
	v.VisitReturnStatement(n)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) {
	v.VisitThrowStatement(n)
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *WhileStatement) VisitWith(v Visitor) {
	v.VisitWhileStatement(n)
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *WithStatement) VisitWith(v Visitor) {
	v.VisitWithStatement(n)
}

func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) {
	v.VisitForStatement(n)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Init != nil {
		n.Init.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) {
	v.VisitForInStatement(n)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitWith(v Visitor) {
	v.VisitForOfStatement(n)
}

func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *SwitchStatement) VisitWith(v Visitor) {
	v.VisitSwitchStatement(n)
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for _, c := range n.Cases {
		c.VisitWith(v)
	}
}

func (n *SwitchStatementWithDefault) VisitWith(v Visitor) {
	v.VisitSwitchStatementWithDefault(n)
}

func (n *SwitchStatementWithDefault) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for _, c := range n.PreDefaultCases {
		c.VisitWith(v)
	}
	n.DefaultCase.VisitWith(v)
	for _, c := range n.PostDefaultCases {
		c.VisitWith(v)
	}
}

func (n *SwitchCase) VisitWith(v Visitor) {
	v.VisitSwitchCase(n)
}

func (n *SwitchCase) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
}

func (n *SwitchDefault) VisitWith(v Visitor) {
	v.VisitSwitchDefault(n)
}

func (n *SwitchDefault) VisitChildrenWith(v Visitor) {
	n.Consequent.VisitWith(v)
}

func (n *TryCatchStatement) VisitWith(v Visitor) {
	v.VisitTryCatchStatement(n)
}

func (n *TryCatchStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.CatchClause.VisitWith(v)
}

func (n *TryFinallyStatement) VisitWith(v Visitor) {
	v.VisitTryFinallyStatement(n)
}

func (n *TryFinallyStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.CatchClause != nil {
		n.CatchClause.VisitWith(v)
	}
	n.Finalizer.VisitWith(v)
}

func (n *CatchClause) VisitWith(v Visitor) {
	v.VisitCatchClause(n)
}

func (n *CatchClause) VisitChildrenWith(v Visitor) {
	if n.Binding != nil {
		n.Binding.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *VariableDeclarationStatement) VisitWith(v Visitor) {
	v.VisitVariableDeclarationStatement(n)
}

func (n *VariableDeclarationStatement) VisitChildrenWith(v Visitor) {
	n.Declarators.VisitWith(v)
}

func (n *FunctionDeclaration) VisitWith(v Visitor) {
	v.VisitFunctionDeclaration(n)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Params != nil {
		n.Params.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) {
	v.VisitClassDeclaration(n)
}

func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}
