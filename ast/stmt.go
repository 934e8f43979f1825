package ast

type (
	Statements []Statement

	Statement struct {
		Stmt `optional:"true"`
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		VisitableNode
		_stmt()
	}

	// BadStatement stands in for a statement kind the grammar subset does not
	// model. Kind carries the producer's name for it.
	BadStatement struct {
		From Idx
		To   Idx
		Kind string
	}

	BlockStatement struct {
		Block *Block
	}

	Block struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx
	}

	BreakStatement struct {
		Idx   Idx
		Label *Identifier `optional:"true"`
	}

	ContinueStatement struct {
		Idx   Idx
		Label *Identifier `optional:"true"`
	}

	DebuggerStatement struct {
		Debugger Idx
	}

	DoWhileStatement struct {
		Do   Idx
		Body *Statement
		Test *Expression
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement `optional:"true"`
	}

	LabeledStatement struct {
		Label *Identifier
		Colon Idx
		Body  *Statement
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression `optional:"true"`
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}

	WithStatement struct {
		With   Idx
		Object *Expression
		Body   *Statement
	}

	ForStatement struct {
		For    Idx
		Init   *Expression `optional:"true"`
		Test   *Expression `optional:"true"`
		Update *Expression `optional:"true"`
		Body   *Statement
	}

	ForInStatement struct {
		For   Idx
		Left  *Expression
		Right *Expression
		Body  *Statement
	}

	ForOfStatement struct {
		For   Idx
		Await bool
		Left  *Expression
		Right *Expression
		Body  *Statement
	}

	SwitchStatement struct {
		Switch       Idx
		Discriminant *Expression
		Cases        []*SwitchCase
		RightBrace   Idx
	}

	// SwitchStatementWithDefault is a switch with exactly one default clause,
	// split into the cases before and after it.
	SwitchStatementWithDefault struct {
		Switch           Idx
		Discriminant     *Expression
		PreDefaultCases  []*SwitchCase
		DefaultCase      *SwitchDefault
		PostDefaultCases []*SwitchCase
		RightBrace       Idx
	}

	SwitchCase struct {
		Case       Idx
		Test       *Expression
		Consequent Statements
	}

	SwitchDefault struct {
		Default    Idx
		Consequent Statements
	}

	TryCatchStatement struct {
		Try         Idx
		Body        *Block
		CatchClause *CatchClause
	}

	TryFinallyStatement struct {
		Try         Idx
		Body        *Block
		CatchClause *CatchClause `optional:"true"`
		Finalizer   *Block
	}

	CatchClause struct {
		Catch   Idx
		Binding *Expression `optional:"true"`
		Body    *Block
	}
)

// ClauseCount returns the number of clauses of the switch.
func (n *SwitchStatement) ClauseCount() int { return len(n.Cases) }

// ClauseAt returns the i-th clause in source order. A missing clause is
// returned as a nil Node.
func (n *SwitchStatement) ClauseAt(i int) Node { return clause(n.Cases[i]) }

// ClauseCount returns the number of clauses of the switch, the default clause included.
func (n *SwitchStatementWithDefault) ClauseCount() int {
	return len(n.PreDefaultCases) + 1 + len(n.PostDefaultCases)
}

// ClauseAt returns the i-th clause in source order without materializing the
// concatenated clause list.
func (n *SwitchStatementWithDefault) ClauseAt(i int) Node {
	pre := len(n.PreDefaultCases)
	switch {
	case i < pre:
		return clause(n.PreDefaultCases[i])
	case i == pre:
		if n.DefaultCase == nil {
			return nil
		}
		return n.DefaultCase
	default:
		return clause(n.PostDefaultCases[i-pre-1])
	}
}

func clause(c *SwitchCase) Node {
	if c == nil {
		return nil
	}
	return c
}

func (*BadStatement) _stmt()                 {}
func (*BlockStatement) _stmt()               {}
func (*BreakStatement) _stmt()               {}
func (*ClassDeclaration) _stmt()             {}
func (*ContinueStatement) _stmt()            {}
func (*DebuggerStatement) _stmt()            {}
func (*DoWhileStatement) _stmt()             {}
func (*EmptyStatement) _stmt()               {}
func (*ExpressionStatement) _stmt()          {}
func (*ForInStatement) _stmt()               {}
func (*ForOfStatement) _stmt()               {}
func (*ForStatement) _stmt()                 {}
func (*FunctionDeclaration) _stmt()          {}
func (*IfStatement) _stmt()                  {}
func (*LabeledStatement) _stmt()             {}
func (*ReturnStatement) _stmt()              {}
func (*SwitchStatement) _stmt()              {}
func (*SwitchStatementWithDefault) _stmt()   {}
func (*ThrowStatement) _stmt()               {}
func (*TryCatchStatement) _stmt()            {}
func (*TryFinallyStatement) _stmt()          {}
func (*VariableDeclarationStatement) _stmt() {}
func (*WhileStatement) _stmt()               {}
func (*WithStatement) _stmt()                {}
