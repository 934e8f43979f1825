package ast

// FunctionBody is the statement list of a function declaration. It is
// analyzed on its own, as the top of an implicit enclosing context.
type FunctionBody struct {
	LeftBrace  Idx
	List       Statements
	RightBrace Idx
}
