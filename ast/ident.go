package ast

type (
	// Identifier is a binding or label name.
	Identifier struct {
		Idx  Idx
		Name string
	}

	// Expression is an opaque expression. The statement grammar never looks
	// inside one, so only its span and source text are kept.
	Expression struct {
		From   Idx
		To     Idx
		Source string
	}
)
