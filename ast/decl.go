package ast

type (
	FunctionDeclaration struct {
		Function Idx
		Name     *Identifier
		Params   *Expression
		Body     *FunctionBody

		Async, Generator bool
	}

	ClassDeclaration struct {
		Class      Idx
		Name       *Identifier
		SuperClass *Expression `optional:"true"`
		// Body is the class body, braces included.
		Body       *Expression
		RightBrace Idx
	}

	VariableDeclarationStatement struct {
		Idx         Idx
		Kind        DeclarationKind
		Declarators *Expression
	}

	DeclarationKind int
)

const (
	Var DeclarationKind = iota
	Let
	Const
)

func (k DeclarationKind) String() string {
	switch k {
	case Let:
		return "let"
	case Const:
		return "const"
	default:
		return "var"
	}
}
