package parser

import (
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrSyntax is wrapped by every error ParseFile returns for invalid input.
var ErrSyntax = errors.New("syntax error")

const (
	errUnexpectedToken  = "unexpected %q"
	errMissing          = "missing %s"
	errModuleSyntax     = "%s is not allowed in a script"
	errDuplicateDefault = "more than one default clause in switch statement"
	errUnsupported      = "unsupported %s"
)

// errorf records an error at the start of n, prefixed with its line and column.
func (p *parser) errorf(n *sitter.Node, msg string, msgValues ...any) error {
	pos := n.StartPoint()
	err := fmt.Errorf("%d:%d: %w: %s", pos.Row+1, pos.Column+1, ErrSyntax, fmt.Sprintf(msg, msgValues...))
	p.errors = errors.Join(p.errors, err)
	return err
}
