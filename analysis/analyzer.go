// Package analysis decides whether control reaching a statement is known to
// end inside an iteration statement or a declaration. The classification
// backs the label-target early errors of ECMAScript statement lists.
//
// Three predicates recurse into one another over the statement grammar:
// EndsInIterationOrDeclaration, IsEmpty and IsBreak. All of them are pure
// functions of the node, the active label set and, for the first, whether
// the node is the last statement of its enclosing list. The tree is never
// modified.
package analysis

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/t14raptor/go-fast-eiod/ast"
	"github.com/t14raptor/go-fast-eiod/labels"
)

var (
	// ErrEmptyStatementList is returned when a statement list of length zero
	// reaches a list rule. The grammar never produces one.
	ErrEmptyStatementList = errors.New("empty statement list")
	// ErrUnhandledNode is returned for a node outside the supported statement grammar.
	ErrUnhandledNode = errors.New("unhandled node")
	// ErrTooComplex is returned when the nesting depth or the work budget is exceeded.
	ErrTooComplex = errors.New("input too complex")
)

const (
	DefaultMaxDepth = 4096
	DefaultMaxSteps = 1 << 22
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxDepth bounds the nesting depth of the walk. Zero or less disables the bound.
func WithMaxDepth(depth int) Option {
	return func(a *Analyzer) { a.maxDepth = depth }
}

// WithMaxSteps bounds the number of predicate evaluations of a single call.
// Zero or less disables the bound.
func WithMaxSteps(steps int) Option {
	return func(a *Analyzer) { a.maxSteps = steps }
}

// WithLogger traces every predicate evaluation at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// Analyzer evaluates the predicates under a set of limits. It holds no
// per-call state and may be shared between goroutines.
type Analyzer struct {
	maxDepth int
	maxSteps int
	log      *zap.Logger
}

// New returns an analyzer with the default limits.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		maxDepth: DefaultMaxDepth,
		maxSteps: DefaultMaxSteps,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = New()

// EndsInIterationOrDeclaration evaluates the judgment with the default analyzer.
func EndsInIterationOrDeclaration(n ast.Node, set labels.Set, isLast bool) (bool, error) {
	return defaultAnalyzer.EndsInIterationOrDeclaration(n, set, isLast)
}

// IsEmpty evaluates vacuity with the default analyzer.
func IsEmpty(n ast.Node, set labels.Set) (bool, error) {
	return defaultAnalyzer.IsEmpty(n, set)
}

// IsBreak evaluates the unconditional-break predicate with the default analyzer.
func IsBreak(n ast.Node, set labels.Set) (bool, error) {
	return defaultAnalyzer.IsBreak(n, set)
}

// Analyze evaluates a top-level statement list with the default analyzer.
func Analyze(list ast.Statements) (bool, error) {
	return defaultAnalyzer.Analyze(list)
}

// EndsInIterationOrDeclaration reports whether control reaching n is known
// to end inside an iteration statement or at a declaration. n is a statement,
// a Block, a switch clause, a CatchClause or a Statements list.
func (a *Analyzer) EndsInIterationOrDeclaration(n ast.Node, set labels.Set, isLast bool) (bool, error) {
	return a.run(func(w *walker) bool { return w.endsIn(n, set, isLast) })
}

// IsEmpty reports whether executing n is indistinguishable from skipping it.
func (a *Analyzer) IsEmpty(n ast.Node, set labels.Set) (bool, error) {
	return a.run(func(w *walker) bool { return w.isEmpty(n, set) })
}

// IsBreak reports whether n unconditionally breaks to a target in set.
func (a *Analyzer) IsBreak(n ast.Node, set labels.Set) (bool, error) {
	return a.run(func(w *walker) bool { return w.isBreak(n, set) })
}

// Analyze evaluates a program or function body: the list is judged as the
// last statement of an implicit enclosing context, with no active labels.
func (a *Analyzer) Analyze(list ast.Statements) (bool, error) {
	return a.EndsInIterationOrDeclaration(list, labels.Empty, true)
}

// abort carries a fatal error out of the recursion.
type abort struct {
	err error
}

func (a *Analyzer) run(f func(w *walker) bool) (result bool, err error) {
	w := &walker{Analyzer: a, debug: a.log.Core().Enabled(zapcore.DebugLevel)}
	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(abort)
			if !ok {
				panic(r)
			}
			result, err = false, ab.err
		}
	}()
	return f(w), nil
}

// walker is the state of one call: recursion depth, work done so far and
// the vacuity of the blocks already seen.
type walker struct {
	*Analyzer

	depth   int
	steps   int
	debug   bool
	vacuous map[blockKey]bool
}

// blockKey identifies a non-empty block under a label set. IsBreak of a
// block is its vacuity, so a leading block is asked both questions.
type blockKey struct {
	block *ast.Block
	set   string
}

func (w *walker) enter(pred string, n ast.Node, set labels.Set) {
	w.depth++
	w.steps++
	if w.maxDepth > 0 && w.depth > w.maxDepth {
		w.fail(errors.Wrapf(ErrTooComplex, "statements nested deeper than %d", w.maxDepth))
	}
	if w.maxSteps > 0 && w.steps > w.maxSteps {
		w.fail(errors.Wrapf(ErrTooComplex, "more than %d evaluation steps", w.maxSteps))
	}
	if w.debug {
		w.log.Debug(pred,
			zap.String("node", kind(n)),
			zap.Int("idx", int(idx(n))),
			zap.Stringer("labels", set),
			zap.Int("depth", w.depth))
	}
}

func (w *walker) leave() {
	w.depth--
}

func (w *walker) fail(err error) {
	panic(abort{err: err})
}

func (w *walker) unhandled(n ast.Node) {
	w.fail(errors.Wrapf(ErrUnhandledNode, "%s at %d", kind(n), idx(n)))
}

func (w *walker) emptyList(pred string) {
	w.fail(errors.Wrap(ErrEmptyStatementList, pred))
}

func kind(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		return "nil"
	case *ast.BadStatement:
		return fmt.Sprintf("unsupported statement %q", n.Kind)
	}
	return fmt.Sprintf("%T", n)
}

func idx(n ast.Node) ast.Idx {
	if n == nil {
		return 0
	}
	return n.Idx0()
}
