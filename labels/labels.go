// Package labels implements the set of statement labels a break or continue
// may target at a given position.
package labels

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Target is an element of a label Set: a named label, or the implicit
// target of a bare break or continue.
type Target struct {
	name      string
	unlabeled bool
}

// Unlabeled is the target of a break or continue without a label.
var Unlabeled = Target{unlabeled: true}

// Named returns the target for a statement label.
func Named(name string) Target {
	return Target{name: name}
}

func (t Target) String() string {
	if t.unlabeled {
		return "<unlabeled>"
	}
	return t.name
}

// Set is an ordered collection of targets. A Set is a value: With and
// Without never modify the receiver, and the zero value is the empty set.
type Set struct {
	targets []Target
}

// Empty is the set with no targets.
var Empty = Set{}

// Of returns a set holding the given targets in order.
func Of(targets ...Target) Set {
	return Set{targets: slices.Clone(targets)}
}

// With returns a set with t appended.
func (s Set) With(t Target) Set {
	return Set{targets: append(slices.Clip(s.targets), t)}
}

// Without returns a set with every occurrence of t removed.
func (s Set) Without(t Target) Set {
	if !s.Contains(t) {
		return s
	}
	out := make([]Target, 0, len(s.targets))
	for _, x := range s.targets {
		if x != t {
			out = append(out, x)
		}
	}
	return Set{targets: out}
}

// Contains reports whether t is a member of s.
func (s Set) Contains(t Target) bool {
	return slices.Contains(s.targets, t)
}

// Len returns the number of targets, counting duplicates.
func (s Set) Len() int { return len(s.targets) }

// Targets returns a copy of the targets in insertion order.
func (s Set) Targets() []Target { return slices.Clone(s.targets) }

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s.targets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte('}')
	return b.String()
}
