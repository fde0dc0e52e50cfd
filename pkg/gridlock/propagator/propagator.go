// Package propagator holds the consistency-propagation strategies invoked
// by the backtracking search driver after each assignment, and the
// variable-ordering heuristics that pick the next variable to branch on.
package propagator

import (
	"fmt"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// Propagator is the contract between the search driver and a propagation
// strategy. newlyAssigned is the most recently assigned variable, or nil
// when the driver asks for initial consistency enforcement before any
// assignment has been made.
//
// The returned prunings are exactly the values the propagator removed
// during this call, in order, with no pair appearing twice. On failure
// (a dead end: some domain emptied, or a fully assigned constraint
// violated) ok is false and the prunings still include everything removed
// before failure was detected; the driver restores them.
type Propagator func(csp *gridlock.CSP, newlyAssigned *gridlock.Variable) (ok bool, pruned []gridlock.Pruning)

// Ordering picks the next variable for the search driver to branch on,
// returning nil when every variable is assigned.
type Ordering func(csp *gridlock.CSP) *gridlock.Variable

// Kind enumerates the built-in propagation strategies.
type Kind int

const (
	// BT checks fully instantiated constraints only and never prunes.
	BT Kind = iota
	// FC forward-checks constraints with exactly one unassigned variable.
	FC
	// GAC enforces generalized arc consistency to a fixed point.
	GAC
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case BT:
		return "bt"
	case FC:
		return "fc"
	case GAC:
		return "gac"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromString parses a Kind from its string form.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "bt":
		return BT, nil
	case "fc":
		return FC, nil
	case "gac":
		return GAC, nil
	}
	return BT, fmt.Errorf("unknown propagator %q (expected bt, fc or gac)", s)
}

// ForKind returns the Propagator implementing k.
func ForKind(k Kind) Propagator {
	switch k {
	case BT:
		return BackTrack
	case FC:
		return ForwardCheck
	case GAC:
		return ArcConsistency
	}
	panic(fmt.Sprintf("no propagator for %s", k))
}
