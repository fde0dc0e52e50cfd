// Package solver drives a depth-first backtracking search over a CSP,
// delegating consistency enforcement to a configurable propagator and
// variable selection to a configurable ordering heuristic.
package solver

import (
	"context"
	"errors"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/propagator"
)

// ErrIncomplete is returned when the context is cancelled before the
// search could finish.
var ErrIncomplete = errors.New("cancelled before the search could finish")

// ErrUnsatisfiable is returned when the search tree is exhausted without
// finding a solution. Exhaustion is an expected, terminal outcome, not an
// internal failure.
var ErrUnsatisfiable = errors.New("no assignment satisfies the given constraints")

// Solution maps variable names to their assigned values.
type Solution map[string]int

// Stats counts search events across the lifetime of one Solver.
type Stats struct {
	Nodes     int
	Prunings  int
	DeadEnds  int
	Solutions int
}

// Solver searches a CSP for satisfying assignments.
type Solver interface {
	// Solve returns the first solution found. On success the problem's
	// variables are left assigned and their domains left in the pruned
	// state matching the solution; on ErrUnsatisfiable every domain is
	// restored and every variable unassigned.
	Solve(ctx context.Context) (Solution, error)
	// SolveAll enumerates every solution. The problem is fully restored
	// when it returns: all variables unassigned, all domains original.
	SolveAll(ctx context.Context) ([]Solution, error)
	// Stats reports counters accumulated over all calls so far.
	Stats() Stats
}

type solver struct {
	csp       *gridlock.CSP
	propagate propagator.Propagator
	order     propagator.Ordering
	tracer    Tracer
	stats     Stats
}

// Option configures a Solver.
type Option func(s *solver) error

// WithPropagator selects the propagation strategy invoked after each
// assignment.
func WithPropagator(p propagator.Propagator) Option {
	return func(s *solver) error {
		s.propagate = p
		return nil
	}
}

// WithKind selects a built-in propagation strategy by Kind.
func WithKind(k propagator.Kind) Option {
	return func(s *solver) error {
		s.propagate = propagator.ForKind(k)
		return nil
	}
}

// WithOrdering selects the variable-ordering heuristic.
func WithOrdering(o propagator.Ordering) Option {
	return func(s *solver) error {
		s.order = o
		return nil
	}
}

// WithTracer attaches a search tracer.
func WithTracer(t Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.propagate == nil {
			s.propagate = propagator.ArcConsistency
		}
		return nil
	},
	func(s *solver) error {
		if s.order == nil {
			s.order = propagator.OrderMRV
		}
		return nil
	},
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}

// New returns a Solver over the given problem. Defaults: generalized arc
// consistency, MRV ordering, no tracing.
func New(csp *gridlock.CSP, options ...Option) (Solver, error) {
	s := &solver{csp: csp}
	for _, option := range append(options, defaults...) {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *solver) Stats() Stats {
	return s.stats
}

func (s *solver) Solve(ctx context.Context) (Solution, error) {
	ok, pruned := s.propagate(s.csp, nil)
	s.stats.Prunings += len(pruned)
	if !ok {
		s.stats.DeadEnds++
		restore(pruned)
		return nil, ErrUnsatisfiable
	}

	var solution Solution
	done, err := s.search(ctx, 0, func() bool {
		solution = s.snapshot()
		s.tracer.Solution(solution)
		return true
	})
	if err != nil {
		restore(pruned)
		return nil, err
	}
	if !done {
		restore(pruned)
		return nil, ErrUnsatisfiable
	}
	// Domains stay pruned and variables stay assigned, matching the
	// returned solution.
	return solution, nil
}

func (s *solver) SolveAll(ctx context.Context) ([]Solution, error) {
	ok, pruned := s.propagate(s.csp, nil)
	s.stats.Prunings += len(pruned)
	if !ok {
		s.stats.DeadEnds++
		restore(pruned)
		return nil, nil
	}

	var solutions []Solution
	_, err := s.search(ctx, 0, func() bool {
		solution := s.snapshot()
		s.tracer.Solution(solution)
		solutions = append(solutions, solution)
		return false
	})
	restore(pruned)
	if err != nil {
		return nil, err
	}
	return solutions, nil
}

// search explores assignments below the current state. emit is invoked
// with all variables assigned; it returns true to stop the search in
// place (leaving assignments and prunings intact along the path) or false
// to keep enumerating. The boolean result reports whether emit stopped
// the search.
func (s *solver) search(ctx context.Context, depth int, emit func() bool) (bool, error) {
	if ctx.Err() != nil {
		return false, ErrIncomplete
	}

	v := s.order(s.csp)
	if v == nil {
		s.stats.Solutions++
		return emit(), nil
	}

	s.stats.Nodes++
	for _, value := range v.CurrentDomain() {
		v.Assign(value)
		s.tracer.Assign(depth, v, value)

		ok, pruned := s.propagate(s.csp, v)
		s.stats.Prunings += len(pruned)
		if ok {
			done, err := s.search(ctx, depth+1, emit)
			if err != nil {
				restore(pruned)
				v.Unassign()
				return false, err
			}
			if done {
				return true, nil
			}
		} else {
			s.stats.DeadEnds++
			s.tracer.DeadEnd(depth, v, pruned)
		}

		restore(pruned)
		v.Unassign()
	}
	return false, nil
}

// snapshot captures the current full assignment.
func (s *solver) snapshot() Solution {
	solution := make(Solution, len(s.csp.Variables()))
	for _, v := range s.csp.Variables() {
		solution[v.Name()] = v.Value()
	}
	return solution
}

// restore undoes prunings in reverse order of their recording.
func restore(pruned []gridlock.Pruning) {
	for i := len(pruned) - 1; i >= 0; i-- {
		pruned[i].Variable.Restore(pruned[i].Value)
	}
}
