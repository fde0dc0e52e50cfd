// Package sat solves a CSP by translation to boolean satisfiability,
// independently of the propagation engine. It backs the CLI's sat engine
// and serves as a differential oracle for the search driver in tests.
package sat

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/solver"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

// Solver solves a CSP through a SAT encoding.
type Solver interface {
	// Solve returns one satisfying assignment, or
	// solver.ErrUnsatisfiable when none exists.
	Solve(ctx context.Context) (solver.Solution, error)
	// SolveAll enumerates every satisfying assignment by adding a
	// blocking clause per model found. The blocking clauses persist, so
	// a Solver should not be reused after SolveAll.
	SolveAll(ctx context.Context) ([]solver.Solution, error)
}

type satSolver struct {
	g      inter.S
	litMap *litMapping
}

// NewSolver returns a SAT-backed Solver over the given problem. The
// encoding is built once, against the original domains; assignments and
// prunings present on the CSP at Solve time are honored through
// assumptions.
func NewSolver(csp *gridlock.CSP) Solver {
	s := &satSolver{
		g:      gini.New(),
		litMap: newLitMapping(csp),
	}
	s.litMap.AddCircuit(s.g)
	return s
}

func (s *satSolver) Solve(_ context.Context) (solver.Solution, error) {
	s.litMap.AssumeFormula(s.g)
	switch s.g.Solve() {
	case satisfiable:
		return s.litMap.Solution(s.g), nil
	case unsatisfiable:
		return nil, solver.ErrUnsatisfiable
	}
	return nil, solver.ErrIncomplete
}

func (s *satSolver) SolveAll(ctx context.Context) ([]solver.Solution, error) {
	solutions := []solver.Solution{}
	for {
		if ctx.Err() != nil {
			return nil, solver.ErrIncomplete
		}
		s.litMap.AssumeFormula(s.g)
		outcome := s.g.Solve()
		if outcome == unsatisfiable {
			return solutions, nil
		}
		if outcome != satisfiable {
			return nil, solver.ErrIncomplete
		}
		solution := s.litMap.Solution(s.g)
		solutions = append(solutions, solution)
		s.litMap.Block(s.g, solution)
	}
}
