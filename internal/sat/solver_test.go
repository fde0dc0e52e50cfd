package sat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlock-framework/gridlock/internal/sat"
	"github.com/gridlock-framework/gridlock/pkg/futoshiki"
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/solver"
)

func board(t *testing.T, text string, model futoshiki.Model) (*gridlock.CSP, [][]*gridlock.Variable) {
	t.Helper()
	puzzle, err := futoshiki.Parse(strings.NewReader(text))
	require.NoError(t, err)
	csp, cells, err := futoshiki.Build(puzzle, model)
	require.NoError(t, err)
	return csp, cells
}

const emptyTwoByTwo = `
0 . 0
0 . 0
`

func TestSATSolveAllMatchesSearchEngine(t *testing.T) {
	const grid = `
0 > 0 . 2
0 . 0 . 0
0 . 0 < 0
`
	for _, model := range []futoshiki.Model{futoshiki.Binary, futoshiki.AllDiff} {
		t.Run(model.String(), func(t *testing.T) {
			searchCSP, _ := board(t, grid, model)
			searchSolver, err := solver.New(searchCSP)
			require.NoError(t, err)
			expected, err := searchSolver.SolveAll(context.Background())
			require.NoError(t, err)

			satCSP, _ := board(t, grid, model)
			actual, err := sat.NewSolver(satCSP).SolveAll(context.Background())
			require.NoError(t, err)

			assert.ElementsMatch(t, expected, actual)
		})
	}
}

func TestSATSolveSatisfiesAllConstraints(t *testing.T) {
	csp, _ := board(t, emptyTwoByTwo, futoshiki.Binary)
	solution, err := sat.NewSolver(csp).Solve(context.Background())
	require.NoError(t, err)

	for _, con := range csp.Constraints() {
		scope := con.Scope()
		values := make([]int, len(scope))
		for i, v := range scope {
			values[i] = solution[v.Name()]
		}
		assert.True(t, con.Check(values), "constraint %s violated by %v", con, values)
	}
}

func TestSATUnsatisfiable(t *testing.T) {
	const conflicting = `
1 . 1
0 . 0
`
	csp, _ := board(t, conflicting, futoshiki.Binary)
	_, err := sat.NewSolver(csp).Solve(context.Background())
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
}

func TestSATHonorsPrunedDomains(t *testing.T) {
	csp, cells := board(t, emptyTwoByTwo, futoshiki.Binary)
	cells[0][0].Prune(1)

	solutions, err := sat.NewSolver(csp).SolveAll(context.Background())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, 2, solutions[0]["V00"])
}

func TestSATHonorsAssignments(t *testing.T) {
	csp, cells := board(t, emptyTwoByTwo, futoshiki.Binary)
	cells[0][0].Assign(2)

	solution, err := sat.NewSolver(csp).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, solution["V00"])
	assert.Equal(t, 1, solution["V01"])
}
