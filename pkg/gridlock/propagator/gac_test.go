package propagator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlock-framework/gridlock/pkg/futoshiki"
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/propagator"
)

// Initial enforcement on a board with cell (0,0) pre-set to 2 and cell
// (0,1) forced above it must prune everything at or below 2 from (0,1)
// before any search assignment is made.
func TestArcConsistencyInitialEnforcement(t *testing.T) {
	const grid = `
2 < 0 . 0
0 . 0 . 0
0 . 0 . 0
`
	for _, model := range []futoshiki.Model{futoshiki.Binary, futoshiki.AllDiff} {
		t.Run(model.String(), func(t *testing.T) {
			csp, cells := board(t, grid, model)

			ok, pruned := propagator.ArcConsistency(csp, nil)
			require.True(t, ok)
			prunedSet(t, pruned)

			assert.Equal(t, []int{3}, cells[0][1].CurrentDomain())
			// the pre-set value propagates through row and column
			assert.NotContains(t, cells[0][2].CurrentDomain(), 2)
			assert.NotContains(t, cells[1][0].CurrentDomain(), 2)
			assert.NotContains(t, cells[2][0].CurrentDomain(), 2)
		})
	}
}

func TestArcConsistencyConflictingConstraintsWipeOutSharedVariable(t *testing.T) {
	// ab forces b=2 while bc forces b=1; revising ab prunes b=1, then
	// revising bc prunes b=2 and finds the wiped-out domain
	csp := gridlock.NewCSP("chain")
	a := gridlock.NewVariable("a", []int{1})
	b := gridlock.NewVariable("b", []int{1, 2})
	c := gridlock.NewVariable("c", []int{2})
	for _, v := range []*gridlock.Variable{a, b, c} {
		require.NoError(t, csp.AddVariable(v))
	}
	require.NoError(t, csp.AddConstraint(gridlock.NewConstraint("ab", []*gridlock.Variable{a, b}, [][]int{{1, 2}})))
	require.NoError(t, csp.AddConstraint(gridlock.NewConstraint("bc", []*gridlock.Variable{b, c}, [][]int{{1, 2}})))

	ok, pruned := propagator.ArcConsistency(csp, nil)
	assert.False(t, ok)
	// the failure still reports everything pruned across the whole call
	assert.Equal(t, []gridlock.Pruning{{Variable: b, Value: 1}, {Variable: b, Value: 2}}, pruned)
}

func TestArcConsistencySeedsFromNewVariableOnly(t *testing.T) {
	// two independent pairs; enforcing after an assignment in one pair
	// must not revise the other
	csp := gridlock.NewCSP("two-pairs")
	a := gridlock.NewVariable("a", []int{1, 2})
	b := gridlock.NewVariable("b", []int{1, 2})
	c := gridlock.NewVariable("c", []int{1, 2, 3})
	d := gridlock.NewVariable("d", []int{1, 2, 3})
	for _, v := range []*gridlock.Variable{a, b, c, d} {
		require.NoError(t, csp.AddVariable(v))
	}
	require.NoError(t, csp.AddConstraint(gridlock.NewConstraint("ab", []*gridlock.Variable{a, b}, [][]int{{1, 2}, {2, 1}})))
	// cd admits only c<d pairs, so full enforcement would prune c=3, d=1
	require.NoError(t, csp.AddConstraint(gridlock.NewConstraint("cd", []*gridlock.Variable{c, d}, [][]int{{1, 2}, {1, 3}, {2, 3}})))

	a.Assign(1)
	ok, pruned := propagator.ArcConsistency(csp, a)
	assert.True(t, ok)
	assert.Equal(t, []gridlock.Pruning{{Variable: b, Value: 1}}, pruned)
	assert.Equal(t, 3, c.CurrentDomainSize())
	assert.Equal(t, 3, d.CurrentDomainSize())
}

func TestArcConsistencySoundness(t *testing.T) {
	// no pruned value may have a support witness at the time of the
	// check: verify against a fresh copy of the same board
	const grid = `
0 > 0 . 2
0 . 0 . 0
0 . 0 < 0
`
	csp, _ := board(t, grid, futoshiki.Binary)
	ok, pruned := propagator.ArcConsistency(csp, nil)
	require.True(t, ok)

	// every pruned value, restored in isolation on the final domains,
	// must lack support in at least one constraint
	for i := len(pruned) - 1; i >= 0; i-- {
		p := pruned[i]
		p.Variable.Restore(p.Value)
		supported := true
		for _, con := range csp.ConstraintsWithVariable(p.Variable) {
			if !con.HasSupport(p.Variable, p.Value) {
				supported = false
				break
			}
		}
		assert.False(t, supported, "pruned value (%s,%d) still has support everywhere", p.Variable.Name(), p.Value)
		p.Variable.Prune(p.Value)
	}
}
