package propagator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/propagator"
)

func TestForwardCheckPrunesUnsupportedValues(t *testing.T) {
	csp, a, b := pair(t, []int{1, 2}, []int{1, 2}, notEqual)
	a.Assign(1)

	ok, pruned := propagator.ForwardCheck(csp, a)
	assert.True(t, ok)
	assert.Equal(t, []gridlock.Pruning{{Variable: b, Value: 1}}, pruned)
	assert.Equal(t, []int{2}, b.CurrentDomain())
}

func TestForwardCheckSkipsConstraintsWithTwoUnassigned(t *testing.T) {
	csp, a, b := pair(t, []int{1, 2}, []int{1, 2}, notEqual)

	ok, pruned := propagator.ForwardCheck(csp, nil)
	assert.True(t, ok)
	assert.Empty(t, pruned)
	assert.Equal(t, 2, a.CurrentDomainSize())
	assert.Equal(t, 2, b.CurrentDomainSize())
}

func TestForwardCheckInitialUnaryEnforcement(t *testing.T) {
	// a unary constraint admitting only value 2 gets forward-checked by
	// the pre-search call
	csp := gridlock.NewCSP("unary")
	a := gridlock.NewVariable("a", []int{1, 2, 3})
	require.NoError(t, csp.AddVariable(a))
	require.NoError(t, csp.AddConstraint(gridlock.NewConstraint("only2", []*gridlock.Variable{a}, [][]int{{2}})))

	ok, pruned := propagator.ForwardCheck(csp, nil)
	assert.True(t, ok)
	assert.Equal(t, []gridlock.Pruning{{Variable: a, Value: 1}, {Variable: a, Value: 3}}, pruned)
	assert.Equal(t, []int{2}, a.CurrentDomain())
}

func TestForwardCheckWipeoutFailsWithPrunings(t *testing.T) {
	// a and b must differ but share the single value 1
	csp, a, b := pair(t, []int{1}, []int{1}, notEqual)
	a.Assign(1)

	ok, pruned := propagator.ForwardCheck(csp, a)
	assert.False(t, ok)
	// everything pruned before the wipeout was detected is reported so
	// the driver can restore it
	assert.Equal(t, []gridlock.Pruning{{Variable: b, Value: 1}}, pruned)
	assert.Equal(t, 0, b.CurrentDomainSize())
}

func TestForwardCheckSeedsFromNewVariableOnly(t *testing.T) {
	// two independent pairs; forward-checking after assigning in one pair
	// must not touch the other
	csp := gridlock.NewCSP("two-pairs")
	a := gridlock.NewVariable("a", []int{1, 2})
	b := gridlock.NewVariable("b", []int{1, 2})
	c := gridlock.NewVariable("c", []int{1, 2})
	d := gridlock.NewVariable("d", []int{1, 2})
	for _, v := range []*gridlock.Variable{a, b, c, d} {
		require.NoError(t, csp.AddVariable(v))
	}
	ne := func(name string, x, y *gridlock.Variable) *gridlock.Constraint {
		return gridlock.NewConstraint(name, []*gridlock.Variable{x, y}, [][]int{{1, 2}, {2, 1}})
	}
	require.NoError(t, csp.AddConstraint(ne("ab", a, b)))
	require.NoError(t, csp.AddConstraint(ne("cd", c, d)))
	c.Assign(1)

	a.Assign(1)
	ok, pruned := propagator.ForwardCheck(csp, a)
	assert.True(t, ok)
	assert.Equal(t, []gridlock.Pruning{{Variable: b, Value: 1}}, pruned)
	// d untouched even though cd has exactly one unassigned variable
	assert.Equal(t, 2, d.CurrentDomainSize())
}
