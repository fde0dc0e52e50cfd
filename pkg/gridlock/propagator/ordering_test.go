package propagator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/propagator"
)

func orderingCSP(t *testing.T) (*gridlock.CSP, []*gridlock.Variable) {
	t.Helper()
	csp := gridlock.NewCSP("ordering")
	vars := []*gridlock.Variable{
		gridlock.NewVariable("a", []int{1, 2, 3}),
		gridlock.NewVariable("b", []int{1, 2}),
		gridlock.NewVariable("c", []int{1, 2}),
	}
	for _, v := range vars {
		require.NoError(t, csp.AddVariable(v))
	}
	return csp, vars
}

func TestOrderMRVPicksSmallestDomain(t *testing.T) {
	csp, vars := orderingCSP(t)
	a, b := vars[0], vars[1]

	// b and c tie at size 2; registration order breaks the tie
	assert.Same(t, b, propagator.OrderMRV(csp))

	// the choice is deterministic across repeated calls
	for i := 0; i < 5; i++ {
		assert.Same(t, b, propagator.OrderMRV(csp))
	}

	// pruning a below b's size moves the pick
	a.Prune(1)
	a.Prune(2)
	assert.Same(t, a, propagator.OrderMRV(csp))
}

func TestOrderMRVSkipsAssignedVariables(t *testing.T) {
	csp, vars := orderingCSP(t)
	a, b, c := vars[0], vars[1], vars[2]

	// an assigned variable has current domain size 1 but is not a
	// candidate
	b.Assign(1)
	assert.Same(t, c, propagator.OrderMRV(csp))

	c.Assign(1)
	assert.Same(t, a, propagator.OrderMRV(csp))

	a.Assign(1)
	assert.Nil(t, propagator.OrderMRV(csp))
}

func TestOrderDeclared(t *testing.T) {
	csp, vars := orderingCSP(t)
	a, b, c := vars[0], vars[1], vars[2]

	assert.Same(t, a, propagator.OrderDeclared(csp))
	a.Assign(1)
	assert.Same(t, b, propagator.OrderDeclared(csp))
	b.Assign(1)
	assert.Same(t, c, propagator.OrderDeclared(csp))
	c.Assign(2)
	assert.Nil(t, propagator.OrderDeclared(csp))
}
