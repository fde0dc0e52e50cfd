package propagator

import (
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// ForwardCheck propagates through constraints with exactly one unassigned
// scope variable: every current-domain value of that variable lacking
// support is pruned. Constraints with two or more unassigned variables are
// never inspected.
//
// With a newly assigned variable only the constraints touching it are
// considered; with none, all constraints are, which forward-checks any
// unary (or pre-assigned down to one free variable) constraints before the
// search starts.
//
// If pruning empties the variable's domain the call fails immediately,
// returning everything pruned so far so the driver can restore it.
func ForwardCheck(csp *gridlock.CSP, newlyAssigned *gridlock.Variable) (bool, []gridlock.Pruning) {
	var pruned []gridlock.Pruning

	var constraints []*gridlock.Constraint
	if newlyAssigned == nil {
		constraints = csp.Constraints()
	} else {
		constraints = csp.ConstraintsWithVariable(newlyAssigned)
	}

	for _, con := range constraints {
		if con.CountUnassigned() != 1 {
			continue
		}
		free := con.UnassignedVariables()[0]
		for _, value := range free.CurrentDomain() {
			if con.HasSupport(free, value) {
				continue
			}
			free.Prune(value)
			pruned = append(pruned, gridlock.Pruning{Variable: free, Value: value})
		}
		if free.CurrentDomainSize() == 0 {
			return false, pruned
		}
	}
	return true, pruned
}
