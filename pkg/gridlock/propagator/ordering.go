package propagator

import (
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// OrderMRV is the minimum-remaining-values heuristic: it returns the
// unassigned variable with the smallest current domain, breaking ties by
// registration order, or nil when every variable is assigned.
func OrderMRV(csp *gridlock.CSP) *gridlock.Variable {
	var best *gridlock.Variable
	for _, v := range csp.UnassignedVariables() {
		if best == nil || v.CurrentDomainSize() < best.CurrentDomainSize() {
			best = v
		}
	}
	return best
}

// OrderDeclared returns the first unassigned variable in registration
// order, or nil when every variable is assigned.
func OrderDeclared(csp *gridlock.CSP) *gridlock.Variable {
	for _, v := range csp.UnassignedVariables() {
		return v
	}
	return nil
}
