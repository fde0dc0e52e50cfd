package propagator

import (
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// BackTrack is the plain backtracking check: no propagation at all. It
// evaluates the constraints touching the newly assigned variable whose
// scope is now fully instantiated and fails if any of them rejects the
// assigned values. It never prunes, so its pruning list is always empty.
//
// With no newly assigned variable there is nothing to check.
func BackTrack(csp *gridlock.CSP, newlyAssigned *gridlock.Variable) (bool, []gridlock.Pruning) {
	if newlyAssigned == nil {
		return true, nil
	}
	for _, con := range csp.ConstraintsWithVariable(newlyAssigned) {
		if con.CountUnassigned() != 0 {
			continue
		}
		scope := con.Scope()
		values := make([]int, len(scope))
		for i, v := range scope {
			values[i] = v.Value()
		}
		if !con.Check(values) {
			return false, nil
		}
	}
	return true, nil
}
