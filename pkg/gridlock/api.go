package gridlock

import (
	"fmt"
)

// DuplicateVariable is returned when a variable with the same name is
// registered twice with a CSP.
type DuplicateVariable string

func (e DuplicateVariable) Error() string {
	return fmt.Sprintf("duplicate variable %q in problem", string(e))
}

// DuplicateConstraint is returned when a constraint with the same name is
// registered twice with a CSP.
type DuplicateConstraint string

func (e DuplicateConstraint) Error() string {
	return fmt.Sprintf("duplicate constraint %q in problem", string(e))
}

// UnregisteredVariable is returned when a constraint is registered whose
// scope mentions a variable the CSP does not own.
type UnregisteredVariable string

func (e UnregisteredVariable) Error() string {
	return fmt.Sprintf("constraint scope references unregistered variable %q", string(e))
}

// Pruning records a single value removed from a variable's current domain
// during propagation. Propagators return the prunings they performed so the
// search driver can restore them, in reverse order, when a branch fails.
type Pruning struct {
	Variable *Variable
	Value    int
}

// String implements fmt.Stringer and returns a human-readable message
// representing the receiver.
func (p Pruning) String() string {
	return fmt.Sprintf("%s≠%d", p.Variable.Name(), p.Value)
}
