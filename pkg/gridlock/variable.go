package gridlock

import (
	"fmt"
)

// Variable is a finite-domain variable: a name unique within its CSP, a
// Domain, and an optional assigned value.
//
// Assignment never shrinks the domain; domain reduction is the propagators'
// job, through Prune and Restore. Current-domain queries do reflect an
// assignment, though: an assigned variable's current domain is the
// singleton holding its assigned value, which is what support checks need.
type Variable struct {
	name     string
	dom      *Domain
	assigned bool
	value    int
}

// NewVariable returns a Variable with the given name and initial domain
// values. Values must be distinct.
func NewVariable(name string, values []int) *Variable {
	return &Variable{
		name: name,
		dom:  NewDomain(values),
	}
}

// Name returns the variable's identifier.
func (v *Variable) Name() string {
	return v.name
}

// String implements fmt.Stringer.
func (v *Variable) String() string {
	if v.assigned {
		return fmt.Sprintf("%s=%d", v.name, v.value)
	}
	return v.name
}

// Assigned reports whether the variable currently holds an assigned value.
func (v *Variable) Assigned() bool {
	return v.assigned
}

// Value returns the assigned value. It panics if the variable is
// unassigned.
func (v *Variable) Value() int {
	if !v.assigned {
		panic(fmt.Sprintf("value of unassigned variable %q", v.name))
	}
	return v.value
}

// Assign gives the variable a value. The value must be a member of the
// current domain; assigning outside it panics, since the search driver only
// ever branches on current-domain values.
func (v *Variable) Assign(value int) {
	if v.assigned {
		panic(fmt.Sprintf("assign to already assigned variable %q", v.name))
	}
	if !v.dom.Contains(value) {
		panic(fmt.Sprintf("assign of value %d not in current domain of %q", value, v.name))
	}
	v.assigned = true
	v.value = value
}

// Unassign clears the assigned value.
func (v *Variable) Unassign() {
	v.assigned = false
	v.value = 0
}

// CurrentDomain returns the values the variable may still take: the
// assigned value alone if assigned, otherwise the current domain in
// declaration order.
func (v *Variable) CurrentDomain() []int {
	if v.assigned {
		return []int{v.value}
	}
	return v.dom.Values()
}

// CurrentDomainSize returns len(CurrentDomain()) without allocating.
func (v *Variable) CurrentDomainSize() int {
	if v.assigned {
		return 1
	}
	return v.dom.Size()
}

// InCurrentDomain reports whether the variable may still take value.
func (v *Variable) InCurrentDomain(value int) bool {
	if v.assigned {
		return v.value == value
	}
	return v.dom.Contains(value)
}

// OriginalDomain returns the domain the variable was constructed with.
func (v *Variable) OriginalDomain() []int {
	return v.dom.OriginalValues()
}

// InOriginalDomain reports whether value was in the constructed domain.
func (v *Variable) InOriginalDomain(value int) bool {
	return v.dom.InOriginal(value)
}

// Prune removes value from the current domain. See Domain.Prune.
func (v *Variable) Prune(value int) {
	v.dom.Prune(value)
}

// Restore reinserts a previously pruned value. See Domain.Restore.
func (v *Variable) Restore(value int) {
	v.dom.Restore(value)
}
