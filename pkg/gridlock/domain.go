package gridlock

import (
	"fmt"
)

// Domain holds the candidate values of one variable. It keeps two views:
// the original domain fixed at construction, and the current domain, a
// shrinking subset mutated exclusively through Prune and Restore.
//
// Prune and Restore are exactly invertible: applying the restores for any
// sequence of prunes, in reverse order, returns the current domain to its
// prior state. Violations of that contract (pruning an absent value,
// restoring a present one) indicate a bug in a propagator or in the search
// driver and panic rather than corrupt the undo log.
type Domain struct {
	values  []int
	index   map[int]int
	present []bool
	size    int
}

// NewDomain returns a Domain over the given values. The values must be
// distinct; their order is preserved for iteration.
func NewDomain(values []int) *Domain {
	d := &Domain{
		values:  make([]int, len(values)),
		index:   make(map[int]int, len(values)),
		present: make([]bool, len(values)),
		size:    len(values),
	}
	copy(d.values, values)
	for i, v := range values {
		if _, ok := d.index[v]; ok {
			panic(fmt.Sprintf("duplicate value %d in domain", v))
		}
		d.index[v] = i
		d.present[i] = true
	}
	return d
}

// Size returns the number of values in the current domain.
func (d *Domain) Size() int {
	return d.size
}

// Contains reports whether v is in the current domain.
func (d *Domain) Contains(v int) bool {
	i, ok := d.index[v]
	return ok && d.present[i]
}

// InOriginal reports whether v was in the domain at construction.
func (d *Domain) InOriginal(v int) bool {
	_, ok := d.index[v]
	return ok
}

// Values returns the current domain in declaration order.
func (d *Domain) Values() []int {
	out := make([]int, 0, d.size)
	for i, v := range d.values {
		if d.present[i] {
			out = append(out, v)
		}
	}
	return out
}

// OriginalValues returns the original domain in declaration order.
func (d *Domain) OriginalValues() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)
	return out
}

// Prune removes v from the current domain. It panics if v is not currently
// present: a double prune would make the undo log restore it twice.
func (d *Domain) Prune(v int) {
	i, ok := d.index[v]
	if !ok || !d.present[i] {
		panic(fmt.Sprintf("prune of value %d not in current domain", v))
	}
	d.present[i] = false
	d.size--
}

// Restore reinserts a previously pruned value. It panics if v is already
// present or was never part of the original domain.
func (d *Domain) Restore(v int) {
	i, ok := d.index[v]
	if !ok {
		panic(fmt.Sprintf("restore of value %d not in original domain", v))
	}
	if d.present[i] {
		panic(fmt.Sprintf("restore of value %d already in current domain", v))
	}
	d.present[i] = true
	d.size++
}
