package gridlock

import (
	"fmt"
	"strconv"
	"strings"
)

// Constraint restricts the values an ordered scope of variables may take
// simultaneously. It is purely extensional: a set of satisfying tuples,
// aligned to scope order, fixed at construction. Propagators need no
// per-constraint-kind dispatch; every kind of constraint answers the same
// two questions, Check and HasSupport.
//
// The tuple table is built against the original domains and never mutates.
// Consistency under domain shrinkage comes from filtering at query time:
// HasSupport only accepts tuples whose every position is still in the
// corresponding variable's current domain.
type Constraint struct {
	name   string
	scope  []*Variable
	tuples [][]int
	set    map[string]struct{}

	// support[i][v] indexes the tuples whose i-th position holds v, so
	// HasSupport scans only candidate tuples instead of the whole table.
	support []map[int][]int
}

// NewConstraint returns a Constraint over the given scope, satisfied by
// exactly the given tuples. Every tuple must have arity len(scope).
func NewConstraint(name string, scope []*Variable, satisfying [][]int) *Constraint {
	c := &Constraint{
		name:    name,
		scope:   make([]*Variable, len(scope)),
		tuples:  make([][]int, 0, len(satisfying)),
		set:     make(map[string]struct{}, len(satisfying)),
		support: make([]map[int][]int, len(scope)),
	}
	copy(c.scope, scope)
	for i := range c.support {
		c.support[i] = make(map[int][]int)
	}
	for _, t := range satisfying {
		if len(t) != len(scope) {
			panic(fmt.Sprintf("satisfying tuple %v has arity %d, constraint %q has scope %d", t, len(t), name, len(scope)))
		}
		key := tupleKey(t)
		if _, ok := c.set[key]; ok {
			continue
		}
		tuple := make([]int, len(t))
		copy(tuple, t)
		ti := len(c.tuples)
		c.tuples = append(c.tuples, tuple)
		c.set[key] = struct{}{}
		for i, v := range tuple {
			c.support[i][v] = append(c.support[i][v], ti)
		}
	}
	return c
}

// Name returns the constraint's identifier.
func (c *Constraint) Name() string {
	return c.name
}

// String implements fmt.Stringer and names the constraint together with
// its scope.
func (c *Constraint) String() string {
	names := make([]string, len(c.scope))
	for i, v := range c.scope {
		names[i] = v.Name()
	}
	return fmt.Sprintf("%s(%s)", c.name, strings.Join(names, ","))
}

// Scope returns the constraint's variables in declaration order.
func (c *Constraint) Scope() []*Variable {
	out := make([]*Variable, len(c.scope))
	copy(out, c.scope)
	return out
}

// Arity returns the number of variables in scope.
func (c *Constraint) Arity() int {
	return len(c.scope)
}

// Check reports whether the given value tuple, aligned to scope order, is
// in the satisfying set. It is meant for fully assigned scopes and panics
// on arity mismatch.
func (c *Constraint) Check(tuple []int) bool {
	if len(tuple) != len(c.scope) {
		panic(fmt.Sprintf("check of tuple %v with arity %d against constraint %q with scope %d", tuple, len(tuple), c.name, len(c.scope)))
	}
	_, ok := c.set[tupleKey(tuple)]
	return ok
}

// HasSupport reports whether some satisfying tuple assigns value to v and
// draws every other scope position from that variable's current domain
// (or its fixed assignment). It panics if v is not in scope, or if value
// was never in v's original domain: those calls indicate a propagator bug.
func (c *Constraint) HasSupport(v *Variable, value int) bool {
	pos := -1
	for i, sv := range c.scope {
		if sv == v {
			pos = i
			break
		}
	}
	if pos < 0 {
		panic(fmt.Sprintf("support query for variable %q outside scope of constraint %q", v.Name(), c.name))
	}
	if !v.InOriginalDomain(value) {
		panic(fmt.Sprintf("support query for value %d outside original domain of %q", value, v.Name()))
	}
	for _, ti := range c.support[pos][value] {
		if c.tupleViable(c.tuples[ti], pos) {
			return true
		}
	}
	return false
}

// tupleViable reports whether every position of the tuple except skip is
// still in the corresponding variable's current domain.
func (c *Constraint) tupleViable(tuple []int, skip int) bool {
	for i, v := range tuple {
		if i == skip {
			continue
		}
		if !c.scope[i].InCurrentDomain(v) {
			return false
		}
	}
	return true
}

// UnassignedVariables returns the scope variables without an assigned
// value, in scope order.
func (c *Constraint) UnassignedVariables() []*Variable {
	var out []*Variable
	for _, v := range c.scope {
		if !v.Assigned() {
			out = append(out, v)
		}
	}
	return out
}

// CountUnassigned returns len(UnassignedVariables()) without allocating.
func (c *Constraint) CountUnassigned() int {
	n := 0
	for _, v := range c.scope {
		if !v.Assigned() {
			n++
		}
	}
	return n
}

func tupleKey(tuple []int) string {
	var b strings.Builder
	for i, v := range tuple {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
