package sat

import (
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

type litKey struct {
	variable *gridlock.Variable
	value    int
}

// litMapping translates between a CSP and the boolean formula handed to
// the underlying SAT solver: one literal per (variable, original-domain
// value) pair, an exactly-one cardinality circuit per variable, and one
// clause per forbidden value combination of each constraint. The circuit
// is taught to the solver once; the per-constraint literals are assumed on
// every Solve call.
type litMapping struct {
	csp     *gridlock.CSP
	lits    map[litKey]z.Lit
	inorder []litKey
	c       *logic.C
	assume  []z.Lit
}

func newLitMapping(csp *gridlock.CSP) *litMapping {
	d := &litMapping{
		csp:  csp,
		lits: make(map[litKey]z.Lit),
		c:    logic.NewC(),
	}

	// one literal per candidate value, one exactly-one circuit per variable
	for _, v := range csp.Variables() {
		values := v.OriginalDomain()
		ms := make([]z.Lit, len(values))
		for i, value := range values {
			ms[i] = d.litOf(v, value)
		}
		cs := d.c.CardSort(ms)
		d.assume = append(d.assume, cs.Leq(1), cs.Geq(1))
	}

	// one clause per forbidden combination of each constraint's scope
	for _, con := range csp.Constraints() {
		d.forbidUnsatisfying(con)
	}

	return d
}

func (d *litMapping) litOf(v *gridlock.Variable, value int) z.Lit {
	key := litKey{variable: v, value: value}
	m, ok := d.lits[key]
	if !ok {
		m = d.c.Lit()
		d.lits[key] = m
		d.inorder = append(d.inorder, key)
	}
	return m
}

// forbidUnsatisfying walks the cross product of the scope's original
// domains and, for each combination the constraint rejects, records the
// clause stating the combination's literals cannot all hold. The walk is
// exponential in arity, mirroring the cost profile of the extensional
// tuple tables themselves.
func (d *litMapping) forbidUnsatisfying(con *gridlock.Constraint) {
	scope := con.Scope()
	domains := make([][]int, len(scope))
	for i, v := range scope {
		domains[i] = v.OriginalDomain()
	}
	tuple := make([]int, len(scope))

	var walk func(i int)
	walk = func(i int) {
		if i == len(scope) {
			if con.Check(tuple) {
				return
			}
			m := d.litOf(scope[0], tuple[0]).Not()
			for j := 1; j < len(scope); j++ {
				m = d.c.Or(m, d.litOf(scope[j], tuple[j]).Not())
			}
			d.assume = append(d.assume, m)
			return
		}
		for _, value := range domains[i] {
			tuple[i] = value
			walk(i + 1)
		}
	}
	walk(0)
}

// AddCircuit teaches the accumulated circuit to the solver g.
func (d *litMapping) AddCircuit(g inter.Adder) {
	d.c.ToCnf(g)
}

// AssumeFormula assumes the cardinality and constraint literals, plus a
// negative literal for every value no longer in its variable's current
// domain, so the SAT engine honors assignments and prunings already made
// on the CSP.
func (d *litMapping) AssumeFormula(g inter.Assumable) {
	g.Assume(d.assume...)
	for _, key := range d.inorder {
		if !key.variable.InCurrentDomain(key.value) {
			g.Assume(d.lits[key].Not())
		}
	}
}

// Solution decodes the solver's model into an assignment.
func (d *litMapping) Solution(g inter.Model) map[string]int {
	solution := make(map[string]int, len(d.csp.Variables()))
	for _, key := range d.inorder {
		if g.Value(d.lits[key]) {
			solution[key.variable.Name()] = key.value
		}
	}
	return solution
}

// Block adds a clause permanently excluding the given solution from
// future models.
func (d *litMapping) Block(g inter.Adder, solution map[string]int) {
	for _, v := range d.csp.Variables() {
		g.Add(d.litOf(v, solution[v.Name()]).Not())
	}
	g.Add(z.LitNull)
}
