package gridlock

// CSP owns the variables and constraints of one problem instance and
// answers the lookup queries propagation depends on. The reverse index
// from variable to the constraints mentioning it is maintained as
// constraints are added; it is consulted on every propagation step and is
// never recomputed.
type CSP struct {
	name        string
	variables   []*Variable
	constraints []*Constraint

	byName  map[string]*Variable
	byConst map[string]*Constraint
	withVar map[*Variable][]*Constraint
}

// NewCSP returns an empty problem with the given name.
func NewCSP(name string) *CSP {
	return &CSP{
		name:    name,
		byName:  make(map[string]*Variable),
		byConst: make(map[string]*Constraint),
		withVar: make(map[*Variable][]*Constraint),
	}
}

// Name returns the problem's name.
func (c *CSP) Name() string {
	return c.name
}

// AddVariable registers a variable with the problem.
func (c *CSP) AddVariable(v *Variable) error {
	if _, ok := c.byName[v.Name()]; ok {
		return DuplicateVariable(v.Name())
	}
	c.byName[v.Name()] = v
	c.variables = append(c.variables, v)
	return nil
}

// AddConstraint registers a constraint. Every variable in its scope must
// already be registered.
func (c *CSP) AddConstraint(con *Constraint) error {
	if _, ok := c.byConst[con.Name()]; ok {
		return DuplicateConstraint(con.Name())
	}
	for _, v := range con.scope {
		if c.byName[v.Name()] != v {
			return UnregisteredVariable(v.Name())
		}
	}
	c.byConst[con.Name()] = con
	c.constraints = append(c.constraints, con)
	for _, v := range con.scope {
		c.withVar[v] = append(c.withVar[v], con)
	}
	return nil
}

// Variables returns all registered variables in registration order.
func (c *CSP) Variables() []*Variable {
	out := make([]*Variable, len(c.variables))
	copy(out, c.variables)
	return out
}

// UnassignedVariables returns the registered variables without an
// assigned value, in registration order.
func (c *CSP) UnassignedVariables() []*Variable {
	var out []*Variable
	for _, v := range c.variables {
		if !v.Assigned() {
			out = append(out, v)
		}
	}
	return out
}

// Constraints returns all registered constraints in registration order.
func (c *CSP) Constraints() []*Constraint {
	out := make([]*Constraint, len(c.constraints))
	copy(out, c.constraints)
	return out
}

// ConstraintsWithVariable returns the constraints whose scope includes v,
// in registration order.
func (c *CSP) ConstraintsWithVariable(v *Variable) []*Constraint {
	cons := c.withVar[v]
	out := make([]*Constraint, len(cons))
	copy(out, cons)
	return out
}
