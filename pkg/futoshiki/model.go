package futoshiki

import (
	"fmt"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// Model identifies one of the two constraint formulations of a board.
type Model int

const (
	// Binary formulates rows and columns as pairwise not-equal
	// constraints.
	Binary Model = iota
	// AllDiff formulates each row and column as a single n-ary
	// all-different constraint, whose tuple table holds the n!
	// permutations of 1..n.
	AllDiff
)

// String implements fmt.Stringer.
func (m Model) String() string {
	switch m {
	case Binary:
		return "binary"
	case AllDiff:
		return "alldiff"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// ModelFromString parses a Model from its string form.
func ModelFromString(s string) (Model, error) {
	switch s {
	case "binary":
		return Binary, nil
	case "alldiff":
		return AllDiff, nil
	}
	return Binary, fmt.Errorf("unknown model %q (expected binary or alldiff)", s)
}

// Build constructs the constraint network for the puzzle under the given
// model. It returns the problem and the n×n grid of variables, so callers
// can read the solved board back out of the variables' assignments.
func Build(p *Puzzle, model Model) (*gridlock.CSP, [][]*gridlock.Variable, error) {
	switch model {
	case Binary:
		return buildBinary(p)
	case AllDiff:
		return buildAllDiff(p)
	}
	return nil, nil, fmt.Errorf("unknown model %v", model)
}

// buildBinary models rows and columns with pairwise not-equal
// constraints, plus a binary constraint per inequality relation.
func buildBinary(p *Puzzle) (*gridlock.CSP, [][]*gridlock.Variable, error) {
	csp := gridlock.NewCSP(fmt.Sprintf("futoshiki-%dx%d-binary", p.n, p.n))
	cells, err := addCellVariables(csp, p)
	if err != nil {
		return nil, nil, err
	}

	for i := 0; i < p.n; i++ {
		for j1 := 0; j1 < p.n; j1++ {
			for j2 := j1 + 1; j2 < p.n; j2++ {
				con := pairConstraint(
					fmt.Sprintf("row%d-ne-%d-%d", i, j1, j2),
					cells[i][j1], cells[i][j2],
					func(a, b int) bool { return a != b },
				)
				if err := csp.AddConstraint(con); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	for j := 0; j < p.n; j++ {
		for i1 := 0; i1 < p.n; i1++ {
			for i2 := i1 + 1; i2 < p.n; i2++ {
				con := pairConstraint(
					fmt.Sprintf("col%d-ne-%d-%d", j, i1, i2),
					cells[i1][j], cells[i2][j],
					func(a, b int) bool { return a != b },
				)
				if err := csp.AddConstraint(con); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	if err := addInequalities(csp, p, cells); err != nil {
		return nil, nil, err
	}
	return csp, cells, nil
}

// buildAllDiff models each row and column with one n-ary all-different
// constraint, plus a binary constraint per inequality relation.
func buildAllDiff(p *Puzzle) (*gridlock.CSP, [][]*gridlock.Variable, error) {
	csp := gridlock.NewCSP(fmt.Sprintf("futoshiki-%dx%d-alldiff", p.n, p.n))
	cells, err := addCellVariables(csp, p)
	if err != nil {
		return nil, nil, err
	}

	perms := permutations(rangeDomain(p.n))
	for i := 0; i < p.n; i++ {
		con := gridlock.NewConstraint(fmt.Sprintf("row%d-alldiff", i), cells[i], perms)
		if err := csp.AddConstraint(con); err != nil {
			return nil, nil, err
		}
	}
	for j := 0; j < p.n; j++ {
		col := make([]*gridlock.Variable, p.n)
		for i := 0; i < p.n; i++ {
			col[i] = cells[i][j]
		}
		con := gridlock.NewConstraint(fmt.Sprintf("col%d-alldiff", j), col, perms)
		if err := csp.AddConstraint(con); err != nil {
			return nil, nil, err
		}
	}
	if err := addInequalities(csp, p, cells); err != nil {
		return nil, nil, err
	}
	return csp, cells, nil
}

// addCellVariables creates one variable per cell: pre-set cells get a
// singleton domain, empty cells get 1..n.
func addCellVariables(csp *gridlock.CSP, p *Puzzle) ([][]*gridlock.Variable, error) {
	cells := make([][]*gridlock.Variable, p.n)
	for i := 0; i < p.n; i++ {
		cells[i] = make([]*gridlock.Variable, p.n)
		for j := 0; j < p.n; j++ {
			var domain []int
			if preset := p.cells[i][j]; preset != 0 {
				domain = []int{preset}
			} else {
				domain = rangeDomain(p.n)
			}
			v := gridlock.NewVariable(fmt.Sprintf("V%d%d", i, j), domain)
			if err := csp.AddVariable(v); err != nil {
				return nil, err
			}
			cells[i][j] = v
		}
	}
	return cells, nil
}

// addInequalities registers a binary constraint for every '<' or '>'
// relation between horizontally adjacent cells.
func addInequalities(csp *gridlock.CSP, p *Puzzle, cells [][]*gridlock.Variable) error {
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n-1; j++ {
			var ok func(a, b int) bool
			switch p.ineqs[i][j] {
			case Lt:
				ok = func(a, b int) bool { return a < b }
			case Gt:
				ok = func(a, b int) bool { return a > b }
			default:
				continue
			}
			con := pairConstraint(
				fmt.Sprintf("ineq%d-%d-%d", i, j, j+1),
				cells[i][j], cells[i][j+1],
				ok,
			)
			if err := csp.AddConstraint(con); err != nil {
				return err
			}
		}
	}
	return nil
}

// pairConstraint builds a binary extensional constraint over a and b,
// satisfied by every pair of original-domain values accepted by ok.
func pairConstraint(name string, a, b *gridlock.Variable, ok func(x, y int) bool) *gridlock.Constraint {
	var tuples [][]int
	for _, x := range a.OriginalDomain() {
		for _, y := range b.OriginalDomain() {
			if ok(x, y) {
				tuples = append(tuples, []int{x, y})
			}
		}
	}
	return gridlock.NewConstraint(name, []*gridlock.Variable{a, b}, tuples)
}

func rangeDomain(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

// permutations returns every ordering of values.
func permutations(values []int) [][]int {
	var out [][]int
	perm := make([]int, 0, len(values))
	used := make([]bool, len(values))

	var walk func()
	walk = func() {
		if len(perm) == len(values) {
			tuple := make([]int, len(perm))
			copy(tuple, perm)
			out = append(out, tuple)
			return
		}
		for i, v := range values {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, v)
			walk()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
