// Package futoshiki builds constraint networks for the Futoshiki puzzle:
// an n×n grid to be filled with 1..n so that no row or column repeats a
// value, subject to inequality relations between horizontally adjacent
// cells.
package futoshiki

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// Ineq is the relation between two horizontally adjacent cells.
type Ineq byte

const (
	// None places no relation between the cells.
	None Ineq = '.'
	// Gt requires the left cell to exceed the right one.
	Gt Ineq = '>'
	// Lt requires the left cell to be less than the right one.
	Lt Ineq = '<'
)

// Puzzle is a parsed Futoshiki board: n rows of n cells (0 for empty,
// 1..n for pre-set positions) and the inequality relation between each
// pair of horizontally adjacent cells.
type Puzzle struct {
	n     int
	cells [][]int
	ineqs [][]Ineq
}

// Size returns the board dimension n.
func (p *Puzzle) Size() int {
	return p.n
}

// Cell returns the pre-set value at row i, column j, or 0 if empty.
func (p *Puzzle) Cell(i, j int) int {
	return p.cells[i][j]
}

// Relation returns the inequality between cells (i, j) and (i, j+1).
func (p *Puzzle) Relation(i, j int) Ineq {
	return p.ineqs[i][j]
}

// Parse reads a board in row notation: n lines of 2n-1 whitespace
// separated tokens, alternating cells and separators. Cells are 0 (empty)
// or 1..n; separators are '<', '>' or '.'. For instance a 3×3 board with
// one pre-set cell and one relation:
//
//	0 > 0 . 2
//	0 . 0 . 0
//	0 . 0 < 0
func Parse(r io.Reader) (*Puzzle, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading board: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("invalid board: no rows found")
	}

	n := len(rows)
	p := &Puzzle{
		n:     n,
		cells: make([][]int, n),
		ineqs: make([][]Ineq, n),
	}
	for i, row := range rows {
		if len(row) != 2*n-1 {
			return nil, fmt.Errorf("invalid board: row %d has %d tokens, expected %d for an %d×%d board", i, len(row), 2*n-1, n, n)
		}
		p.cells[i] = make([]int, n)
		p.ineqs[i] = make([]Ineq, n-1)
		for j, tok := range row {
			if j%2 == 0 {
				value, err := strconv.Atoi(tok)
				if err != nil || value < 0 || value > n {
					return nil, fmt.Errorf("invalid cell (%s) at row %d: expected 0..%d", tok, i, n)
				}
				p.cells[i][j/2] = value
				continue
			}
			switch tok {
			case "<":
				p.ineqs[i][j/2] = Lt
			case ">":
				p.ineqs[i][j/2] = Gt
			case ".":
				p.ineqs[i][j/2] = None
			default:
				return nil, fmt.Errorf("invalid separator (%s) at row %d: expected <, > or .", tok, i)
			}
		}
	}
	return p, nil
}

// Render returns the board with each variable's assigned value, keeping
// the puzzle's separators. Unassigned cells render as underscores.
func Render(p *Puzzle, cells [][]*gridlock.Variable) string {
	var b strings.Builder
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
				b.WriteByte(byte(p.ineqs[i][j-1]))
				b.WriteByte(' ')
			}
			v := cells[i][j]
			if v.Assigned() {
				b.WriteString(strconv.Itoa(v.Value()))
			} else {
				b.WriteByte('_')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
