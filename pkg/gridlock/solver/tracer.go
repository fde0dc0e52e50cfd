package solver

import (
	"fmt"
	"io"

	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// Tracer observes the search as it runs.
type Tracer interface {
	// Assign is called after a variable is tentatively assigned, with
	// the recursion depth of the assignment.
	Assign(depth int, variable *gridlock.Variable, value int)
	// DeadEnd is called when propagation fails for an assignment, with
	// the prunings about to be undone.
	DeadEnd(depth int, variable *gridlock.Variable, pruned []gridlock.Pruning)
	// Solution is called when all variables are assigned consistently.
	Solution(solution Solution)
}

// DefaultTracer traces nothing.
type DefaultTracer struct{}

func (DefaultTracer) Assign(_ int, _ *gridlock.Variable, _ int)                 {}
func (DefaultTracer) DeadEnd(_ int, _ *gridlock.Variable, _ []gridlock.Pruning) {}
func (DefaultTracer) Solution(_ Solution)                                       {}

// LoggingTracer writes a line per search event to Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Assign(depth int, variable *gridlock.Variable, value int) {
	fmt.Fprintf(t.Writer, "%*sassign %s=%d\n", depth, "", variable.Name(), value)
}

func (t LoggingTracer) DeadEnd(depth int, variable *gridlock.Variable, pruned []gridlock.Pruning) {
	fmt.Fprintf(t.Writer, "%*sdead end at %s, undoing %d prunings\n", depth, "", variable.Name(), len(pruned))
}

func (t LoggingTracer) Solution(solution Solution) {
	fmt.Fprintf(t.Writer, "solution found (%d variables)\n", len(solution))
}
