package futoshiki

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlock-framework/gridlock/internal/sat"
	"github.com/gridlock-framework/gridlock/pkg/futoshiki"
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/propagator"
	"github.com/gridlock-framework/gridlock/pkg/gridlock/solver"
)

type options struct {
	model      string
	propagator string
	engine     string
	all        bool
	trace      bool
}

func NewFutoshikiCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "futoshiki <path>",
		Short: "Solves a futoshiki board given in row notation",
		Long: `Solves a futoshiki board given in row notation: n lines of 2n-1
space-separated tokens, alternating cells and separators. Cells are 0
(empty) or a pre-set value 1..n; separators between horizontally adjacent
cells are '<', '>' or '.' (no relation). For instance:

0 > 0 . 2
0 . 0 . 0
0 . 0 < 0
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.model, "model", "binary", "constraint formulation: binary or alldiff")
	cmd.Flags().StringVar(&opts.propagator, "propagator", "gac", "propagation strategy: bt, fc or gac")
	cmd.Flags().StringVar(&opts.engine, "engine", "search", "solving engine: search or sat")
	cmd.Flags().BoolVar(&opts.all, "all", false, "enumerate every solution instead of the first")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log search events to stderr")
	return cmd
}

func solve(path string, opts *options) error {
	boardFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening board file (%s): %w", path, err)
	}
	defer boardFile.Close()

	puzzle, err := futoshiki.Parse(boardFile)
	if err != nil {
		return fmt.Errorf("error parsing board file (%s): %w", path, err)
	}

	model, err := futoshiki.ModelFromString(opts.model)
	if err != nil {
		return err
	}
	csp, cells, err := futoshiki.Build(puzzle, model)
	if err != nil {
		return err
	}

	so, err := newSolver(csp, opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if opts.all {
		solutions, err := so.SolveAll(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d solutions\n", len(solutions))
		for _, solution := range solutions {
			fmt.Println()
			fmt.Print(renderSolution(puzzle, solution))
		}
		return nil
	}

	_, err = so.Solve(ctx)
	if errors.Is(err, solver.ErrUnsatisfiable) {
		fmt.Println("no solution found")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Print(futoshiki.Render(puzzle, cells))
	return nil
}

// engineSolver is the surface shared by the search driver and the SAT
// backend.
type engineSolver interface {
	Solve(ctx context.Context) (solver.Solution, error)
	SolveAll(ctx context.Context) ([]solver.Solution, error)
}

func newSolver(csp *gridlock.CSP, opts *options) (engineSolver, error) {
	switch opts.engine {
	case "sat":
		return sat.NewSolver(csp), nil
	case "search":
		kind, err := propagator.KindFromString(opts.propagator)
		if err != nil {
			return nil, err
		}
		solverOpts := []solver.Option{solver.WithKind(kind)}
		if opts.trace {
			solverOpts = append(solverOpts, solver.WithTracer(solver.LoggingTracer{Writer: os.Stderr}))
		}
		return solver.New(csp, solverOpts...)
	}
	return nil, fmt.Errorf("unknown engine %q (expected search or sat)", opts.engine)
}

// renderSolution prints a solution map onto the puzzle's grid. Used for
// enumeration, where assignments are not left on the variables.
func renderSolution(p *futoshiki.Puzzle, solution solver.Solution) string {
	out := ""
	for i := 0; i < p.Size(); i++ {
		for j := 0; j < p.Size(); j++ {
			if j > 0 {
				out += fmt.Sprintf(" %c ", p.Relation(i, j-1))
			}
			out += fmt.Sprintf("%d", solution[fmt.Sprintf("V%d%d", i, j)])
		}
		out += "\n"
	}
	return out
}
