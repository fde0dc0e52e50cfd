package root

import (
	"github.com/spf13/cobra"

	"github.com/gridlock-framework/gridlock/cmd/futoshiki"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridlock",
		Short: "Gridlock is a finite-domain constraint solving engine",
		Long: `A finite-domain constraint solving engine written in Go: extensional
constraints, backtracking search with pluggable consistency propagation
(plain backtracking, forward checking, generalized arc consistency), and a
SAT translation backend.`,
	}

	// add sub-commands
	rootCmd.AddCommand(futoshiki.NewFutoshikiCommand())

	return rootCmd
}
