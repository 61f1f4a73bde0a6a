package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a summary of the persisted cache",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			stats := c.app.Stats()
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "files:     %d\n", stats.Files)
			_, _ = fmt.Fprintf(cmdo, "artifacts: %d\n", stats.Artifacts)
			_, _ = fmt.Fprintf(cmdo, "edges:     %d\n", stats.Edges)
		},
	}
}
