package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show system state",
		Long: "Show aggregate counts for appraisals, comparables, and analyses as\n" +
			"reported by the server.",
		Example: `  vappr state
  vappr state --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			state, err := c.GetSystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(state)
			}
			return printStateDetail(state)
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Trigger a stale-analysis sweep",
		Long: "Asks the server to recompute every appraisal whose analysis is older\n" +
			"than the configured staleness window, without waiting for the next\n" +
			"scheduled run.",
		Example: `  vappr sweep`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			n, err := c.TriggerSweep(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"recomputed": n})
			}
			fmt.Printf("Sweep complete: %d appraisal(s) recomputed.\n", n)
			return nil
		},
	}
}

func pruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Prune old analysis revisions",
		Long: "Asks the server to remove analysis revisions past the retention\n" +
			"window. The latest revision per appraisal is always kept.",
		Example: `  vappr prune`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			n, err := c.TriggerPrune(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"pruned": n})
			}
			fmt.Printf("Prune complete: %d revision(s) removed.\n", n)
			return nil
		},
	}
}
