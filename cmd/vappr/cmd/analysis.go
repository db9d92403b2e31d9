package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func analysisCmd() *cobra.Command {
	analysisRoot := &cobra.Command{
		Use:   "analysis",
		Short: "Inspect market analyses",
		Long: "Inspect the market analysis computed for an appraisal: the current\n" +
			"result and the revision history.",
	}

	analysisRoot.AddCommand(
		analysisShowCmd(),
		analysisHistoryCmd(),
	)

	return analysisRoot
}

func analysisShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <appraisal-id>",
		Short: "Show the current analysis",
		Example: `  vappr analysis show 2f6c9a
  vappr analysis show 2f6c9a --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAnalysis(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAnalysisDetail(a)
		},
	}
}

func analysisHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <appraisal-id>",
		Short: "Show analysis revisions, newest first",
		Example: `  vappr analysis history 2f6c9a
  vappr analysis history 2f6c9a --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			history, err := c.GetAnalysisHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(history)
			}
			if len(history) == 0 {
				fmt.Println("No analysis revisions found.")
				return nil
			}
			return printAnalysisHistoryTable(history)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of revisions (server default 20)")

	return cmd
}

func recomputeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "recompute <appraisal-id>",
		Short: "Recompute the market analysis",
		Long: "Runs the valuation pipeline for an appraisal. Unchanged inputs return\n" +
			"the current analysis unless --force is set.",
		Example: `  vappr recompute 2f6c9a
  vappr recompute 2f6c9a --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.Recompute(context.Background(), args[0], force)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAnalysisDetail(a)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "recompute even when inputs are unchanged")

	return cmd
}
