package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		format  string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "report <appraisal-id>",
		Short: "Fetch a rendered appraisal report",
		Long: "Fetch the rendered report for an appraisal. Markdown and HTML print\n" +
			"to stdout unless --out is given; PDF requires --out.",
		Example: `  # Print the markdown report
  vappr report 2f6c9a

  # Save the PDF
  vappr report 2f6c9a --format pdf --out appraisal.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if format == "pdf" && outFile == "" {
				return fmt.Errorf("--out is required for pdf output")
			}

			c := newClient()
			body, err := c.GetReport(context.Background(), args[0], format)
			if err != nil {
				return err
			}

			if outFile == "" {
				_, err := os.Stdout.Write(body)
				return err
			}

			if err := os.WriteFile(outFile, body, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Printf("Report written to %s (%d bytes).\n", outFile, len(body))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "report format (markdown, html, pdf)")
	cmd.Flags().StringVar(&outFile, "out", "", "write the report to a file")

	return cmd
}
