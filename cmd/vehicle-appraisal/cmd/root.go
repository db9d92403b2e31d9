// Package cmd implements the CLI commands for the vehicle-appraisal server.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vehicle-appraisal",
	Short: "Vehicle valuation engine for insurance appraisals",
	Long: "An API-first service that values subject vehicles against comparable " +
		"listings: it scores comparables for similarity, normalizes their prices, " +
		"computes a weighted market value with a confidence score, and alerts " +
		"when a vehicle is undervalued relative to the insurer's reference value.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Populate the environment before the config file is expanded.
		// Missing .env files are fine; system env vars still apply.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
