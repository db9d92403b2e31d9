// Package cmd implements the vappr CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/valuelab/vehicle-appraisal/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "vappr",
		Short: "CLI client for the vehicle-appraisal API",
		Long: "vappr is a command-line client for the vehicle-appraisal API.\n" +
			"It lets you manage appraisals and their comparable listings, inspect\n" +
			"market analyses, trigger recomputes, and fetch rendered reports\n" +
			"from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.vappr.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(appraisalsCmd())
	rootCmd.AddCommand(comparablesCmd())
	rootCmd.AddCommand(analysisCmd())
	rootCmd.AddCommand(recomputeCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(stateCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(pruneCmd())
}

func initConfig() {
	// Populate the environment before viper reads it. Missing .env files
	// are fine; system env vars still apply.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vappr")
	}

	viper.SetEnvPrefix("VAPPR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
