package main

import (
	"os"

	"github.com/spf13/cobra"
)

var flagCatalogFile string

var rootCmd = &cobra.Command{
	Use:   "kanso",
	Short: "Monthly habit grid tracker",
	Long:  "Track a fixed list of habits day by day and see monthly completion percentages.",
	RunE:  runServe,

	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalogFile, "catalog", "", "YAML habit catalog (overrides HABIT_CATALOG_FILE)")

	rootCmd.AddCommand(serveCmd, migrateCmd, showCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
