package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	version = "dev"

	rootCmd = &cobra.Command{
		Use:   "gioia",
		Short: "Personal expense and budget tracker",
		Long: `gioia: track expenses, define budgets, and get overspend alerts and
spending reports from your terminal. Data lives in two flat CSV files
(expenses.csv and budgets.csv) under the data directory.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding expenses.csv and budgets.csv")

	rootCmd.AddCommand(expenseCmd())
	rootCmd.AddCommand(budgetCmd())
	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(comparisonCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gioia %s\n", version)
		},
	}
}
