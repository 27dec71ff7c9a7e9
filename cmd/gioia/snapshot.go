package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export {expenses|budgets}",
		Short: "Export a store as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			switch args[0] {
			case "expenses":
				err = a.snapshots.ExportExpenses(w)
			case "budgets":
				err = a.snapshots.ExportBudgets(w)
			default:
				return fmt.Errorf("unknown store %q, want expenses or budgets", args[0])
			}
			if err != nil {
				return err
			}
			if out != "" {
				cmd.Printf("Exported %s to %s\n", args[0], out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import {expenses|budgets} FILE",
		Short: "Replace a store with the contents of a CSV file",
		Long: `Replace a store with the contents of a CSV file. The store is only
replaced when the whole file parses; a malformed file leaves the current
data untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[1], err)
			}
			defer f.Close()

			var count int
			switch args[0] {
			case "expenses":
				count, err = a.snapshots.ImportExpenses(f)
			case "budgets":
				count, err = a.snapshots.ImportBudgets(f)
			default:
				return fmt.Errorf("unknown store %q, want expenses or budgets", args[0])
			}
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Imported %d %s from %s\n", count, args[0], args[1])
			return nil
		},
	}
	return cmd
}
