// Command patterns is the catalog's demo runner: it lists the available
// pattern demonstrations and executes one by name, printing its output to
// stdout.
//
//	patterns list
//	patterns demo composite
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Runnable demonstrations of classic design patterns",
	Long: "patterns bundles one small, self-contained demonstration per design\n" +
		"pattern in this catalog. Use 'list' to see what is available and\n" +
		"'demo <name>' to run one.",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available pattern demos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range demoNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo <name>",
	Short: "Run one pattern demo by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
