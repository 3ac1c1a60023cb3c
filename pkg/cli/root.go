// Package cli implements the phoenix command-line client for the CRM API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = PrintJSON(os.Stdout, map[string]any{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		host   string
		token  string
		output string
	)

	rootCmd := &cobra.Command{
		Use:           "phoenix",
		Short:         "Phoenix CRM CLI",
		Long:          "Command-line interface for the Phoenix CRM API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Precedence: flag > env > default.
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("PHOENIX_HOST"); v != "" {
					host = v
				}
			}
			if !cmd.Flags().Changed("token") {
				if v := os.Getenv("PHOENIX_TOKEN"); v != "" {
					token = v
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("PHOENIX_OUTPUT"); v != "" {
					output = v
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "API host URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Access token for authentication")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")

	client := NewClient(&host, &token)

	rootCmd.AddCommand(newAuthCmd(client))
	rootCmd.AddCommand(newDashboardCmd(client, &output))
	rootCmd.AddCommand(newProspectsCmd(client, &output))
	rootCmd.AddCommand(newFollowUpsCmd(client, &output))
	rootCmd.AddCommand(newGoalsCmd(client, &output))
	rootCmd.AddCommand(newWhoamiCmd(client, &output))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
