package cli

import (
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

type prospectRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

func newProspectsCmd(client *Client, output *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prospects",
		Short: "Work with prospects",
	}

	cmd.AddCommand(newProspectsListCmd(client, output))
	cmd.AddCommand(newProspectsSearchCmd(client, output))
	return cmd
}

func newProspectsListCmd(client *Client, output *string) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the signed-in user's prospects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/api/prospects"
			if status != "" {
				path += "?status=" + url.QueryEscape(status)
			}

			var prospects []prospectRow
			if err := client.Get(cmd.Context(), path, &prospects); err != nil {
				return err
			}
			return printProspects(*output, prospects)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by pipeline status")
	return cmd
}

func newProspectsSearchCmd(client *Client, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search prospects by name, email, or company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/prospects/search?q=" + url.QueryEscape(args[0])

			var prospects []prospectRow
			if err := client.Get(cmd.Context(), path, &prospects); err != nil {
				return err
			}
			return printProspects(*output, prospects)
		},
	}
}

func printProspects(output string, prospects []prospectRow) error {
	if output == "json" {
		return PrintJSON(os.Stdout, prospects)
	}
	rows := make([][]string, 0, len(prospects))
	for _, p := range prospects {
		rows = append(rows, []string{p.ID, p.Name, p.Company, p.Status})
	}
	return PrintTable(os.Stdout, []string{"ID", "NAME", "COMPANY", "STATUS"}, rows)
}
