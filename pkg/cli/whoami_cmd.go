package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(client *Client, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile behind the current token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profile struct {
				ID       string `json:"id"`
				Email    string `json:"email"`
				FullName string `json:"full_name"`
				Role     string `json:"role"`
				Status   string `json:"status"`
			}
			if err := client.Get(cmd.Context(), "/api/profile", &profile); err != nil {
				return err
			}
			if *output == "json" {
				return PrintJSON(os.Stdout, profile)
			}
			return PrintTable(os.Stdout,
				[]string{"ID", "EMAIL", "NAME", "ROLE", "STATUS"},
				[][]string{{profile.ID, profile.Email, profile.FullName, profile.Role, profile.Status}})
		},
	}
}
