package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

type followUpRow struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date"`
	Completed bool   `json:"completed"`
}

func newFollowUpsCmd(client *Client, output *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "follow-ups",
		Aliases: []string{"followups"},
		Short:   "Work with follow-up tasks",
	}

	cmd.AddCommand(newFollowUpsListCmd(client, output))
	cmd.AddCommand(newFollowUpsCompleteCmd(client, output))
	return cmd
}

func newFollowUpsListCmd(client *Client, output *string) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the signed-in user's pending follow-ups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/api/follow-ups"
			if due != "" {
				path += "?due=" + due
			}

			var followUps []followUpRow
			if err := client.Get(cmd.Context(), path, &followUps); err != nil {
				return err
			}

			if *output == "json" {
				return PrintJSON(os.Stdout, followUps)
			}
			rows := make([][]string, 0, len(followUps))
			for _, f := range followUps {
				rows = append(rows, []string{f.ID, f.Title, f.DueDate, strconv.FormatBool(f.Completed)})
			}
			return PrintTable(os.Stdout, []string{"ID", "TITLE", "DUE", "COMPLETED"}, rows)
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Filter by due window (today, overdue)")
	return cmd
}

func newFollowUpsCompleteCmd(client *Client, output *string) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "complete <id> [id...]",
		Short: "Mark follow-ups completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"ids": args, "notes": notes}

			var completed []followUpRow
			if err := client.Post(cmd.Context(), "/api/follow-ups/complete", body, &completed); err != nil {
				return err
			}

			if *output == "json" {
				return PrintJSON(os.Stdout, completed)
			}
			ids := make([]string, 0, len(completed))
			for _, f := range completed {
				ids = append(ids, f.ID)
			}
			_, err := os.Stdout.WriteString("completed: " + strings.Join(ids, ", ") + "\n")
			return err
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Completion notes applied to every task")
	return cmd
}
