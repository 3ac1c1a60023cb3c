package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCmd(client *Client, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the signed-in user's dashboard counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data struct {
				Profile            map[string]any `json:"profile"`
				LeadsCount         int            `json:"leadsCount"`
				FollowUpsCount     int            `json:"followUpsCount"`
				WorksheetsCount    int            `json:"worksheetsCount"`
				ProspectsCount     int            `json:"prospectsCount"`
				NotificationsCount int            `json:"notificationsCount"`
				TrainingCount      int            `json:"trainingCount"`
			}
			if err := client.Get(cmd.Context(), "/api/dashboard", &data); err != nil {
				return err
			}

			if *output == "json" {
				return PrintJSON(os.Stdout, data)
			}
			return PrintTable(os.Stdout,
				[]string{"METRIC", "COUNT"},
				[][]string{
					{"leads", strconv.Itoa(data.LeadsCount)},
					{"follow-ups", strconv.Itoa(data.FollowUpsCount)},
					{"worksheets", strconv.Itoa(data.WorksheetsCount)},
					{"prospects", strconv.Itoa(data.ProspectsCount)},
					{"notifications", strconv.Itoa(data.NotificationsCount)},
					{"training", strconv.Itoa(data.TrainingCount)},
				},
			)
		},
	}
}
