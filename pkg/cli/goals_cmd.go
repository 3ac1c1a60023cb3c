package cli

import (
	"os"

	"github.com/spf13/cobra"
)

type goalRow struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	GoalType    string  `json:"goal_type"`
	TargetValue float64 `json:"target_value"`
	Progress    float64 `json:"progress"`
	Period      string  `json:"period"`
}

func newGoalsCmd(client *Client, output *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Work with accountability goals",
	}

	cmd.AddCommand(newGoalsListCmd(client, output))
	cmd.AddCommand(newGoalsCreateCmd(client, output))
	return cmd
}

func newGoalsListCmd(client *Client, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accountability goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var goals []goalRow
			if err := client.Get(cmd.Context(), "/api/goals", &goals); err != nil {
				return err
			}
			if *output == "json" {
				return PrintJSON(os.Stdout, goals)
			}
			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				rows = append(rows, []string{
					g.ID, g.UserID, g.GoalType,
					formatFloat(g.Progress), formatFloat(g.TargetValue), g.Period,
				})
			}
			return PrintTable(os.Stdout,
				[]string{"ID", "USER", "TYPE", "PROGRESS", "TARGET", "PERIOD"}, rows)
		},
	}
}

func newGoalsCreateCmd(client *Client, output *string) *cobra.Command {
	var (
		userID      string
		goalType    string
		targetValue float64
		period      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an accountability goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := map[string]any{
				"user_id":      userID,
				"goal_type":    goalType,
				"target_value": targetValue,
				"period":       period,
			}

			var created goalRow
			if err := client.Post(cmd.Context(), "/api/goals", body, &created); err != nil {
				return err
			}
			if *output == "json" {
				return PrintJSON(os.Stdout, created)
			}
			cmd.Printf("Created goal %s (%s, target %s)\n",
				created.ID, created.GoalType, formatFloat(created.TargetValue))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Owning user ID")
	cmd.Flags().StringVar(&goalType, "type", "", "Goal type (e.g. calls, deals)")
	cmd.Flags().Float64Var(&targetValue, "target", 0, "Target value")
	cmd.Flags().StringVar(&period, "period", "monthly", "Goal period")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
