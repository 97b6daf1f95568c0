package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/stricto/internal/app"
)

func newDoneCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task of today's protocol as completed",
		Long:  "Accepts the task's list position (1-based) or its full ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}

			resp, err := a.Completion.Complete(context.Background(), app.CompleteRequest{
				UserID: a.UserID,
				TaskID: taskID,
			})
			if err != nil {
				return err
			}

			if resp.PointsAwarded == 0 {
				fmt.Println(dimStyle.Render("Already completed."))
				return nil
			}

			fmt.Printf("%s %s\n", okStyle.Render("DONE"), resp.Task.Title)
			fmt.Printf("+%d points (total %d), streak %d\n", resp.PointsAwarded, resp.TotalPoints, resp.Streak)
			for _, b := range resp.NewBadges {
				fmt.Println(okStyle.Render("BADGE UNLOCKED: ") + b.Title + " - " + b.Description)
			}
			return nil
		},
	}
	return cmd
}

// resolveTaskID turns a 1-based list position into a task ID; anything
// non-numeric passes through as an ID.
func resolveTaskID(a *App, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}
	tasks, err := a.Protocol.Tasks(context.Background(), a.UserID)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(tasks) {
		return "", fmt.Errorf("task %d out of range, protocol has %d tasks", n, len(tasks))
	}
	return tasks[n-1].ID, nil
}
