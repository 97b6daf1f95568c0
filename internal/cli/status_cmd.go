package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/stricto/internal/app"
)

func newStatusCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the day's standing and the syllabus projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(context.Background(), app.StatusRequest{UserID: a.UserID})
			if err != nil {
				return err
			}
			fmt.Print(formatStatus(resp))
			return nil
		},
	}
	return cmd
}

func formatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("STATUS") + "\n")
	b.WriteString(fmt.Sprintf("%s | %s | %s\n", resp.Exam, resp.Stage, strings.ToUpper(string(resp.Level))))

	if resp.DaysToExam >= 0 {
		b.WriteString(fmt.Sprintf("%d days to exam\n", resp.DaysToExam))
	} else {
		b.WriteString(dimStyle.Render("No exam date set.") + "\n")
	}

	if resp.HasTasks {
		b.WriteString(fmt.Sprintf("Protocol: %d/%d done (%d%%)\n",
			resp.CompletedTasks, resp.TotalTasks, resp.CompliancePct))
	} else {
		b.WriteString(dimStyle.Render("No protocol yet today.") + "\n")
	}

	b.WriteString(fmt.Sprintf("Rank %s · %d points · streak %d\n",
		okStyle.Render(resp.Rank), resp.Points, resp.Streak))
	b.WriteString(resp.Insight + "\n")
	return b.String()
}
