package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/domain"
)

func newProtocolCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol",
		Short: "Initiate the daily protocol",
		Long:  "Contacts the task generator and builds today's ordered mission list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Protocol.Initiate(context.Background(), app.ProtocolRequest{UserID: a.UserID})
			if err != nil {
				return err
			}
			fmt.Print(formatProtocol(resp))
			return nil
		},
	}
	return cmd
}

func formatProtocol(resp *app.ProtocolResponse) string {
	var b strings.Builder

	header := "DAILY PROTOCOL"
	if resp.CrisisMode {
		header += " " + alertStyle.Render("[CRISIS MODE]")
	}
	b.WriteString(titleStyle.Render(header) + "\n")

	if resp.DaysToExam < 999 {
		b.WriteString(fmt.Sprintf("%d days to exam, revision ratio %.0f%%\n",
			resp.DaysToExam, resp.RevisionRatio*100))
	} else {
		b.WriteString(dimStyle.Render("No exam date set.") + "\n")
	}

	if resp.NoNewDirectives() {
		b.WriteString(warnStyle.Render("No new directives.") + " Yesterday's list stays in place.\n")
	} else {
		b.WriteString("\n")
		for i, task := range resp.Tasks {
			b.WriteString(formatTaskLine(i+1, task))
		}
	}

	if len(resp.FailedSubjects) > 0 {
		names := make([]string, len(resp.FailedSubjects))
		for i, s := range resp.FailedSubjects {
			names[i] = string(s)
		}
		b.WriteString(warnStyle.Render(fmt.Sprintf("\nNo tasks for: %s (generator unreachable)", strings.Join(names, ", "))) + "\n")
	}
	return b.String()
}

func formatTaskLine(n int, task domain.Task) string {
	check := "[ ]"
	if task.Completed {
		check = okStyle.Render("[x]")
	}
	line := fmt.Sprintf("%s %2d. %-45s %-9s %3dm", check, n, task.Title, task.Category, task.Duration)
	if task.Priority == domain.PriorityHigh {
		line += " " + warnStyle.Render("HIGH")
	}
	return line + "\n"
}
