package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTasksCmd(a *App) *cobra.Command {
	var board bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show today's protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.Protocol.Tasks(context.Background(), a.UserID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(dimStyle.Render("No protocol yet. Run `stricto protocol` to generate one."))
				return nil
			}

			if board && a.interactive() {
				model := newBoardModel(a, tasks)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			fmt.Println(titleStyle.Render("TODAY'S PROTOCOL"))
			for i, task := range tasks {
				fmt.Print(formatTaskLine(i+1, task))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&board, "board", false, "Open the interactive task board")
	return cmd
}
