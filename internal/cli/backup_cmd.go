package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the full user record",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "export <file>",
			Short: "Write profile, protocol, and history to a JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Backup.Export(context.Background(), a.UserID, args[0]); err != nil {
					return err
				}
				fmt.Printf("%s %s\n", okStyle.Render("EXPORTED"), args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Replace the local record with a backup file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.Backup.Import(context.Background(), a.UserID, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s %d tasks, %d history days restored.\n",
					okStyle.Render("IMPORTED"), result.TaskCount, result.HistoryDays)
				return nil
			},
		},
	)
	return cmd
}
