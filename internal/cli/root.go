package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/stricto/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profile    service.ProfileService
	Protocol   service.ProtocolService
	Completion service.CompletionService
	Status     service.StatusService
	Leave      service.LeaveService
	Backup     service.BackupService

	// UserID identifies the active profile for every command.
	UserID string

	// IsInteractive reports whether stdin is a terminal; non-interactive
	// runs skip forms and the board view.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "stricto" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stricto",
		Short:         "Discipline-first exam study planner",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newProtocolCmd(app),
		newTasksCmd(app),
		newDoneCmd(app),
		newStatusCmd(app),
		newProfileCmd(app),
		newBadgesCmd(app),
		newLeaveCmd(app),
		newBackupCmd(app),
	)

	return root
}
