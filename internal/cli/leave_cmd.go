package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/stricto/internal/app"
)

// leaveTypeFlag is a pflag.Value restricted to the known leave categories.
type leaveTypeFlag string

var leaveTypes = []string{"personal", "sick", "family", "travel"}

func (f *leaveTypeFlag) String() string { return string(*f) }

func (f *leaveTypeFlag) Set(v string) error {
	for _, t := range leaveTypes {
		if v == t {
			*f = leaveTypeFlag(v)
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(leaveTypes, ", "))
}

func (f *leaveTypeFlag) Type() string { return "type" }

var _ pflag.Value = (*leaveTypeFlag)(nil)

func newLeaveCmd(a *App) *cobra.Command {
	var days int
	leaveType := leaveTypeFlag("personal")

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Mark upcoming days as leave",
		Long:  "Leave days are excused in the history: they pause the streak without breaking it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.Leave.ApplyLeave(context.Background(), app.LeaveRequest{
				UserID: a.UserID,
				Days:   days,
				Type:   string(leaveType),
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %d day(s) of %s leave recorded.\n", okStyle.Render("APPROVED"), n, leaveType)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Number of days starting today")
	cmd.Flags().Var(&leaveType, "type", "Leave type ("+strings.Join(leaveTypes, ", ")+")")
	return cmd
}
