package cli

import (
	"github.com/alexanderramin/lessonslot/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	Roster    service.RosterService
	Schedules service.ScheduleService

	// IsInteractive reports whether huh forms may prompt on stdin. Nil means
	// never prompt.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "lessonslot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lessonslot",
		Short:         "Monthly lesson slot scheduler",
		Long:          "Assigns students to weekday lesson slots for a month, honoring day preferences, slot capacity and NG pairs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Read before the command tree is built (see cmd/lessonslot); declared
	// here so cobra accepts it and lists it in help.
	root.PersistentFlags().String("config", "", "config file (yaml or json); defaults to $LESSONSLOT_CONFIG")

	root.AddCommand(
		newStudentCmd(app),
		newScheduleCmd(app),
	)

	return root
}
