package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pmcli",
		Short:         "Project manager client",
		Long:          "Manage projects and their tasks against the project-manager REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Start(cmd.Context())
		},
	}

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	return cmd
}
