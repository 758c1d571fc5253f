package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"projectmanager/internal/app/store"
	"projectmanager/internal/core/domain"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage the logged-in user's projects",
	}

	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var filter string
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally filtered by text and status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			app.Projects.SetFilterText(filter)
			app.Projects.SetStatusFilter(status)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tDESCRIPTION")
			for _, project := range app.Projects.Filtered() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", project.ID, project.Name, project.Status, project.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Case-insensitive text match on name or description")
	cmd.Flags().StringVar(&status, "status", store.StatusAll, "Project status (active, on_hold, completed) or all")
	return cmd
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var name string
	var description string
	var status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}

			project, err := app.Projects.Create(cmd.Context(), domain.CreateProjectInput{
				UserID:      user.ID,
				Name:        name,
				Description: description,
				Status:      domain.ProjectStatus(status),
			})
			if err != nil {
				return err
			}

			cmd.Printf("Created project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&status, "status", string(domain.ProjectStatusActive), "Project status")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var name string
	var description string
	var status string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update the given fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			var input domain.UpdateProjectInput
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("status") {
				value := domain.ProjectStatus(status)
				input.Status = &value
			}

			project, err := app.Projects.Update(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			cmd.Printf("Updated project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	cmd.Flags().StringVar(&description, "description", "", "New project description")
	cmd.Flags().StringVar(&status, "status", "", "New project status")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			if err := app.Projects.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Printf("Deleted project %s\n", args[0])
			return nil
		},
	}
}
