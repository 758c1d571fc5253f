package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"projectmanager/internal/app/store"
	"projectmanager/internal/core/domain"
)

const dueDateLayout = "2006-01-02"

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the tasks of a project",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var projectID string
	var filter string
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			app.TaskSync.SetActiveProject(cmd.Context(), projectID)
			app.Tasks.SetFilterText(filter)
			app.Tasks.SetStatusFilter(status)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tDUE\tDESCRIPTION")
			for _, task := range app.Tasks.Filtered() {
				due := ""
				if task.DueDate != nil {
					due = task.DueDate.Format(dueDateLayout)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", task.ID, task.Title, task.Status, due, task.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id to list tasks for")
	cmd.Flags().StringVar(&filter, "filter", "", "Case-insensitive text match on title or description")
	cmd.Flags().StringVar(&status, "status", store.StatusAll, "Task status (todo, in_progress, done) or all")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var projectID string
	var title string
	var description string
	var status string
	var due string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			input := domain.CreateTaskInput{
				ProjectID:   projectID,
				Title:       title,
				Description: description,
				Status:      domain.TaskStatus(status),
			}

			if due != "" {
				parsed, err := time.Parse(dueDateLayout, due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q, expected YYYY-MM-DD", due)
				}
				input.DueDate = &parsed
			}

			app.TaskSync.SetActiveProject(cmd.Context(), projectID)
			task, err := app.Tasks.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			cmd.Printf("Created task %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id the task belongs to")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", string(domain.TaskStatusTodo), "Task status")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var title string
	var description string
	var status string
	var due string
	var clearDue bool

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update the given fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			var input domain.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("status") {
				value := domain.TaskStatus(status)
				input.Status = &value
			}
			if clearDue {
				input.DueDateSet = true
			} else if cmd.Flags().Changed("due") {
				parsed, err := time.Parse(dueDateLayout, due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q, expected YYYY-MM-DD", due)
				}
				input.DueDate = &parsed
				input.DueDateSet = true
			}

			task, err := app.Tasks.Update(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			cmd.Printf("Updated task %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New task title")
	cmd.Flags().StringVar(&description, "description", "", "New task description")
	cmd.Flags().StringVar(&status, "status", "", "New task status")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireUser(); err != nil {
				return err
			}

			if err := app.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Printf("Deleted task %s\n", args[0])
			return nil
		},
	}
}
