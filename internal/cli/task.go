package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for creating missions.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Due      string
		Priority string
		Notes    string
		Category string
		Tags     string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new mission",
		Long: `Create a new mission.

Examples:
  # Create a mission due on a specific day
  missionctl add --name "Finish report" --due 2026-09-02

  # Create a high-priority mission with tags
  missionctl add --name "Fix launch bug" --priority high --tags "urgent,launch"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			due, err := domain.ParseDate(opts.Due)
			if err != nil {
				return fmt.Errorf("invalid due date %q (use YYYY-MM-DD): %w", opts.Due, err)
			}

			var priority domain.Priority
			if opts.Priority != "" {
				priority, err = domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
			}

			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{
				Name:     opts.Name,
				Due:      due,
				Priority: priority,
				Notes:    opts.Notes,
				Category: opts.Category,
				Tags:     opts.Tags,
			})
			if err != nil {
				return err
			}

			printLatestNotification(cmd, c)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Mission %s\n", shortID(out.Task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Mission name (required)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "medium", "Priority: low, medium, or high")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-text notes")
	cmd.Flags().StringVar(&opts.Category, "category", "work", "Category label")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "Comma-separated tags")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		Search string
		Sort   string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter domain.StatusFilter
			if opts.Filter != "" {
				f, err := domain.ParseStatusFilter(opts.Filter)
				if err != nil {
					return err
				}
				filter = f
			}

			var sortBy domain.SortKey
			if opts.Sort != "" {
				k, err := domain.ParseSortKey(opts.Sort)
				if err != nil {
					return err
				}
				sortBy = k
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Filter: filter,
				Search: opts.Search,
				SortBy: sortBy,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No missions")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tDUE\tPRI\tSTATUS\tCATEGORY\tTAGS")
			for _, t := range out.Tasks {
				status := "active"
				if t.Completed {
					status = "done"
				}
				due := t.Due.String()
				if due == "" {
					due = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(t.ID), t.Name, due, t.Priority, status, t.Category,
					strings.Join(t.Tags, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Status filter: all, active, or completed")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search name, notes, category, and tags")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort key: dueDate, priority, or created (default: settings)")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			t := out.Task
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "ID:        %s\n", t.ID)
			_, _ = fmt.Fprintf(w, "Name:      %s\n", t.Name)
			_, _ = fmt.Fprintf(w, "Due:       %s\n", orDash(t.Due.String()))
			_, _ = fmt.Fprintf(w, "Priority:  %s\n", t.Priority)
			_, _ = fmt.Fprintf(w, "Category:  %s\n", orDash(t.Category))
			_, _ = fmt.Fprintf(w, "Tags:      %s\n", orDash(strings.Join(t.Tags, ", ")))
			_, _ = fmt.Fprintf(w, "Completed: %t\n", t.Completed)
			_, _ = fmt.Fprintf(w, "Created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
			if t.Notes != "" {
				_, _ = fmt.Fprintf(w, "\n%s\n", t.Notes)
			}
			return nil
		},
	}
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Due      string
		Priority string
		Notes    string
		Category string
		Tags     string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			show := c.ShowTaskUseCase()
			found, err := show.Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}
			task := found.Task

			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(opts.Name) == "" {
					return domain.ErrEmptyName
				}
				task.Name = opts.Name
			}
			if cmd.Flags().Changed("due") {
				due, err := domain.ParseDate(opts.Due)
				if err != nil {
					return fmt.Errorf("invalid due date %q (use YYYY-MM-DD): %w", opts.Due, err)
				}
				task.Due = due
			}
			if cmd.Flags().Changed("priority") {
				priority, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				task.Priority = priority
			}
			if cmd.Flags().Changed("notes") {
				task.Notes = opts.Notes
			}
			if cmd.Flags().Changed("category") {
				task.Category = opts.Category
			}
			if cmd.Flags().Changed("tags") {
				task.Tags = domain.ParseTags(opts.Tags)
			}

			uc := c.UpdateTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.UpdateTaskInput{Task: task}); err != nil {
				return err
			}

			printLatestNotification(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Mission name")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium, or high")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-text notes")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Category label")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "Comma-separated tags")

	return cmd
}

// newDoneCommand creates the done command toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a mission between completed and reopened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			show := c.ShowTaskUseCase()
			found, err := show.Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			uc := c.ToggleTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{ID: found.Task.ID}); err != nil {
				return err
			}

			printLatestNotification(cmd, c)
			return nil
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			show := c.ShowTaskUseCase()
			found, err := show.Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{ID: found.Task.ID}); err != nil {
				return err
			}

			printLatestNotification(cmd, c)
			return nil
		},
	}
}

// printLatestNotification echoes the newest queued notification, so the CLI
// surfaces the same wording the board shows.
func printLatestNotification(cmd *cobra.Command, c *app.Container) {
	if c.Notifications == nil {
		return
	}
	if items := c.Notifications.List(); len(items) > 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), items[0].Message)
	}
}

// shortID truncates an ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
