package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/spf13/cobra"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show mission-control statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.TaskStatsUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			s := out.Stats
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "Total Missions\t%d\n", s.Total)
			_, _ = fmt.Fprintf(w, "Success Rate\t%d%%\n", s.SuccessRate)
			_, _ = fmt.Fprintf(w, "Completed\t%d\n", s.Completed)
			_, _ = fmt.Fprintf(w, "Active\t%d\n", s.Active)
			_, _ = fmt.Fprintf(w, "Due Today\t%d\n", s.DueToday)
			_, _ = fmt.Fprintf(w, "This Week\t%d\n", s.DueThisWeek)
			_, _ = fmt.Fprintf(w, "High Priority\t%d\n", s.HighPriority)
			if s.Overdue > 0 {
				_, _ = fmt.Fprintf(w, "Overdue\t%d\n", s.Overdue)
			}
			return w.Flush()
		},
	}
}
