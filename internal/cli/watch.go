package cli

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newWatchCommand creates the watch command, a foreground loop that rescans
// due dates at the configured interval and prints every alert it raises.
func newWatchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Interval time.Duration
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch missions and print due-date alerts",
		Long: `Watch missions in the foreground.

Rescans due dates at the configured interval and prints an alert line for
every mission that is overdue, due today, or due tomorrow. The scan is
level-triggered: a mission that stays due keeps alerting on every pass
until it is completed or rescheduled. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval := opts.Interval
			if interval <= 0 {
				interval = c.Config.ScanInterval
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			printer := &printingNotifier{out: cmd.OutOrStdout()}
			if c.Notifications != nil {
				printer.next = c.Notifications
			}
			scan := usecase.NewDueScan(c.Tasks, c.Clock, printer, c.Logger)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching missions every %s (Ctrl-C to stop)\n", interval)
			if _, err := scan.Execute(ctx); err != nil {
				return err
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if _, err := scan.Execute(ctx); err != nil {
						return err
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&opts.Interval, "interval", 0, "Rescan interval (default: from config)")

	return cmd
}

// printingNotifier prints each alert line and forwards it to the queue, so
// the board picks up the same alerts with their usual expiry.
type printingNotifier struct {
	out  io.Writer
	next domain.Notifier
}

func (p *printingNotifier) Notify(message string, severity domain.Severity) {
	_, _ = fmt.Fprintf(p.out, "[%s] %s\n", severity, message)
	if p.next != nil {
		p.next.Notify(message, severity)
	}
}
