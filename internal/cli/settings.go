package cli

import (
	"fmt"

	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newSettingsCommand creates the settings command and its subcommands.
func newSettingsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.Settings.Load()
			if err != nil {
				return err
			}
			sound := "off"
			if settings.SoundEnabled {
				sound = "on"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sound Effects: %s\n", sound)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Default Sort:  %s\n", settings.SortBy)
			return nil
		},
	}

	cmd.AddCommand(newSettingsSoundCommand(c), newSettingsSortCommand(c))
	return cmd
}

// newSettingsSoundCommand toggles sound feedback.
func newSettingsSoundCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "sound <on|off>",
		Short: "Enable or disable sound feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("invalid value %q (use on or off)", args[0])
			}

			uc := c.UpdateSettingsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UpdateSettingsInput{SoundEnabled: &enabled})
			if err != nil {
				return err
			}

			state := "disabled"
			if out.Settings.SoundEnabled {
				state = "enabled"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sound effects %s\n", state)
			return nil
		},
	}
}

// newSettingsSortCommand changes the default sort key.
func newSettingsSortCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <dueDate|priority|created>",
		Short: "Set the default sort key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseSortKey(args[0])
			if err != nil {
				return err
			}

			uc := c.UpdateSettingsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UpdateSettingsInput{SortBy: &key})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Default sort set to %s\n", out.Settings.SortBy)
			return nil
		},
	}
}
