package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/portability"
	"github.com/orbitlabs/missionctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Out    string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export missions to a portable file",
		Long: `Export the mission collection to a portable document.

The JSON output matches the durable tasks record exactly, pretty-printed.
Use "-" as the output path to write to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(opts.Format, opts.Out)
			if err != nil {
				return err
			}

			uc := c.ExportTasksUseCase(portability.CodecFor(format))
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if opts.Out == "-" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(opts.Out, out.Data, 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			printLatestNotification(cmd, c)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d mission(s) to %s\n", out.Count, opts.Out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "missions.json", "Output path, or - for stdout")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Document format: json or yaml (default: by extension)")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
	}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import missions from a portable file",
		Long: `Import a mission collection, replacing the current one.

The swap is all-or-nothing: a malformed document leaves the existing
collection untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.Format, args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			uc := c.ImportTasksUseCase(portability.CodecFor(format))
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{Data: data})
			if err != nil {
				printLatestNotification(cmd, c)
				return err
			}

			printLatestNotification(cmd, c)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d mission(s)\n", out.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Document format: json or yaml (default: by extension)")

	return cmd
}

// resolveFormat picks the document format from an explicit flag or, failing
// that, the file extension.
func resolveFormat(flag, path string) (portability.Format, error) {
	if flag != "" {
		return portability.ParseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return portability.FormatYAML, nil
	default:
		return portability.FormatJSON, nil
	}
}
