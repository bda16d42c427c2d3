package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexanderramin/lessonslot/internal/cli/formatter"
	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/export"
	"github.com/alexanderramin/lessonslot/internal/importer"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Aliases: []string{"students"},
		Short:   "Manage the student roster",
	}

	cmd.AddCommand(
		newStudentAddCmd(app),
		newStudentListCmd(app),
		newStudentRemoveCmd(app),
		newStudentImportCmd(app),
		newStudentTemplateCmd(),
		newStudentExportCmd(app),
	)

	return cmd
}

func newStudentAddCmd(app *App) *cobra.Command {
	var f studentFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student to the roster",
		Example: heredoc.Doc(`
			lessonslot student add --name "Taro Tanaka" --days 1,5,10 --ng 2,3
			lessonslot student add            # prompts when run in a terminal
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if f.Name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required")
				}
				if f.ID == "" {
					next, err := app.Roster.NextID(ctx)
					if err != nil {
						return err
					}
					f.ID = next
				}
				if err := wizardStudent(&f).Run(); err != nil {
					return err
				}
			}

			days, err := parseDays(f.Days)
			if err != nil {
				return err
			}
			s := &domain.Student{
				ID:            f.ID,
				Name:          f.Name,
				PreferredDays: days,
				NGWith:        parseIDs(f.NG),
			}
			if err := app.Roster.Add(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added student %s [%s]\n", s.Name, s.ID)
			if len(s.PreferredDays) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No preferred days: this student will not be scheduled."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.ID, "id", "", "Student ID (default: next numeric id)")
	cmd.Flags().StringVar(&f.Name, "name", "", "Student name")
	cmd.Flags().StringVar(&f.Days, "days", "", "Preferred days of month in priority order, e.g. 1,5,10")
	cmd.Flags().StringVar(&f.NG, "ng", "", "IDs of students that must not share a slot, e.g. 2,3")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List students in roster order",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Roster.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentList(students))
			return nil
		},
	}
}

func newStudentRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a student from the roster",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := app.Roster.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %s [%s] without --yes", s.Name, s.ID)
				}
				confirmed := false
				if err := wizardConfirm(fmt.Sprintf("Remove %s [%s]?", s.Name, s.ID), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Roster.Remove(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed student %s [%s]\n", s.Name, s.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func newStudentImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import students from a roster CSV (use - for stdin)",
		Long: heredoc.Docf(`
			Import students from a CSV in the template layout:

			  %s

			Malformed lines are skipped and reported. Without --replace, rows update
			students with the same ID and add new ones.
		`, importer.RosterTemplateHeader),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			report, err := app.Roster.Import(cmd.Context(), text, replace)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the whole roster instead of merging")

	return cmd
}

func newStudentTemplateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print or save the roster CSV template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd, output, []byte(importer.RosterTemplate()+"\n"))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newStudentExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster as CSV in the template layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Roster.List(cmd.Context())
			if err != nil {
				return err
			}
			out, err := export.RosterCSV(students)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", strings.TrimSpace(path))
	return nil
}
