package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexanderramin/lessonslot/internal/cli/formatter"
	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/export"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and inspect monthly schedules",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleListCmd(app),
		newScheduleShowCmd(app),
		newScheduleExportCmd(app),
		newScheduleDeleteCmd(app),
	)

	return cmd
}

// resolveRunID accepts a full run id or a unique prefix of one.
func resolveRunID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("run ID is required")
	}

	runs, err := app.Schedules.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, r := range runs {
		if r.ID == input {
			return r.ID, nil
		}
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("schedule run not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("run ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// loadRun picks the run named by args[0], else the latest run for month,
// else the most recent run overall.
func loadRun(ctx context.Context, app *App, args []string, month *monthValue) (*domain.ScheduleRun, error) {
	if len(args) > 0 {
		id, err := resolveRunID(ctx, app, args[0])
		if err != nil {
			return nil, err
		}
		return app.Schedules.Get(ctx, id)
	}
	if month.set {
		return app.Schedules.Latest(ctx, month.year, month.month)
	}
	runs, err := app.Schedules.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no schedules generated yet; run 'lessonslot schedule generate --month YYYY-MM'")
	}
	return app.Schedules.Get(ctx, runs[0].ID)
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var month monthValue
	var csvPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assign the current roster to a month's lesson slots",
		Example: heredoc.Doc(`
			lessonslot schedule generate --month 2026-04
			lessonslot schedule generate --month 2026-04 --csv april.csv --pdf april.pdf
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := app.Schedules.Generate(cmd.Context(), month.year, month.month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatRunSummary(run))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatMonthCalendar(run))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatUnassigned(run))

			if csvPath != "" {
				csv := export.ScheduleCSV(run.Result, run.Students)
				if err := writeOutput(cmd, csvPath, []byte(csv)); err != nil {
					return err
				}
			}
			if pdfPath != "" {
				pdf, err := export.SchedulePDF(run)
				if err != nil {
					return err
				}
				if err := writeOutput(cmd, pdfPath, pdf); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(&month, "month", "Month to schedule (YYYY-MM)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the schedule CSV to this file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a printable PDF to this file")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List generated schedules, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Schedules.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var month monthValue
	var week int
	var verify bool

	cmd := &cobra.Command{
		Use:   "show [RUN-ID]",
		Short: "Show a generated schedule",
		Long: heredoc.Doc(`
			Show a generated schedule as a month calendar, or one week in detail.

			Without RUN-ID the latest run for --month is shown, or the most recent run
			when --month is not given.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := loadRun(cmd.Context(), app, args, &month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatRunSummary(run))
			fmt.Fprintln(out)
			if week > 0 {
				view, err := formatter.FormatWeek(run, week)
				if err != nil {
					return err
				}
				fmt.Fprint(out, view)
			} else {
				fmt.Fprint(out, formatter.FormatMonthCalendar(run))
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatUnassigned(run))

			if verify {
				fmt.Fprintln(out)
				errs := run.Result.Check(run.Students)
				fmt.Fprint(out, formatter.FormatCheck(errs))
				if len(errs) > 0 {
					return fmt.Errorf("schedule %s failed verification", formatter.TruncID(run.ID))
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(&month, "month", "Show the latest run for this month (YYYY-MM)")
	cmd.Flags().IntVar(&week, "week", 0, "Show week N of the month in detail")
	cmd.Flags().BoolVar(&verify, "verify", false, "Re-check capacity, NG pairs and placements")

	return cmd
}

func newScheduleExportCmd(app *App) *cobra.Command {
	var month monthValue
	var format, output string

	cmd := &cobra.Command{
		Use:   "export [RUN-ID]",
		Short: "Export a schedule as CSV or PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := loadRun(cmd.Context(), app, args, &month)
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "csv":
				return writeOutput(cmd, output, []byte(export.ScheduleCSV(run.Result, run.Students)))
			case "pdf":
				if output == "" || output == "-" {
					return fmt.Errorf("pdf export needs --output FILE")
				}
				pdf, err := export.SchedulePDF(run)
				if err != nil {
					return err
				}
				return writeOutput(cmd, output, pdf)
			default:
				return fmt.Errorf("unknown format %q (want csv or pdf)", format)
			}
		},
	}

	cmd.Flags().Var(&month, "month", "Export the latest run for this month (YYYY-MM)")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newScheduleDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete RUN-ID",
		Aliases: []string{"rm"},
		Short:   "Delete a generated schedule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveRunID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Schedules.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted schedule %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
