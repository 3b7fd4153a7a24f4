package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/dmaicboard/internal/chart"
	"github.com/alexanderramin/dmaicboard/internal/cli/formatter"
	"github.com/alexanderramin/dmaicboard/internal/contract"
	"github.com/alexanderramin/dmaicboard/internal/report"
	"github.com/spf13/cobra"
)

// reportDocument is the structured form of the full report.
type reportDocument struct {
	SnapshotID string                       `json:"snapshot_id" yaml:"snapshot_id"`
	Indicators report.GlobalIndicators      `json:"indicators" yaml:"indicators"`
	Phases     []report.PhaseSummary        `json:"phases" yaml:"phases"`
	Owners     []report.OwnerSummary        `json:"owners" yaml:"owners"`
	Completion []report.CompletionBreakdown `json:"completion" yaml:"completion"`
	Warnings   []string                     `json:"warnings" yaml:"warnings"`
}

// inspectDocument is the structured form of the inspect command.
type inspectDocument struct {
	Rows           int                    `json:"rows" yaml:"rows"`
	Columns        []string               `json:"columns" yaml:"columns"`
	StatusMappings []report.StatusMapping `json:"status_mappings" yaml:"status_mappings"`
	Warnings       []string               `json:"warnings" yaml:"warnings"`
}

// runReport generates the report for the current flags and hands it to
// render together with the requested output format.
func runReport(app *App, flags *sourceFlags, render func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f, err := flags.outputFormat()
		if err != nil {
			return err
		}
		resp, err := generate(cmd.Context(), app, flags)
		if err != nil {
			return err
		}
		return render(cmd, f, resp)
	}
}

func newReportCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show indicators, phase, owner and completion tables",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			r := resp.Report
			switch f {
			case outputText:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(r, resp.Warnings))
				return nil
			case outputCSV:
				return errUnsupportedFormat("report", f)
			}
			warnings := resp.Warnings
			if warnings == nil {
				warnings = []string{}
			}
			return writeStructured(cmd.OutOrStdout(), f, reportDocument{
				SnapshotID: r.SnapshotID,
				Indicators: r.Indicators,
				Phases:     r.Phases,
				Owners:     r.Owners,
				Completion: r.Completion,
				Warnings:   warnings,
			})
		}),
	}
}

func newPhasesCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "Activity counts per DMAIC phase",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			phases := resp.Report.Phases
			switch f {
			case outputText:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPhaseTable(phases))
				return nil
			case outputCSV:
				rows := make([][]string, 0, len(phases))
				for _, p := range phases {
					rows = append(rows, countsCSV(string(p.Phase), p.StatusCounts))
				}
				return writeCSV(cmd.OutOrStdout(), countsCSVHeader("phase"), rows)
			}
			return writeStructured(cmd.OutOrStdout(), f, phases)
		}),
	}
}

func newOwnersCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "owners",
		Short: "Activity counts per owner, busiest first",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			owners := resp.Report.Owners
			switch f {
			case outputText:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOwnerTable(owners))
				return nil
			case outputCSV:
				rows := make([][]string, 0, len(owners))
				for _, o := range owners {
					rows = append(rows, countsCSV(o.Owner, o.StatusCounts))
				}
				return writeCSV(cmd.OutOrStdout(), countsCSVHeader("owner"), rows)
			}
			return writeStructured(cmd.OutOrStdout(), f, owners)
		}),
	}
}

func countsCSVHeader(first string) []string {
	return []string{first, "total", "completed", "in_progress", "not_scheduled"}
}

func countsCSV(label string, c report.StatusCounts) []string {
	return []string{
		label,
		strconv.Itoa(c.Total),
		strconv.Itoa(c.Completed),
		strconv.Itoa(c.InProgress),
		strconv.Itoa(c.NotScheduled),
	}
}

func newCompletionCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "On-time and late completions per phase",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			rows := resp.Report.Completion
			switch f {
			case outputText:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompletionTable(rows))
				return nil
			case outputCSV:
				out := make([][]string, 0, len(rows))
				for _, r := range rows {
					out = append(out, []string{string(r.Phase), strconv.Itoa(r.OnTime), strconv.Itoa(r.Late)})
				}
				return writeCSV(cmd.OutOrStdout(), []string{"phase", "on_time", "late"}, out)
			}
			return writeStructured(cmd.OutOrStdout(), f, rows)
		}),
	}
}

func newIndicatorsCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "indicators",
		Short: "Global counts, progress indicator and on-time rate",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			g := resp.Report.Indicators
			switch f {
			case outputText:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIndicators(g))
				return nil
			case outputCSV:
				return writeCSV(cmd.OutOrStdout(), []string{"indicator", "value"}, [][]string{
					{"total", strconv.Itoa(g.Total)},
					{"completed", strconv.Itoa(g.Completed)},
					{"in_progress", strconv.Itoa(g.InProgress)},
					{"not_scheduled", strconv.Itoa(g.NotScheduled)},
					{"completed_on_time", strconv.Itoa(g.CompletedOnTime)},
					{"completed_late", strconv.Itoa(g.CompletedLate)},
					{"progress_indicator", optionalFloat(g.ProgressIndicator)},
					{"pct_completed_on_time", optionalFloat(g.PctCompletedOnTime)},
				})
			}
			return writeStructured(cmd.OutOrStdout(), f, g)
		}),
	}
}

func newPreparedCmd(app *App, flags *sourceFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "prepared",
		Short: "Dump the normalized and classified activity table",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			t := resp.Prepared.Table
			switch f {
			case outputText:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrepared(t, limit))
				return nil
			case outputCSV:
				rows := make([][]string, 0, t.Len())
				for _, row := range t.Rows {
					cells := make([]string, len(t.Columns))
					for i, col := range t.Columns {
						cells[i] = csvCell(row[col])
					}
					rows = append(rows, cells)
				}
				return writeCSV(cmd.OutOrStdout(), t.Columns, rows)
			}
			return writeStructured(cmd.OutOrStdout(), f, tableDocument(t, f))
		}),
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n rows in text output (0 shows all)")

	return cmd
}

func newChartsCmd(app *App, flags *sourceFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Phase progress, composition and completion quality charts",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			specs := chart.All(resp.Report)
			switch f {
			case outputText:
				for i, spec := range specs {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChart(spec, width))
				}
				return nil
			case outputCSV:
				return errUnsupportedFormat("charts", f)
			}
			return writeStructured(cmd.OutOrStdout(), f, specs)
		}),
	}

	cmd.Flags().IntVar(&width, "width", 40, "Bar width in terminal cells for text output")

	return cmd
}

func newInspectCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Data-quality warnings and how raw statuses were classified",
		RunE: runReport(app, flags, func(cmd *cobra.Command, f outputFormat, resp *contract.ReportResponse) error {
			mappings := report.StatusMappings(resp.Report.Records)
			warnings := resp.Warnings
			if warnings == nil {
				warnings = []string{}
			}
			switch f {
			case outputText:
				t := resp.Prepared.Table
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d rows, %d columns retained", t.Len(), len(t.Columns))))
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatStatusMappings(mappings))
				if len(warnings) > 0 {
					fmt.Fprintln(out)
					fmt.Fprint(out, formatter.FormatWarnings(warnings))
				}
				return nil
			case outputCSV:
				return errUnsupportedFormat("inspect", f)
			}
			return writeStructured(cmd.OutOrStdout(), f, inspectDocument{
				Rows:           resp.Prepared.Table.Len(),
				Columns:        resp.Prepared.Table.Columns,
				StatusMappings: mappings,
				Warnings:       warnings,
			})
		}),
	}
}
