package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/config"
	"github.com/alexanderramin/dmaicboard/internal/contract"
	"github.com/alexanderramin/dmaicboard/internal/importer"
	"github.com/alexanderramin/dmaicboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Reports service.ReportService
	Config  config.Config

	// IsInteractive reports whether stdout is a terminal. Nil means no.
	IsInteractive func() bool
}

// sourceFlags are the persistent flags shared by every report command.
type sourceFlags struct {
	source      string
	table       string
	inputFormat string
	format      string
}

func (f *sourceFlags) request() (contract.ReportRequest, error) {
	req := contract.NewReportRequest(f.source)
	if f.table != "" {
		req.Table = f.table
	}
	switch in := importer.Format(strings.ToLower(f.inputFormat)); in {
	case "auto", importer.FormatAuto:
		req.Format = importer.FormatAuto
	case importer.FormatCSV, importer.FormatJSON, importer.FormatSQLite:
		req.Format = in
	default:
		return req, fmt.Errorf("unknown input format %q (want auto, csv, json or sqlite)", f.inputFormat)
	}
	return req, nil
}

func (f *sourceFlags) outputFormat() (outputFormat, error) {
	return parseOutputFormat(f.format)
}

// NewRootCmd creates the top-level "dmaicboard" command and registers all
// subcommands against the provided App. Flag defaults come from app.Config.
func NewRootCmd(app *App) *cobra.Command {
	cfg := app.Config
	if cfg == (config.Config{}) {
		cfg = config.DefaultConfig()
	}
	flags := &sourceFlags{}

	root := &cobra.Command{
		Use:           "dmaicboard",
		Short:         "DMAIC activity log reports",
		Long:          "Loads a DMAIC project activity log, classifies every activity and reports progress by phase, owner and completion quality.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.source, "source", "s", cfg.Source, "Activity log location: CSV/JSON file, SQLite database or http(s) URL")
	pf.StringVar(&flags.table, "table", cfg.Table, "Table to read from a SQLite source")
	pf.StringVar(&flags.inputFormat, "input-format", "auto", "Source format: auto, csv, json or sqlite")
	pf.StringVarP(&flags.format, "format", "o", cfg.Format, "Output format: text, json, yaml or csv")

	root.AddCommand(
		newReportCmd(app, flags),
		newPhasesCmd(app, flags),
		newOwnersCmd(app, flags),
		newCompletionCmd(app, flags),
		newIndicatorsCmd(app, flags),
		newPreparedCmd(app, flags),
		newChartsCmd(app, flags),
		newInspectCmd(app, flags),
		newDashboardCmd(app, flags),
	)

	return root
}

// generate runs the report use case for the current flags.
func generate(ctx context.Context, app *App, flags *sourceFlags) (*contract.ReportResponse, error) {
	req, err := flags.request()
	if err != nil {
		return nil, err
	}
	return app.Reports.Generate(ctx, req)
}
