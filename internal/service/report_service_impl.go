package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dmaicboard/internal/app"
	"github.com/alexanderramin/dmaicboard/internal/importer"
	"github.com/alexanderramin/dmaicboard/internal/prepare"
	"github.com/alexanderramin/dmaicboard/internal/report"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

type reportService struct {
	loader   SourceLoader
	observer UseCaseObserver
}

func NewReportService(loader SourceLoader, observers ...UseCaseObserver) ReportService {
	return &reportService{
		loader:   loader,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Generate(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"source": req.Source,
		"format": string(req.Format),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if strings.TrimSpace(req.Source) == "" {
		return nil, &app.ReportError{Code: app.ReportErrInvalidSource, Message: "no source configured"}
	}

	var raw *table.Table
	raw, err = s.loader.Load(ctx, importer.Source{
		Location: req.Source,
		Format:   req.Format,
		Table:    req.Table,
	})
	if err != nil {
		return nil, toReportError(err)
	}
	fields["raw_rows"] = raw.Len()

	var warnings []string
	if req.Inspect {
		warnings = importer.Inspect(raw)
		fields["warnings"] = len(warnings)
	}

	var opts []prepare.Option
	if logger := observerLogger(s.observer); logger != nil {
		opts = append(opts, prepare.WithLogger(logger))
	}
	prepared := prepare.Prepare(raw, opts...)
	rep := report.Build(prepared)
	fields["snapshot_id"] = rep.SnapshotID
	fields["completed"] = rep.Indicators.Completed

	return &app.ReportResponse{
		Report:   rep,
		Prepared: prepared,
		Warnings: warnings,
	}, nil
}

func toReportError(err error) error {
	var srcErr *importer.SourceError
	if !errors.As(err, &srcErr) {
		return fmt.Errorf("loading source: %w", err)
	}
	code := app.ReportErrInvalidSource
	switch srcErr.Kind {
	case importer.KindUnavailable:
		code = app.ReportErrSourceUnavailable
	case importer.KindNotFound:
		code = app.ReportErrSourceNotFound
	}
	return &app.ReportError{Code: code, Message: srcErr.Error(), Err: err}
}
