package app

import (
	"github.com/alexanderramin/dmaicboard/internal/importer"
	"github.com/alexanderramin/dmaicboard/internal/prepare"
	"github.com/alexanderramin/dmaicboard/internal/report"
)

type ReportRequest struct {
	Source string
	Format importer.Format
	// Table names the SQLite table to read; ignored for CSV and JSON.
	Table string
	// Inspect adds data-quality warnings to the response.
	Inspect bool
}

func NewReportRequest(source string) ReportRequest {
	return ReportRequest{
		Source:  source,
		Format:  importer.FormatAuto,
		Table:   importer.DefaultSQLiteTable,
		Inspect: true,
	}
}

type ReportResponse struct {
	Report   *report.Report
	Prepared *prepare.Prepared
	Warnings []string
}

type ReportErrorCode string

const (
	ReportErrSourceUnavailable ReportErrorCode = "SOURCE_UNAVAILABLE"
	ReportErrSourceNotFound    ReportErrorCode = "SOURCE_NOT_FOUND"
	ReportErrInvalidSource     ReportErrorCode = "INVALID_SOURCE"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request may succeed later.
func (e *ReportError) Retryable() bool {
	return e.Code == ReportErrSourceUnavailable
}
