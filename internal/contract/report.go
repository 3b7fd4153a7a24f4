package contract

import "github.com/alexanderramin/dmaicboard/internal/app"

type ReportRequest = app.ReportRequest

func NewReportRequest(source string) ReportRequest {
	return app.NewReportRequest(source)
}

type ReportResponse = app.ReportResponse

type ReportErrorCode = app.ReportErrorCode

const (
	ReportErrSourceUnavailable ReportErrorCode = app.ReportErrSourceUnavailable
	ReportErrSourceNotFound    ReportErrorCode = app.ReportErrSourceNotFound
	ReportErrInvalidSource     ReportErrorCode = app.ReportErrInvalidSource
)

type ReportError = app.ReportError
