package cli

import (
	"errors"

	"github.com/alexanderramin/dmaicboard/internal/contract"
)

// FormatError turns a command error into a one-line user message.
// Retryable source failures say so.
func FormatError(err error) string {
	var repErr *contract.ReportError
	if !errors.As(err, &repErr) {
		return err.Error()
	}
	switch repErr.Code {
	case contract.ReportErrSourceUnavailable:
		return "activity log is temporarily unavailable, try again later: " + repErr.Message
	case contract.ReportErrSourceNotFound:
		return "activity log not found: " + repErr.Message
	default:
		return "activity log cannot be read: " + repErr.Message
	}
}
