package importer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies source failures.
type ErrorKind string

const (
	// KindUnavailable covers network failures and server-side errors.
	// The same request may succeed later.
	KindUnavailable ErrorKind = "unavailable"
	// KindNotFound is a missing file, URL or table.
	KindNotFound ErrorKind = "not_found"
	// KindInvalid is a source that cannot be decoded as a table.
	KindInvalid ErrorKind = "invalid"
)

var (
	errNoLocation   = errors.New("no source location configured")
	errRemoteSQLite = errors.New("sqlite sources must be local files")
)

// SourceError reports a failure to obtain a snapshot.
type SourceError struct {
	Kind     ErrorKind
	Location string
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s (%s): %v", e.Location, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether retrying the same load may succeed.
func (e *SourceError) Retryable() bool {
	return e.Kind == KindUnavailable
}
