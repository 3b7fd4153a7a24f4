package prepare

import (
	"io"
	"log/slog"
)

// Option configures Normalize and Prepare.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes diagnostic messages to logger. Output never affects
// the prepared result.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
