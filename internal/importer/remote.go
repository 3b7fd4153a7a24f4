package importer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexanderramin/dmaicboard/internal/table"
)

func (l *Loader) client() *http.Client {
	if l == nil || l.HTTPClient == nil {
		return http.DefaultClient
	}
	return l.HTTPClient
}

// fetch downloads a remote export. Transport errors and 5xx responses are
// reported as unavailable so callers can offer a retry.
func (l *Loader) fetch(ctx context.Context, location string, format Format) (*table.Table, error) {
	if l != nil && l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, &SourceError{Kind: KindInvalid, Location: location, Err: err}
	}

	resp, err := l.client().Do(req)
	if err != nil {
		return nil, &SourceError{Kind: KindUnavailable, Location: location, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &SourceError{Kind: KindNotFound, Location: location, Err: fmt.Errorf("http %d", resp.StatusCode)}
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &SourceError{Kind: KindUnavailable, Location: location, Err: fmt.Errorf("http %d", resp.StatusCode)}
	case resp.StatusCode >= 300:
		return nil, &SourceError{Kind: KindInvalid, Location: location, Err: fmt.Errorf("http %d", resp.StatusCode)}
	}

	decode := decodeCSV
	if format == FormatJSON {
		decode = decodeJSON
	}
	t, err := decode(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &SourceError{Kind: KindUnavailable, Location: location, Err: err}
		}
		return nil, &SourceError{Kind: KindInvalid, Location: location, Err: err}
	}
	return t, nil
}
