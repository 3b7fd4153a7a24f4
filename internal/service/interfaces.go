package service

import (
	"context"

	"github.com/alexanderramin/dmaicboard/internal/contract"
	"github.com/alexanderramin/dmaicboard/internal/importer"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

type ReportService interface {
	Generate(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
}

// SourceLoader fetches a raw snapshot. *importer.Loader implements it.
type SourceLoader interface {
	Load(ctx context.Context, src importer.Source) (*table.Table, error)
}
