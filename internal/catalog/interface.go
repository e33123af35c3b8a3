package catalog

import (
	"context"
	"io"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Importer interface {
	// Enqueue schedules an import of the catalog file at path and reports
	// whether a new job was created.
	Enqueue(ctx context.Context, path string) (bool, error)
	// ImportFile reads the catalog file at path and stores its content.
	ImportFile(ctx context.Context, path string) (Result, error)
	// Import stores the catalog document read from r.
	Import(ctx context.Context, r io.Reader) (Result, error)
}
