package worker

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/catalog"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CatalogImportWorker imports ingredient and tag catalogs from files named
// by ImportCatalogJob arguments.
type CatalogImportWorker struct {
	river.WorkerDefaults[catalog.JobArgs]

	importer catalog.Importer
	timeout  time.Duration
}

// NewCatalogImportWorker constructs a worker using importer. A zero timeout
// keeps River's default job timeout.
func NewCatalogImportWorker(importer catalog.Importer, timeout time.Duration) *CatalogImportWorker {
	return &CatalogImportWorker{
		importer: importer,
		timeout:  timeout,
	}
}

func (w *CatalogImportWorker) Timeout(*river.Job[catalog.JobArgs]) time.Duration {
	return w.timeout
}

// Work imports the file. Missing and malformed files cancel the job since
// retrying cannot fix them; other failures are retried by River.
func (w *CatalogImportWorker) Work(ctx context.Context, job *river.Job[catalog.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("path", job.Args.Path))

	res, err := w.importer.ImportFile(ctx, job.Args.Path)
	if err != nil {
		logger.Error(ctx, "error importing catalog", zap.Error(err))

		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not import catalog: %w", err)
	}

	logger.Info(ctx, "catalog import finished",
		zap.Int64("ingredients", res.Ingredients),
		zap.Int64("tags", res.Tags))

	return nil
}
