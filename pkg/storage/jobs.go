package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the relational data so a job can
// be committed atomically with the rows it refers to.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted; false means a
	// unique job with the same arguments already exists. Inside a transaction
	// the job only becomes visible on commit.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
