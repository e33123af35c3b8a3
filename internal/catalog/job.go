package catalog

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments of a catalog import job submitted to River.
type JobArgs struct {
	// Path is the catalog file to import. It is part of the unique key so the
	// same file is never imported by two jobs at once.
	Path string `json:"path" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the import worker.
func (args JobArgs) Kind() string { return "ImportCatalogJob" }

// InsertOpts keeps at most one unfinished job per path.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: time.Minute,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
