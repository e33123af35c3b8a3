package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"foodgram/internal/catalog"
	mockcatalog "foodgram/internal/catalog/mock"
	"foodgram/internal/worker"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, path string) *river.Job[catalog.JobArgs] {
	return &river.Job[catalog.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   catalog.JobArgs{Path: path},
	}
}

func TestCatalogImportWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockcatalog.NewMockImporter(ctrl)
	w := worker.NewCatalogImportWorker(mock, time.Minute)

	mock.EXPECT().ImportFile(gomock.Any(), "data/ingredients.json").
		Return(catalog.Result{Ingredients: 2190}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "data/ingredients.json")))
	require.Equal(t, time.Minute, w.Timeout(makeJob(1, "data/ingredients.json")))
}

func TestCatalogImportWorker_Work_PermanentFailuresCancel(t *testing.T) {
	for name, err := range map[string]error{
		"missing file": serrors.Wrap(serrors.ErrNotFound, errors.New("no such file"), "could not open catalog file"),
		"malformed":    serrors.With(serrors.ErrBadRequest, "malformed catalog"),
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockcatalog.NewMockImporter(ctrl)
			w := worker.NewCatalogImportWorker(mock, 0)

			mock.EXPECT().ImportFile(gomock.Any(), "catalog.json").Return(catalog.Result{}, err)

			werr := w.Work(context.Background(), makeJob(2, "catalog.json"))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, werr, &cancelErr)
		})
	}
}

func TestCatalogImportWorker_Work_TransientFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockcatalog.NewMockImporter(ctrl)
	w := worker.NewCatalogImportWorker(mock, 0)

	mock.EXPECT().ImportFile(gomock.Any(), "catalog.json").Return(catalog.Result{}, errors.New("connection reset"))

	err := w.Work(context.Background(), makeJob(3, "catalog.json"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}
