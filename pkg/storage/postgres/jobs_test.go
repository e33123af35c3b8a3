package postgres_test

import (
	"context"
	"database/sql"
	"foodgram/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type seedArgs struct {
	Path string `json:"path"`
}

func (seedArgs) Kind() string { return "seed_catalog" }

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob_InsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, seedArgs{Path: "catalog.json"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&seedArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, seedArgs{Path: "catalog.json"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&seedArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniqueByArgs(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	inserted, err := pg.AddJob(ctx, seedArgs{Path: "a.json"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, seedArgs{Path: "a.json"}, opts)
	require.NoError(t, err)
	require.False(t, inserted)

	inserted, err = pg.AddJob(ctx, seedArgs{Path: "b.json"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)
}
