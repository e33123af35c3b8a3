package main

import (
	"context"
	"database/sql"
	root "foodgram"
	"foodgram/internal/config"
	"foodgram/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the schema
// and river queue migrations up to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			// application schema
			provider, err := goose.NewProvider(goose.DialectPostgres, db, root.MigrationsFS())
			if err != nil {
				logger.Fatal(ctx, "could not create goose provider", zap.Error(err))
			}
			results, err := provider.Up(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			for _, res := range results {
				logger.Info(ctx, "applied migration",
					zap.Int64("version", res.Source.Version),
					zap.Duration("duration", res.Duration))
			}

			// migrate riverqueue
			migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
			if err != nil {
				logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
			for _, v := range res.Versions {
				logger.Info(ctx, "applied river queue migration", zap.Int("version", v.Version))
			}
		},
	}

	return cmd
}
