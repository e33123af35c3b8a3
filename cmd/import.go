package main

import (
	"context"
	"foodgram/internal/catalog"
	"foodgram/internal/config"
	"foodgram/pkg/logger"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand that enqueues a catalog
// import job. The file is read by the worker of a running 'serve' process, so
// the path must be reachable from there.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Enqueues import of an ingredient and tag catalog file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			file, _ := cmd.Flags().GetString("file")
			path, err := filepath.Abs(file)
			if err != nil {
				logger.Fatal(ctx, "could not resolve catalog path", zap.Error(err))
			}
			ctx = logger.WithFields(ctx, zap.String("path", path))

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			inserted, err := catalog.New(strg, catalog.NewOptions(cfg)).Enqueue(ctx, path)
			if err != nil {
				logger.Fatal(ctx, "could not enqueue catalog import", zap.Error(err))
			}
			if !inserted {
				logger.Info(ctx, "catalog import is already queued")

				return
			}
			logger.Info(ctx, "catalog import queued")
		},
	}

	cmd.Flags().String("file", "", "Catalog JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
