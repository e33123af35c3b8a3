package main

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/api"
	"foodgram/internal/api/handler/v1handler"
	"foodgram/internal/catalog"
	"foodgram/internal/config"
	"foodgram/internal/recipes"
	"foodgram/internal/worker"
	"foodgram/pkg/document"
	"foodgram/pkg/logger"
	"foodgram/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// newRenderer loads the configured font once. Without it no shopping list
// can be produced, so a missing font stops the process at startup.
func newRenderer(ctx context.Context, cfg *config.Config) *document.Renderer {
	font, err := document.LoadFont(cfg.Document.FontPath)
	if err != nil {
		logger.Fatal(ctx, "could not load document font",
			zap.String("path", cfg.Document.FontPath), zap.Error(err))
	}

	geometry := document.DefaultGeometry()
	if cfg.Document.FontSize > 0 {
		geometry.FontSize = cfg.Document.FontSize
	}

	return document.NewRenderer(font, document.Options{
		Geometry: geometry,
		Title:    cfg.Document.Title,
		Creator:  api.ServiceName,
	})
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Environment == logger.ProductionEnvironment {
				gin.SetMode(gin.ReleaseMode)
			}

			renderer := newRenderer(ctx, cfg)

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			shoppingListMetrics, err := metrics.NewShoppingList(mp.Meter(api.ServiceName))
			if err != nil {
				logger.Fatal(ctx, "could not create shopping list metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// workers outlive the signal context so Stop can let running imports finish
			importer := catalog.New(strg, catalog.NewOptions(cfg))
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, importer, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{
					Recipes: recipes.New(strg, renderer, shoppingListMetrics, recipes.NewOptions(cfg)),
				},
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed listener
				<-gCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}

				if err := mp.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
