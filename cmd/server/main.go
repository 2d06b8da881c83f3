package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"training_board/internal/api"
	"training_board/internal/api/handler"
	"training_board/internal/app/dashboard"
	"training_board/internal/app/service"
	"training_board/internal/domain/repository"
	"training_board/internal/platform/cache"
	"training_board/internal/platform/config"
	"training_board/internal/platform/database"
	"training_board/internal/platform/logging"
	"training_board/internal/platform/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	renderOut     string
	renderFilters dashboard.Filters
	renderClaimed string
)

var rootCmd = &cobra.Command{
	Use:   "training-board",
	Short: "Leaderboard and module catalog dashboard for training winners data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		var err error
		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE:  runServe,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard once to a static HTML file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dashboard.html", "output file")
	renderCmd.Flags().StringVar(&renderFilters.User, dashboard.UserSearchControl, "", "user name filter")
	renderCmd.Flags().StringVar(&renderFilters.University, dashboard.UniversitySearchControl, "", "university name filter")
	renderCmd.Flags().StringVar(&renderFilters.Module, dashboard.ModuleSearchControl, "", "module name filter")
	renderCmd.Flags().StringVar(&renderClaimed, dashboard.ClaimedFilterControl, string(dashboard.ClaimAny), "all, claimed or unclaimed")
	rootCmd.AddCommand(serveCmd, renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newDatasetService wires the configured source, the optional Postgres
// connection and the optional Redis cache. The returned func releases them.
func newDatasetService(ctx context.Context, m *metrics.Metrics) (*service.DatasetService, func(), error) {
	var db *sql.DB
	if repository.IsPostgresDSN(cfg.DatasetSource) {
		var err error
		db, err = database.Connect(ctx, cfg.DatasetSource, logger)
		if err != nil {
			return nil, nil, err
		}
	}

	client := &http.Client{Timeout: cfg.DatasetTimeout}
	source := repository.NewDatasetSource(cfg.DatasetSource, client, db)

	cleanup := func() { database.Close(db, logger) }
	if cfg.CacheEnabled() {
		rdb, err := cache.ConnectRedis(ctx, cfg, logger)
		if err != nil {
			logger.Warn("dataset cache disabled", zap.Error(err))
		} else {
			source = repository.NewCachedDatasetSource(source, cache.NewDatasetCache(rdb), cfg.DatasetCacheTTL, logger)
			cleanup = func() {
				rdb.Close()
				database.Close(db, logger)
			}
		}
	}

	logger.Info("dataset source configured", zap.String("source", source.Name()))
	return service.NewDatasetService(source, cfg.DatasetTimeout, m, logger), cleanup, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	datasetService, cleanup, err := newDatasetService(ctx, m)
	if err != nil {
		return err
	}
	defer cleanup()

	router := api.NewRouter(handler.NewDashboardHandler(datasetService, cfg.CatalogBaseURL, m, logger), m)
	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on %s: %w", cfg.APIPort, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	datasetService, cleanup, err := newDatasetService(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	ds, err := datasetService.Load(ctx)
	if err != nil {
		return err
	}

	controller := dashboard.NewController(cfg.CatalogBaseURL, logger)
	if err := controller.Mount(ds); err != nil {
		return err
	}
	renderFilters.Claimed = dashboard.ParseClaimState(renderClaimed)
	visible := controller.SetFilters(renderFilters)

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", renderOut, err)
	}
	defer f.Close()
	if err := dashboard.Render(f, controller.Document()); err != nil {
		return err
	}

	logger.Info("dashboard rendered", zap.String("out", renderOut), zap.Int("visible_tiles", visible))
	return nil
}
