package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kuesioner/metrics"
	"kuesioner/router"
	"kuesioner/store"
	"kuesioner/workers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the questionnaire API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := openStorage(ctx, conf, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	m := metrics.New()
	refresher := workers.NewReportRefresher(nil, m, logger, conf.RefreshInterval(), conf.DebounceWindow())
	records := store.NewRecordStore(storage,
		store.WithKey(conf.Storage.Key),
		store.WithLogger(logger),
		store.WithAppendHook(refresher.Trigger),
	)
	refresher.SetRecords(records)

	if conf.LogLevel != "debug" && !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	router.Initialize(engine, newEnv(records, conf, logger, m))

	srv := &http.Server{
		Addr:              ":" + conf.ApiPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("kuesioner listening", zap.String("addr", srv.Addr), zap.String("storage", conf.Storage.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return refresher.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
