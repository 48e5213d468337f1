// Command preview serves a storefront page with the review widget, the
// widget assets and the fixture review API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/betona1/cafe24-staff-review/internal/platform/config"
	"github.com/betona1/cafe24-staff-review/internal/platform/observability"
	"github.com/betona1/cafe24-staff-review/internal/preview"
	"github.com/betona1/cafe24-staff-review/internal/widget/fixture"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadPreview()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	store, err := loadStore(cfg.FixturesPath)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.String("path", cfg.FixturesPath), zap.Error(err))
	}

	srv, err := preview.New(preview.Config{
		Address:      cfg.Addr,
		ProductID:    cfg.ProductID,
		PerPage:      cfg.PerPage,
		ServerURL:    cfg.ServerURL,
		WASMPath:     cfg.WASMPath,
		WASMExecPath: cfg.WASMExecPath,
		UploadsDir:   cfg.UploadsDir,
		Store:        store,
		Logger:       logger,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("preview server listening",
		zap.String("addr", cfg.Addr),
		zap.String("product_id", cfg.ProductID),
		zap.Strings("products", store.ProductIDs()),
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		cancel()
		stop()
		os.Exit(1)
	}
}

func loadStore(path string) (*fixture.Store, error) {
	if path == "" {
		return fixture.Default()
	}
	return fixture.LoadFile(path)
}
