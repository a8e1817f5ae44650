package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/GoArmGo/photopager/internal/config"
	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/handler"
	"github.com/GoArmGo/photopager/internal/usecase"
)

const shutdownTimeout = 30 * time.Second

// NewRouter собирает chi-роутер со всеми маршрутами и middleware.
func NewRouter(
	cfg *config.Config,
	gallery usecase.GalleryUseCase,
	syncPublisher ports.SyncPublisher,
	logger *slog.Logger,
) http.Handler {
	photoHandler := handler.NewPhotoHandler(gallery, syncPublisher, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	photoHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// runServer запускает HTTP сервер и останавливает его при отмене ctx
func runServer(
	ctx context.Context,
	cfg *config.Config,
	gallery usecase.GalleryUseCase,
	syncPublisher ports.SyncPublisher,
	logger *slog.Logger,
) error {
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           NewRouter(cfg, gallery, syncPublisher, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка при запуске сервера: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received, stopping http server")

		ctxServer, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctxServer); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
