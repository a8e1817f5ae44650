package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/photopager/internal/config"
	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/usecase"
)

// Режимы запуска приложения.
const (
	ModeServer = "server"
	ModeWorker = "worker"
	ModeSync   = "sync"
)

type App struct {
	Config        *config.Config
	logger        *slog.Logger
	gallery       usecase.GalleryUseCase
	sync          usecase.SyncUseCase
	syncPublisher ports.SyncPublisher
	syncConsumer  ports.SyncConsumer
	closers       []func() error
}

// NewApp собирает приложение. publisher и consumer могут быть nil, если брокер не настроен.
// closers вызываются в Shutdown в обратном порядке.
func NewApp(cfg *config.Config,
	logger *slog.Logger,
	gallery usecase.GalleryUseCase,
	sync usecase.SyncUseCase,
	syncPublisher ports.SyncPublisher,
	syncConsumer ports.SyncConsumer,
	closers ...func() error) *App {
	return &App{
		Config:        cfg,
		logger:        logger,
		gallery:       gallery,
		sync:          sync,
		syncPublisher: syncPublisher,
		syncConsumer:  syncConsumer,
		closers:       closers,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в указанном режиме и блокируется до сигнала завершения
// (для sync до окончания синхронизации).
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting application", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = runServer(ctx, a.Config, a.gallery, a.syncPublisher, a.logger)
	case ModeWorker:
		err = runWorker(ctx, a.sync, a.syncConsumer, a.logger)
	case ModeSync:
		err = runSyncOnce(ctx, a.sync, a.logger)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте %q, %q или %q)", mode, ModeServer, ModeWorker, ModeSync)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown failed", "error", closeErr)
	}

	if err != nil {
		return err
	}
	a.logger.Info("application stopped gracefully")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
