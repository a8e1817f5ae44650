package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/messaging/payloads"
	"github.com/GoArmGo/photopager/internal/usecase"
)

// ErrNoConsumer — воркер запущен без настроенного брокера.
var ErrNoConsumer = errors.New("worker: RABBITMQ_URL не задан")

// syncHandler превращает SyncUseCase в обработчик сообщений очереди.
func syncHandler(syncUseCase usecase.SyncUseCase, logger *slog.Logger) func(context.Context, payloads.SyncPayload) error {
	return func(ctx context.Context, payload payloads.SyncPayload) error {
		logger.Info("processing sync request", "request_id", payload.ID, "requested_at", payload.RequestedAt)

		report, err := syncUseCase.SyncMirror(ctx, payload)
		if errors.Is(err, usecase.ErrNothingToSync) {
			// повторная доставка ничего не изменит
			logger.Warn("sync request dropped, no mirror or snapshot store configured", "request_id", payload.ID)
			return nil
		}
		if err != nil {
			logger.Error("sync request failed", "request_id", payload.ID, "error", err)
			return err
		}

		logger.Info("sync request processed",
			"request_id", payload.ID,
			"photos", report.Photos,
			"mirrored", report.Mirrored,
			"snapshot_url", report.SnapshotURL,
		)
		return nil
	}
}

// runWorker запускает потребителя RabbitMQ и обрабатывает сообщения до отмены ctx
func runWorker(
	ctx context.Context,
	syncUseCase usecase.SyncUseCase,
	syncConsumer ports.SyncConsumer,
	logger *slog.Logger,
) error {
	if syncConsumer == nil {
		return ErrNoConsumer
	}

	if err := syncConsumer.StartConsumingSyncRequests(ctx, syncHandler(syncUseCase, logger)); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}
	logger.Info("worker started, waiting for sync requests")

	<-ctx.Done()
	logger.Info("shutdown signal received, stopping worker")
	return nil
}

// runSyncOnce выполняет одну синхронизацию без брокера.
func runSyncOnce(ctx context.Context, syncUseCase usecase.SyncUseCase, logger *slog.Logger) error {
	payload := payloads.NewSyncPayload(time.Now())
	return syncHandler(syncUseCase, logger)(ctx, payload)
}
