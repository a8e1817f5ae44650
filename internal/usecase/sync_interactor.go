package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/messaging/payloads"
	"github.com/GoArmGo/photopager/internal/metrics"
)

// ErrNothingToSync — не настроены ни зеркало, ни архив снимков.
var ErrNothingToSync = errors.New("usecase: не настроено ни зеркало БД, ни хранилище снимков")

// syncUseCase implements SyncUseCase
type syncUseCase struct {
	upstream  ports.PhotoSource
	mirror    ports.PhotoMirror
	snapshots ports.SnapshotStore
	logger    *slog.Logger
}

// NewSyncUseCase создает новый экземпляр SyncUseCase.
// mirror и snapshots могут быть nil, если соответствующее хранилище не настроено.
func NewSyncUseCase(
	upstream ports.PhotoSource,
	mirror ports.PhotoMirror,
	snapshots ports.SnapshotStore,
	logger *slog.Logger,
) SyncUseCase {
	return &syncUseCase{
		upstream:  upstream,
		mirror:    mirror,
		snapshots: snapshots,
		logger:    logger,
	}
}

// SnapshotKey — ключ объекта снимка для запроса синхронизации.
func SnapshotKey(payload payloads.SyncPayload) string {
	return fmt.Sprintf("snapshots/%s.json", payload.ID)
}

// SyncMirror реализует SyncUseCase.
func (uc *syncUseCase) SyncMirror(ctx context.Context, payload payloads.SyncPayload) (*SyncReport, error) {
	if uc.mirror == nil && uc.snapshots == nil {
		metrics.MirrorSyncs.WithLabelValues("skipped").Inc()
		return nil, ErrNothingToSync
	}

	start := time.Now()
	report := &SyncReport{RequestID: payload.ID}

	photos, err := uc.upstream.ListPhotos(ctx)
	if err != nil {
		metrics.MirrorSyncs.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("usecase: ошибка при получении коллекции для синхронизации: %w", err)
	}
	report.Photos = len(photos)

	if uc.mirror != nil {
		n, err := uc.mirror.ReplacePhotos(ctx, photos)
		if err != nil {
			metrics.MirrorSyncs.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("usecase: ошибка при обновлении зеркала: %w", err)
		}
		report.Mirrored = n
	}

	if uc.snapshots != nil {
		body, err := json.Marshal(photos)
		if err != nil {
			metrics.MirrorSyncs.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("usecase: ошибка сериализации снимка: %w", err)
		}
		snapshotURL, err := uc.snapshots.UploadFile(ctx, SnapshotKey(payload), bytes.NewReader(body), "application/json")
		if err != nil {
			metrics.MirrorSyncs.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("usecase: ошибка загрузки снимка %s: %w", payload.ID, err)
		}
		report.SnapshotURL = snapshotURL
	}

	report.Duration = time.Since(start)
	metrics.MirrorSyncs.WithLabelValues("ok").Inc()

	uc.logger.Info("mirror synced",
		"request_id", payload.ID,
		"photos", report.Photos,
		"mirrored", report.Mirrored,
		"snapshot_url", report.SnapshotURL,
		"duration_ms", report.Duration.Milliseconds(),
	)
	return report, nil
}
