package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/messaging/payloads"
)

// BrowseResult — страница коллекции и то, что из неё видно после поиска.
type BrowseResult struct {
	domain.PageResult

	// Visible — Photos после фильтра SearchTerm. При пустом запросе совпадает с Photos.
	Visible    []domain.Photo `json:"visible"`
	SearchTerm string         `json:"searchTerm"`
}

// Searching сообщает, активен ли поиск (тогда навигация по страницам скрыта).
func (r *BrowseResult) Searching() bool {
	return r.SearchTerm != ""
}

// GalleryUseCase определяет бизнес-логику просмотра коллекции по страницам.
type GalleryUseCase interface {
	// BrowsePage получает свежую коллекцию, вырезает страницу и применяет поиск
	// только к вырезанной странице. Ошибки источника оборачиваются в domain.FetchError.
	BrowsePage(ctx context.Context, req domain.PageRequest) (*BrowseResult, error)
}

// SyncReport — итог одной синхронизации зеркала.
type SyncReport struct {
	RequestID   uuid.UUID     `json:"request_id"`
	Photos      int           `json:"photos"`
	Mirrored    int           `json:"mirrored"`
	SnapshotURL string        `json:"snapshot_url,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// SyncUseCase определяет логику обновления локального зеркала коллекции.
type SyncUseCase interface {
	// SyncMirror забирает коллекцию из внешнего API, заменяет зеркало в БД
	// и архивирует снимок в файловое хранилище, если оно настроено.
	SyncMirror(ctx context.Context, payload payloads.SyncPayload) (*SyncReport, error)
}
