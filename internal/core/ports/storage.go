package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/photopager/internal/domain"
)

// PhotoSource отдаёт полную упорядоченную коллекцию фотографий.
// Реализации: внешний JSON API и зеркало в PostgreSQL.
type PhotoSource interface {
	ListPhotos(ctx context.Context) ([]domain.Photo, error)
}

// PhotoMirror хранит локальную копию коллекции.
type PhotoMirror interface {
	PhotoSource
	// ReplacePhotos заменяет содержимое зеркала переданной коллекцией.
	ReplacePhotos(ctx context.Context, photos []domain.Photo) (int, error)
}

// SnapshotStore сохраняет сырые снимки коллекции (S3 / MinIO).
type SnapshotStore interface {
	// UploadFile загружает файл в хранилище и возвращает его URL.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}
