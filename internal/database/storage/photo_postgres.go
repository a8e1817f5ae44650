package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/GoArmGo/photopager/internal/domain"
)

// insertBatchSize держит число параметров INSERT ниже лимита PostgreSQL (65535).
const insertBatchSize = 1000

type PostgresStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresStorage(db *sqlx.DB, logger *slog.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// ListPhotos получает всё зеркало коллекции в порядке id
func (s *PostgresStorage) ListPhotos(ctx context.Context) ([]domain.Photo, error) {
	start := time.Now()

	q := `SELECT id, album_id, title, url, thumbnail_url FROM photos ORDER BY id`

	photos := []domain.Photo{}
	if err := s.db.SelectContext(ctx, &photos, q); err != nil {
		s.logger.Error("failed to list photos", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка фото: %w", err)
	}

	s.logger.Debug("listed photos from mirror",
		"count", len(photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return photos, nil
}

// CountPhotos возвращает число фото в зеркале
func (s *PostgresStorage) CountPhotos(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM photos`); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте фото: %w", err)
	}
	return n, nil
}

// ReplacePhotos заменяет зеркало переданной коллекцией в одной транзакции:
// новые и изменённые строки upsert-ятся, отсутствующие в коллекции удаляются.
func (s *PostgresStorage) ReplacePhotos(ctx context.Context, photos []domain.Photo) (int, error) {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	upsert := `
	INSERT INTO photos (id, album_id, title, url, thumbnail_url)
	VALUES (:id, :album_id, :title, :url, :thumbnail_url)
	ON CONFLICT (id) DO UPDATE SET
		album_id = EXCLUDED.album_id,
		title = EXCLUDED.title,
		url = EXCLUDED.url,
		thumbnail_url = EXCLUDED.thumbnail_url,
		synced_at = now()
	`

	ids := make([]int64, 0, len(photos))
	for _, batch := range chunk(photos, insertBatchSize) {
		if _, err := tx.NamedExecContext(ctx, upsert, batch); err != nil {
			s.logger.Error("failed to upsert photos", "batch", len(batch), "error", err)
			return 0, fmt.Errorf("ошибка при сохранении фото: %w", err)
		}
		for _, p := range batch {
			ids = append(ids, int64(p.ID))
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE NOT (id = ANY($1))`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("ошибка при удалении устаревших фото: %w", err)
	}
	removed, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	s.logger.Info("photo mirror replaced",
		"upserted", len(photos),
		"removed", removed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return len(photos), nil
}

func chunk(photos []domain.Photo, size int) [][]domain.Photo {
	var out [][]domain.Photo
	for size < len(photos) {
		photos, out = photos[size:], append(out, photos[:size])
	}
	if len(photos) > 0 {
		out = append(out, photos)
	}
	return out
}
