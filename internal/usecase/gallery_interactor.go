package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/metrics"
	"github.com/GoArmGo/photopager/internal/pagination"
	"github.com/GoArmGo/photopager/internal/search"
)

// galleryUseCase implements GalleryUseCase
type galleryUseCase struct {
	source     ports.PhotoSource
	sourceName string
	logger     *slog.Logger
}

// NewGalleryUseCase создает новый экземпляр GalleryUseCase поверх источника фото.
func NewGalleryUseCase(source ports.PhotoSource, sourceName string, logger *slog.Logger) GalleryUseCase {
	return &galleryUseCase{
		source:     source,
		sourceName: sourceName,
		logger:     logger,
	}
}

// BrowsePage реализует GalleryUseCase. Коллекция не кэшируется: каждый вызов
// заново читает источник целиком.
func (uc *galleryUseCase) BrowsePage(ctx context.Context, req domain.PageRequest) (*BrowseResult, error) {
	photos, err := uc.source.ListPhotos(ctx)
	if err != nil {
		var fetchErr *domain.FetchError
		if !errors.As(err, &fetchErr) {
			err = &domain.FetchError{Source: uc.sourceName, Err: err}
		}
		return nil, fmt.Errorf("usecase: ошибка при получении коллекции фото: %w", err)
	}

	page := pagination.Slice(photos, req)
	visible := search.Filter(page.Photos, req.SearchTerm)
	metrics.PhotosServed.Add(float64(len(visible)))

	uc.logger.Info("page sliced",
		"source", uc.sourceName,
		"page", page.CurrentPage,
		"rows", page.RowsPerPage,
		"total_photos", len(photos),
		"total_pages", page.TotalPages,
		"page_photos", len(page.Photos),
		"visible", len(visible),
	)

	return &BrowseResult{
		PageResult: page,
		Visible:    visible,
		SearchTerm: req.SearchTerm,
	}, nil
}
