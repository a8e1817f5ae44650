// Package search фильтрует фотографии уже выданной страницы по заголовку.
package search

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GoArmGo/photopager/internal/domain"
)

// Threshold — минимальный ранг, при котором фото попадает в выдачу.
const Threshold = Matches

type ranked struct {
	photo domain.Photo
	rank  Rank
}

// Filter возвращает фото, чьи заголовки совпадают с term, отсортированные по
// качеству совпадения, при равенстве по заголовку с учётом локали.
// Пустой term возвращает photos без изменений и в исходном порядке.
func Filter(photos []domain.Photo, term string) []domain.Photo {
	if term == "" {
		return photos
	}

	r := newRanker()
	matched := make([]ranked, 0, len(photos))
	for _, p := range photos {
		if rank := r.rank(p.Title, term); rank >= Threshold {
			matched = append(matched, ranked{photo: p, rank: rank})
		}
	}

	col := collate.New(language.Und)
	slices.SortStableFunc(matched, func(a, b ranked) int {
		if a.rank != b.rank {
			if a.rank > b.rank {
				return -1
			}
			return 1
		}
		return col.CompareString(a.photo.Title, b.photo.Title)
	})

	out := make([]domain.Photo, len(matched))
	for i, m := range matched {
		out[i] = m.photo
	}
	return out
}
